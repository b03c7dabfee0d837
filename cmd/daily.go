package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	date string
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display position-level detail for one day" }
func (*dailyCmd) Usage() string {
	return `nwt daily [-d <date>]

  Displays every computed position of a day with its shares, price and
  value. Defaults to the latest computed day.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to the latest computed day)")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBalances()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balances: %v\n", err)
		return subcommands.ExitFailure
	}

	on, ok := book.LastDate()
	if c.date != "" {
		on, err = networth.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		ok = book.HasDate(on)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "No computed balances for that day. Run 'nwt recompute' first.")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DailyMarkdown(on, book.Records()))
	return subcommands.ExitSuccess
}
