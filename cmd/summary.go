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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display per-account totals for one day" }
func (*summaryCmd) Usage() string {
	return `nwt summary [-d <date>]

  Displays the total value of each account on a day, from the computed
  balance file. Defaults to the latest computed day.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the summary (defaults to the latest computed day)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	accounts, total := book.SummaryOn(on)
	printMarkdown(renderer.SummaryMarkdown(on, accounts, total))
	return subcommands.ExitSuccess
}
