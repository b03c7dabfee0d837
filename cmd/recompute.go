package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/yahoo"
	"github.com/google/subcommands"
)

// recomputeCmd holds the flags for the 'recompute' subcommand.
type recomputeCmd struct {
	date    string
	account string
}

func (*recomputeCmd) Name() string     { return "recompute" }
func (*recomputeCmd) Synopsis() string { return "recompute daily balances over a date window" }
func (*recomputeCmd) Usage() string {
	return `nwt recompute [-d <date>] [-account <account>]

  Recomputes the daily balance file. Without flags the whole history is
  rebuilt from the epoch through the latest closed market day. With
  -account only that account's records are rebuilt, from -d (or the
  epoch) through the latest closed market day.
`
}

func (c *recomputeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Explicit date: window end for a full recompute, window start with -account")
	f.StringVar(&c.account, "account", "", "Restrict the recompute to one account")
}

func (c *recomputeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on networth.Date
	if c.date != "" {
		var err error
		on, err = networth.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	holdings, unvested, err := DecodeSnapshots()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshots: %v\n", err)
		return subcommands.ExitFailure
	}
	prices, err := DecodePrices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading price cache: %v\n", err)
		return subcommands.ExitFailure
	}
	book, err := DecodeBalances()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balances: %v\n", err)
		return subcommands.ExitFailure
	}

	r := networth.NewRecomputer(holdings, unvested, prices, book, yahoo.New())
	window, computed := r.Run(networth.Scope(c.account), on)

	if err := EncodePrices(prices); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving price cache: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeBalances(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving balances: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recomputed %d records over %s..%s into %s\n", computed, window.From, window.To, *balancesFile)
	return subcommands.ExitSuccess
}
