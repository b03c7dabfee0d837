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

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	ticker string
	date   string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "update the price cache from the market-data provider" }
func (*fetchCmd) Usage() string {
	return `nwt fetch [-ticker <ticker> [-d <date>]]

  Without flags, fetches missing daily prices for every current ticker and
  appends them to the price cache. With -ticker, refetches that ticker's
  full history from -d (or the epoch), replacing cached values.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Backfill a single ticker instead of updating all")
	f.StringVar(&c.date, "d", "", "Backfill start date (defaults to the epoch), only with -ticker")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	r := networth.NewRecomputer(holdings, unvested, prices, networth.NewBalanceBook(), yahoo.New())

	if c.ticker != "" {
		from := networth.DefaultEpoch
		if c.date != "" {
			from, err = networth.ParseDate(c.date)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		err = r.Backfill(c.ticker, from)
	} else {
		if c.date != "" {
			fmt.Fprintln(os.Stderr, "Error: -d requires -ticker")
			return subcommands.ExitUsageError
		}
		err = r.UpdatePrices()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodePrices(prices); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving price cache: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %s\n", *pricesFile)
	return subcommands.ExitSuccess
}
