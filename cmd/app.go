// Package cmd implements the CLI application to maintain daily balances.
package cmd

import (
	"flag"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

// Commands lists the subcommands. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&recomputeCmd{},
	&fetchCmd{},
	&summaryCmd{},
	&dailyCmd{},
	&topicCmd{},
}

// As a CLI application with a very short lived lifecycle, it is ok to use
// global variables for the file locations.

var holdingsFile = flag.String("holdings-file", "account_balances.json", "Path to the holding snapshots file")
var unvestedFile = flag.String("unvested-file", "unvested_balances.json", "Path to the unvested snapshots file")
var pricesFile = flag.String("prices-file", "tickers.json", "Path to the price cache file")
var balancesFile = flag.String("balances-file", "daily_balances.json", "Path to the daily balances file")

// DecodeSnapshots loads both snapshot files. Missing files load as empty
// datasets, so a fresh directory is workable.
func DecodeSnapshots() (networth.Holdings, networth.Unvested, error) {
	holdings, err := networth.DecodeHoldings(*holdingsFile)
	if err != nil {
		return nil, nil, err
	}
	unvested, err := networth.DecodeUnvested(*unvestedFile)
	if err != nil {
		return nil, nil, err
	}
	return holdings, unvested, nil
}

// DecodePrices loads the price cache file.
func DecodePrices() (*networth.PriceSeries, error) {
	return networth.DecodePrices(*pricesFile)
}

// EncodePrices rewrites the price cache file.
func EncodePrices(p *networth.PriceSeries) error {
	return networth.EncodePrices(*pricesFile, p)
}

// DecodeBalances loads the daily balances file.
func DecodeBalances() (*networth.BalanceBook, error) {
	return networth.DecodeBalances(*balancesFile)
}

// EncodeBalances rewrites the daily balances file.
func EncodeBalances(b *networth.BalanceBook) error {
	return networth.EncodeBalances(*balancesFile, b)
}
