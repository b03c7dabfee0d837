package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/networth/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion serves shell completion requests and returns immediately when
// none is pending.
func completion() {
	files := map[string]complete.Predictor{
		"holdings-file": predict.Files("*.json"),
		"unvested-file": predict.Files("*.json"),
		"prices-file":   predict.Files("*.json"),
		"balances-file": predict.Files("*.json"),
	}
	cmd := &complete.Command{
		Flags: files,
		Sub: map[string]*complete.Command{
			"recompute": {Flags: map[string]complete.Predictor{"d": predict.Nothing, "account": predict.Nothing}},
			"fetch":     {Flags: map[string]complete.Predictor{"d": predict.Nothing, "ticker": predict.Nothing}},
			"summary":   {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"daily":     {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"topic":     {Args: predict.Set{"readme", "snapshots", "recompute", "*"}},
		},
	}
	cmd.Complete("nwt")
}
