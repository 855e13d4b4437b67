// Command pm manages a shared, lot-tracked investment portfolio.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/charlywyss-beep/Portfolio-Manager-sub000/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: this returns immediately unless the shell invoked
	// the binary in completion mode.
	completion().Complete("pm")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	files := predict.Files("*.jsonl")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"stock":    predict.Something,
				"shares":   predict.Something,
				"price":    predict.Something,
				"currency": predict.Set{"CHF", "USD", "EUR", "GBP", "GBX"},
				"fx":       predict.Something,
				"date":     predict.Something,
			}},
			"import":   {Flags: map[string]complete.Predictor{"file": files}},
			"fmt":      {Flags: map[string]complete.Predictor{"migrate": predict.Nothing, "prune": predict.Nothing}},
			"holdings": {Flags: map[string]complete.Predictor{"lots": predict.Something}},
			"quote":    {Flags: map[string]complete.Predictor{"file": predict.Files("*.json"), "intraday": predict.Nothing}},
			"topic":    {Args: predict.Set{"ledger", "units", "quotes", "readme", "*"}},
		},
		Flags: map[string]complete.Predictor{
			"positions-file": files,
			"stocks-file":    files,
		},
	}
}
