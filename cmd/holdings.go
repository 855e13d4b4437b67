package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charlywyss-beep/Portfolio-Manager-sub000/renderer"
	"github.com/google/subcommands"
)

type holdingsCmd struct {
	lots string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the open positions" }
func (*holdingsCmd) Usage() string {
	return `holdings [-lots <stock>]

  Renders the open positions as a table. With -lots, also renders the
  purchase ledger of the position holding that stock.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lots, "lots", "", "Also show the purchase ledger for this stock")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	positions, err := DecodePositions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading positions: %v\n", err)
		return subcommands.ExitFailure
	}
	stocks, err := DecodeStocks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stocks: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.Holdings(positions, stocks)
	if c.lots != "" {
		found := false
		for _, p := range positions {
			if p.StockID() == c.lots {
				md += "\n" + renderer.Lots(p)
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: no position holds stock %q.\n", c.lots)
			return subcommands.ExitFailure
		}
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
