package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/charlywyss-beep/Portfolio-Manager-sub000"
	"github.com/charlywyss-beep/Portfolio-Manager-sub000/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	stock    string
	shares   string
	price    string
	currency string
	fx       string
	day      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a purchase lot on a position" }
func (*addCmd) Usage() string {
	return `add -stock <id> -shares <n> -price <p> -currency <cur> [-fx <rate>] [-date <yyyy-mm-dd>]

  Appends a purchase lot to the position holding the given stock, creating
  the position if it does not exist yet. The price is per share, in the
  major unit of the given currency. The FX rate converts the native
  currency to the reference currency and defaults to 1.0.

  A pre-ledger position gets its legacy history synthesized into a single
  lot before the new one is appended, so no cost basis is ever lost.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stock, "stock", "", "Stock identifier (required)")
	f.StringVar(&c.shares, "shares", "", "Number of shares bought (required)")
	f.StringVar(&c.price, "price", "", "Price per share, major unit (required)")
	f.StringVar(&c.currency, "currency", "", "Native currency of the instrument (required)")
	f.StringVar(&c.fx, "fx", "", "FX rate to the reference currency at purchase (default 1.0)")
	f.StringVar(&c.day, "date", "", "Purchase date (default today)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.stock == "" || c.shares == "" || c.price == "" || c.currency == "" {
		fmt.Fprintln(os.Stderr, "Error: -stock, -shares, -price and -currency flags are required.")
		return subcommands.ExitUsageError
	}

	shares, err := decimal.NewFromString(c.shares)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing shares %q: %v\n", c.shares, err)
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}

	incoming := portfolio.Purchase{
		StockID: c.stock,
		Shares:  portfolio.Q(shares),
		Price:   portfolio.M(price, c.currency),
	}
	if c.fx != "" {
		fx, err := decimal.NewFromString(c.fx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing fx rate %q: %v\n", c.fx, err)
			return subcommands.ExitUsageError
		}
		incoming.FxRate = portfolio.R(fx)
	}
	if c.day != "" {
		on, err := date.Parse(c.day)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date %q: %v\n", c.day, err)
			return subcommands.ExitUsageError
		}
		incoming.Date = on
	}

	positions, err := DecodePositions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading positions: %v\n", err)
		return subcommands.ExitFailure
	}

	merged, err := mergeOne(positions, incoming)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodePositions(merged); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving positions: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Recorded purchase of %s %s at %s.\n", c.shares, c.stock, incoming.Price)
	return subcommands.ExitSuccess
}

// mergeOne merges a single purchase into the position list, creating a
// new position when no position holds that stock yet.
func mergeOne(positions []portfolio.Position, incoming portfolio.Purchase) ([]portfolio.Position, error) {
	for i, p := range positions {
		if p.StockID() != incoming.StockID {
			continue
		}
		merged, err := portfolio.Merge(&p, incoming)
		if err != nil {
			return nil, err
		}
		out := make([]portfolio.Position, len(positions))
		copy(out, positions)
		out[i] = merged
		return out, nil
	}
	created, err := portfolio.Merge(nil, incoming)
	if err != nil {
		return nil, err
	}
	return append(positions, created), nil
}
