package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	portfolio "github.com/charlywyss-beep/Portfolio-Manager-sub000"
	"github.com/google/subcommands"
)

type quoteCmd struct {
	file     string
	intraday bool
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "normalize a raw market-data payload" }
func (*quoteCmd) Usage() string {
	return `quote [-file <payload.json>] [-intraday]

  Reads a provider payload (from the file, or stdin by default), runs it
  through the unit normalizer and prints the corrected price, previous
  close and series. With -intraday the previous close is also checked
  against the first observed point of the series.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Payload file (default stdin)")
	f.BoolVar(&c.intraday, "intraday", false, "Treat the series as intraday observations")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var payload []byte
	var err error
	if c.file == "" {
		payload, err = io.ReadAll(os.Stdin)
	} else {
		payload, err = os.ReadFile(c.file)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading payload: %v\n", err)
		return subcommands.ExitFailure
	}

	q, err := portfolio.ParseQuote(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	n := portfolio.NewNormalizer(portfolio.DefaultNormalizerConfig())
	price := n.NormalizePrice(q.Price, q.Currency, q.Symbol)
	series := q.NormalizedSeries(n)
	previousClose := n.ReconcileReferenceClose(series, q.PreviousClose, q.Currency, q.Symbol, c.intraday)

	fmt.Printf("%s: %.4f %s (previous close %.4f)\n", q.Symbol, price, majorUnit(q.Currency), previousClose)
	for _, p := range series {
		fmt.Printf("  %s  %.4f\n", p.Date, p.Value)
	}
	return subcommands.ExitSuccess
}

// majorUnit names the presentation currency of a normalized price: the
// normalizer always reports in the major unit, so minor-unit codes are
// mapped to their major counterpart for display.
func majorUnit(currency string) string {
	switch currency {
	case "GBX", "GBp":
		return "GBP"
	case "ZAc":
		return "ZAR"
	case "ILA":
		return "ILS"
	default:
		return currency
	}
}
