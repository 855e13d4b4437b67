package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/charlywyss-beep/Portfolio-Manager-sub000"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	migrate bool
	prune   bool
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the positions file in canonical form" }
func (*fmtCmd) Usage() string {
	return `fmt [-migrate] [-prune]

  Reads and rewrites the positions file, normalizing field order and
  rederiving every aggregate from the lot ledgers. With -migrate, legacy
  positions without lot history get a single synthetic lot carrying
  their aggregate fields. With -prune, closed positions are dropped.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.migrate, "migrate", false, "Synthesize lot history for legacy positions")
	f.BoolVar(&c.prune, "prune", false, "Drop closed positions")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	positions, err := DecodePositions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading positions: %v\n", err)
		return subcommands.ExitFailure
	}

	out := make([]portfolio.Position, 0, len(positions))
	for _, p := range positions {
		if c.migrate {
			p = portfolio.MigrateLegacy(p)
		}
		if c.prune && p.IsClosed() {
			continue
		}
		out = append(out, p)
	}

	if err := EncodePositions(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving positions: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Rewrote %d positions.\n", len(out))
	return subcommands.ExitSuccess
}
