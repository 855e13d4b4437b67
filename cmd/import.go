package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/charlywyss-beep/Portfolio-Manager-sub000"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge positions from another collaborator's file" }
func (*importCmd) Usage() string {
	return `import -file <positions.jsonl>

  Merges every position from the given file into the local positions,
  matching by stock id. Lot histories are concatenated; legacy positions
  on either side get their history synthesized first, so no cost basis
  is ever lost.

  The import is all-or-nothing: if any record fails to merge, the local
  file is left untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Positions file to merge in, JSONL format (required)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file flag is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening import file: %v\n", err)
		return subcommands.ExitFailure
	}
	incoming, err := portfolio.DecodePositions(in)
	in.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading import file: %v\n", err)
		return subcommands.ExitFailure
	}

	positions, err := DecodePositions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading positions: %v\n", err)
		return subcommands.ExitFailure
	}

	merged, err := mergeAll(positions, incoming)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodePositions(merged); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving positions: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Merged %d positions from %s.\n", len(incoming), c.file)
	return subcommands.ExitSuccess
}

// mergeAll merges every incoming position into the existing list,
// matching by stock id. The incoming lot histories travel as purchases,
// so both sides go through the same merge path as manual entry. On the
// first error the original list is returned untouched.
func mergeAll(existing, incoming []portfolio.Position) ([]portfolio.Position, error) {
	out := make([]portfolio.Position, len(existing))
	copy(out, existing)

	for _, in := range incoming {
		in = portfolio.MigrateLegacy(in)
		if in.IsClosed() {
			continue
		}
		var err error
		out, err = mergeOne(out, portfolio.Purchase{StockID: in.StockID(), Lots: in.Lots()})
		if err != nil {
			return nil, fmt.Errorf("importing %s: %w", in.StockID(), err)
		}
	}
	return out, nil
}
