// Package cmd implements the CLI application to manage lot-tracked positions.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	portfolio "github.com/charlywyss-beep/Portfolio-Manager-sub000"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "positions")
	c.Register(&importCmd{}, "positions")
	c.Register(&fmtCmd{}, "positions")

	c.Register(&holdingsCmd{}, "reports")

	c.Register(&quoteCmd{}, "quotes")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application it has a very short-lived lifecycle, so it is ok to
// use global variables.

var positionsFile = flag.String("positions-file", "positions.jsonl", "Path to the positions file (JSONL format)")
var stocksFile = flag.String("stocks-file", "stocks.jsonl", "Path to the stock metadata file (JSONL format)")

// DecodePositions loads the positions file, returning an empty list when
// the file does not exist yet.
func DecodePositions() ([]portfolio.Position, error) {
	f, err := os.Open(*positionsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open positions file %q: %w", *positionsFile, err)
	}
	defer f.Close()
	return portfolio.DecodePositions(f)
}

// EncodePositions rewrites the positions file with the given positions.
func EncodePositions(positions []portfolio.Position) error {
	f, err := os.Create(*positionsFile)
	if err != nil {
		return fmt.Errorf("could not write positions file %q: %w", *positionsFile, err)
	}
	defer f.Close()
	return portfolio.EncodePositions(f, positions)
}

// DecodeStocks loads the stock metadata file, returning an empty list when
// the file does not exist yet.
func DecodeStocks() ([]portfolio.Stock, error) {
	f, err := os.Open(*stocksFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open stocks file %q: %w", *stocksFile, err)
	}
	defer f.Close()
	return portfolio.DecodeStocks(f)
}
