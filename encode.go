package portfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/charlywyss-beep/Portfolio-Manager-sub000/date"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// maxLineBytes caps a single JSONL record. A position line carrying a
// bulk-imported ledger can exceed bufio.Scanner's default 64KiB token limit.
const maxLineBytes = 16 << 20

// This file persists positions and stocks as JSONL, one record per line,
// in a way that is human-readable and git-friendly. The encoding is a
// collaborator contract: the core does not care where the lines live.
//
// A position line either carries a "purchases" ledger (authoritative, the
// aggregates are rederived on decode) or only legacy aggregate fields
// (pre-ledger record, migrated on first edit).

// jlot is the serialized form of a Lot. The price is a plain number in
// the native currency's major unit; the currency lives on the position.
type jlot struct {
	ID     string          `json:"id"`
	Date   date.Date       `json:"date"`
	Shares Quantity        `json:"shares"`
	Price  decimal.Decimal `json:"price"`
	FxRate Rate            `json:"fxRate"`
}

// jposition is the serialized form of a Position.
type jposition struct {
	ID                 string          `json:"id"`
	StockID            string          `json:"stockId"`
	Currency           string          `json:"currency"`
	Shares             Quantity        `json:"shares"`
	BuyPriceAvg        decimal.Decimal `json:"buyPriceAvg"` // storage units
	AverageEntryFxRate Rate            `json:"averageEntryFxRate"`
	BuyDate            date.Date       `json:"buyDate"`
	Purchases          []jlot          `json:"purchases"`
}

// EncodePosition writes one position as a single JSON line with a stable
// field order.
func EncodePosition(w io.Writer, p Position) error {
	var jw jsonObjectWriter
	jw.Append("id", p.ID())
	jw.Append("stockId", p.StockID())
	jw.Optional("currency", p.Currency())
	jw.Append("shares", p.Shares())
	jw.Append("buyPriceAvg", p.BuyPriceAvg())
	jw.Append("averageEntryFxRate", p.AverageEntryFxRate())
	if !p.BuyDate().IsZero() {
		jw.Append("buyDate", p.BuyDate())
	}
	if p.HasLedger() {
		lots := make([]json.RawMessage, 0, len(p.Lots()))
		for _, l := range p.Lots() {
			var lw jsonObjectWriter
			lw.Append("id", l.ID)
			lw.Append("date", l.Date)
			lw.Append("shares", l.Shares)
			lw.Append("price", l.Price.Decimal())
			lw.Append("fxRate", l.FxRate)
			raw, err := lw.MarshalJSON()
			if err != nil {
				return fmt.Errorf("could not encode lot %s: %w", l.ID, err)
			}
			lots = append(lots, raw)
		}
		jw.Append("purchases", lots)
	}

	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode position %s: %w", p.ID(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodePositions writes positions in JSONL format, one per line.
func EncodePositions(w io.Writer, positions []Position) error {
	for _, p := range positions {
		if err := EncodePosition(w, p); err != nil {
			return err
		}
	}
	return nil
}

// DecodePositions reads a JSONL stream of positions. Lines carrying a
// ledger are rebuilt from it (the persisted aggregates are rederived,
// never trusted); lines without one decode into legacy positions.
func DecodePositions(r io.Reader) ([]Position, error) {
	var positions []Position
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var jp jposition
		if err := json.Unmarshal(line, &jp); err != nil {
			return nil, fmt.Errorf("format error in line %q: %w", string(line), err)
		}

		if len(jp.Purchases) == 0 {
			positions = append(positions, NewLegacyPosition(
				jp.ID, jp.StockID, jp.Currency,
				jp.Shares, jp.BuyPriceAvg, jp.AverageEntryFxRate, jp.BuyDate))
			continue
		}

		lots := make(Ledger, 0, len(jp.Purchases))
		for _, jl := range jp.Purchases {
			lot, err := NewLot(jl.ID, jl.Date, jl.Shares, M(jl.Price, jp.Currency), jl.FxRate)
			if err != nil {
				return nil, fmt.Errorf("format error in position %s: %w", jp.ID, err)
			}
			lots = append(lots, lot)
		}
		p, err := NewPosition(jp.ID, jp.StockID, jp.Currency, lots)
		if err != nil {
			return nil, fmt.Errorf("format error in position %s: %w", jp.ID, err)
		}
		positions = append(positions, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return positions, nil
}

// jstock is the serialized form of a Stock.
type jstock struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// EncodeStocks writes stock metadata in JSONL format.
func EncodeStocks(w io.Writer, stocks []Stock) error {
	for _, s := range stocks {
		var jw jsonObjectWriter
		jw.Append("id", s.ID())
		jw.Append("symbol", s.Symbol())
		jw.Optional("name", s.Name())
		jw.Append("currency", s.Currency())
		data, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("could not encode stock %s: %w", s.ID(), err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// DecodeStocks reads a JSONL stream of stock metadata.
func DecodeStocks(r io.Reader) ([]Stock, error) {
	var stocks []Stock
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var js jstock
		if err := json.Unmarshal(line, &js); err != nil {
			return nil, fmt.Errorf("format error in line %q: %w", string(line), err)
		}
		stocks = append(stocks, NewStock(js.ID, js.Symbol, js.Name, js.Currency))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return stocks, nil
}
