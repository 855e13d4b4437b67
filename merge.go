package portfolio

import (
	"fmt"

	"github.com/charlywyss-beep/Portfolio-Manager-sub000/date"
)

// Purchase is an incoming buy submitted by a collaborator (manual entry
// or bulk import). It either carries its own lot history or describes a
// single purchase through the scalar fields.
type Purchase struct {
	StockID string
	Shares  Quantity
	Price   Money     // per share, native currency, major unit
	FxRate  Rate      // optional; the zero value defaults to 1.0
	Date    date.Date // optional; the zero value defaults to today
	Lots    Ledger    // optional lot history
}

// currency is the native currency the incoming purchase is quoted in.
func (in Purchase) currency() string {
	if c := in.Price.Currency(); c != "" {
		return c
	}
	for _, l := range in.Lots {
		if c := l.Price.Currency(); c != "" {
			return c
		}
	}
	return ""
}

// ledger returns the incoming lots, synthesizing a single lot from the
// scalar fields when no history was provided. Every lot is rebuilt
// through NewLot so ids, dates, precision policies and invariants are
// enforced uniformly. Lots quoted without a currency inherit the given
// one; a lot quoted in any other currency is rejected.
func (in Purchase) ledger(currency string) (Ledger, error) {
	if len(in.Lots) > 0 {
		out := make(Ledger, 0, len(in.Lots))
		for _, l := range in.Lots {
			price := l.Price
			if price.Currency() == "" {
				price = M(price.Decimal(), currency)
			} else if price.Currency() != currency {
				return nil, fmt.Errorf("lot %s: currency %s does not match %s", l.ID, price.Currency(), currency)
			}
			lot, err := NewLot(l.ID, l.Date, l.Shares, price, l.FxRate)
			if err != nil {
				return nil, err
			}
			out = append(out, lot)
		}
		return out, nil
	}
	price := in.Price
	if price.Currency() == "" {
		price = M(price.Decimal(), currency)
	}
	lot, err := NewLot("", in.Date, in.Shares, price, in.FxRate)
	if err != nil {
		return nil, err
	}
	return Ledger{lot}, nil
}

// Merge combines an incoming purchase into an existing position's ledger,
// or creates a new position when existing is nil. Merging never discards
// a lot: a pre-ledger existing position first gets its legacy history
// synthesized, then the incoming lots are appended and the aggregates
// recomputed over the combined ledger.
//
// The merge is all-or-nothing: on error the existing position is
// untouched. It is commutative with respect to the final aggregates, but
// the ledger preserves insertion order for audit.
//
// Callers must serialize concurrent merges against the same position;
// each merge must see the previous merge's output.
func Merge(existing *Position, incoming Purchase) (Position, error) {
	currency := incoming.currency()
	if existing != nil {
		if currency != "" && currency != existing.Currency() {
			return Position{}, fmt.Errorf("merge rejected: currency %s does not match position currency %s", currency, existing.Currency())
		}
		currency = existing.Currency()
	}

	added, err := incoming.ledger(currency)
	if err != nil {
		return Position{}, fmt.Errorf("merge rejected: %w", err)
	}

	if existing == nil {
		return NewPosition("", incoming.StockID, currency, added)
	}

	base := MigrateLegacy(*existing)
	return NewPosition(base.ID(), base.StockID(), base.Currency(), append(base.Lots(), added...))
}
