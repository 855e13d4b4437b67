package portfolio

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/charlywyss-beep/Portfolio-Manager-sub000/date"
)

// Lot represents a single discrete purchase event contributing to a
// position's cost basis.
type Lot struct {
	ID     string
	Date   date.Date
	Shares Quantity // rounded to 6 decimal places
	Price  Money    // per share, native currency, major unit
	FxRate Rate     // 1 native unit = FxRate reference units, rounded to 6 places
}

// NewLot builds a validated lot, generating an opaque id when none is
// given and applying the field precision policies.
func NewLot(id string, on date.Date, shares Quantity, price Money, fxRate Rate) (Lot, error) {
	l := Lot{
		ID:     id,
		Date:   on,
		Shares: shares.Round(),
		Price:  price.Round(),
		FxRate: fxRate.OrUnit().Round(),
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Date.IsZero() {
		l.Date = date.Today()
	}
	if err := l.validate(); err != nil {
		return Lot{}, err
	}
	return l, nil
}

// validate enforces the lot invariants: shares > 0, price >= 0, fxRate > 0.
func (l Lot) validate() error {
	if !l.Shares.IsPositive() {
		return fmt.Errorf("invalid lot %s: shares must be positive, got %s", l.ID, l.Shares)
	}
	if l.Price.IsNegative() {
		return fmt.Errorf("invalid lot %s: price must not be negative, got %s", l.ID, l.Price.Decimal())
	}
	if !l.FxRate.IsPositive() {
		return fmt.Errorf("invalid lot %s: fx rate must be positive, got %s", l.ID, l.FxRate)
	}
	return nil
}

// nativeCost is the total cost of the lot in the native currency (shares × price).
func (l Lot) nativeCost() Money { return l.Price.Mul(l.Shares) }

// referenceCost is the total cost of the lot in the reference currency.
func (l Lot) referenceCost() Money { return l.nativeCost().MulRate(l.FxRate) }

// Ledger is the append-only, ordered collection of purchase lots for one
// position. Insertion order is irrelevant for aggregation but preserved
// for display and audit.
type Ledger []Lot

// Compact returns the ledger without zero-share lots. Such lots may exist
// transiently while a position is being edited; they are dropped on save.
func (lots Ledger) Compact() Ledger {
	kept := make(Ledger, 0, len(lots))
	for _, l := range lots {
		if l.Shares.IsZero() {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

// Validate checks every lot in the ledger.
func (lots Ledger) Validate() error {
	for _, l := range lots {
		if err := l.validate(); err != nil {
			return err
		}
	}
	return nil
}
