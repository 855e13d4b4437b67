package portfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a currency's major (presentation) unit.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's full currency metadata.
func (m Money) currency() money.Currency {
	// the Money constructor guarantees a never-nil currency
	return *money.New(0, m.cur).Currency()
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// Mul returns the cost of a quantity of shares at price m.
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value), cur: m.cur} }

// Div returns the per-share price of a total cost m over q shares.
func (m Money) Div(q Quantity) Money { return Money{value: m.value.Div(q.value), cur: m.cur} }

// MulRate converts m to the reference currency at the given FX rate.
func (m Money) MulRate(r Rate) Money { return Money{value: m.value.Mul(r.value), cur: ReferenceCurrency} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// Round applies the price precision policy: 2 decimal places generally, 4
// for minor-unit currencies so sub-penny precision survives in the major unit.
func (m Money) Round() Money {
	return Money{value: m.value.Round(PriceDecimals(m.cur)), cur: m.cur}
}

// Decimal returns the underlying decimal value, in the major unit.
func (m Money) Decimal() decimal.Decimal { return m.value }

// InexactFloat64 returns the nearest float64 for display-oriented callers.
func (m Money) InexactFloat64() float64 { return m.value.InexactFloat64() }

// ToStorage returns the value in the currency's storage unit (the minor
// unit when the currency has one, e.g. pence for GBX).
func (m Money) ToStorage() decimal.Decimal {
	return m.value.Mul(decimal.NewFromInt(MinorUnitDivisor(m.cur)))
}

// FromStorage builds a Money from a storage-unit amount.
func FromStorage(value decimal.Decimal, currency string) Money {
	return Money{
		value: value.Div(decimal.NewFromInt(MinorUnitDivisor(currency))),
		cur:   currency,
	}
}

// String returns the string representation of the money value.
func (m Money) String() string {
	c := m.currency()
	dec := m.value.Shift(int32(c.Fraction))
	return c.Formatter().Format(dec.IntPart())
}
