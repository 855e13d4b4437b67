package portfolio

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/charlywyss-beep/Portfolio-Manager-sub000/date"
)

// mustLot builds a valid lot for tests and fails fast otherwise.
func mustLot(t *testing.T, on string, shares, price float64, currency string, fx float64) Lot {
	t.Helper()
	l, err := NewLot("", date.MustParse(on), Q(shares), M(price, currency), R(fx))
	if err != nil {
		t.Fatalf("NewLot(%v, %v, %v, %v) failed: %v", on, shares, price, fx, err)
	}
	return l
}

// decimalNear reports whether two decimals agree within the given tolerance.
func decimalNear(a, b decimal.Decimal, tolerance float64) bool {
	return a.Sub(b).Abs().LessThanOrEqual(decimal.NewFromFloat(tolerance))
}

// floatNear reports whether two floats agree within the given tolerance.
func floatNear(a, b, tolerance float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
