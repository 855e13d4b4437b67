package portfolio

import "github.com/shopspring/decimal"

// ratePlaces is the precision policy for FX rates, regardless of currency.
const ratePlaces = 6

// Rate represents a foreign-exchange conversion rate expressed as
// "1 native unit = Rate reference units".
type Rate struct {
	value decimal.Decimal
}

func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// UnitRate is the rate of an instrument already denominated in the
// reference currency.
func UnitRate() Rate { return R(1) }

func (r Rate) Equal(s Rate) bool { return r.value.Equal(s.value) }
func (r Rate) IsPositive() bool  { return r.value.IsPositive() }
func (r Rate) IsZero() bool      { return r.value.IsZero() }
func (r Rate) String() string    { return r.value.String() }

// Round applies the FX rate precision policy (6 decimal places).
func (r Rate) Round() Rate { return Rate{value: r.value.Round(ratePlaces)} }

// Decimal returns the underlying decimal value.
func (r Rate) Decimal() decimal.Decimal { return r.value }

// OrUnit returns the rate itself, or the unit rate when r is the zero
// value. A missing rate is never an error: a reference-currency
// instrument legitimately converts 1:1.
func (r Rate) OrUnit() Rate {
	if r.value.IsZero() {
		return UnitRate()
	}
	return r
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return r.value.MarshalJSON()
}

func (r *Rate) UnmarshalJSON(decimalBytes []byte) error {
	return r.value.UnmarshalJSON(decimalBytes)
}
