package portfolio

import "github.com/Rhymond/go-money"

// ReferenceCurrency is the single currency to which all multi-currency
// holdings are normalized for portfolio-level totals.
const ReferenceCurrency = "CHF"

// minorUnitDivisors tags the currencies that are themselves the minor unit
// of another currency. Instruments quoted in them are stored in that unit
// to avoid rounding drift across many small buy operations, and presented
// in the major unit (divisor 100 away).
var minorUnitDivisors = map[string]int64{
	"GBX": 100, // pence, quoted on the London Stock Exchange
	"GBp": 100, // alternate pence code used by some feeds
	"ZAc": 100, // South African cents
	"ILA": 100, // Israeli agorot
}

func init() {
	// go-money does not know sub-unit quote currencies; register them so
	// formatting and fraction lookups work like any other currency.
	money.AddCurrency("GBX", "p", "1 $", ".", ",", 2)
	money.AddCurrency("GBp", "p", "1 $", ".", ",", 2)
	money.AddCurrency("ZAc", "c", "1 $", ".", ",", 2)
	money.AddCurrency("ILA", "a", "1 $", ".", ",", 2)
}

// MinorUnitDivisor returns the factor between a currency's storage unit
// and its presentation unit: 100 for minor-unit currencies, 1 otherwise.
func MinorUnitDivisor(currency string) int64 {
	if d, ok := minorUnitDivisors[currency]; ok {
		return d
	}
	return 1
}

// IsMinorUnit reports whether the currency is a minor-unit quote currency.
func IsMinorUnit(currency string) bool {
	_, ok := minorUnitDivisors[currency]
	return ok
}

// PriceDecimals returns the number of decimal places to keep for prices in
// the given currency's major unit: 4 for minor-unit currencies (the major
// unit is small, so two decimals would lose sub-penny precision), 2 otherwise.
func PriceDecimals(currency string) int32 {
	if IsMinorUnit(currency) {
		return 4
	}
	return 2
}
