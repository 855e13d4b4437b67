package portfolio

import (
	"strings"
	"time"

	"github.com/charlywyss-beep/Portfolio-Manager-sub000/date"
)

// SeriesPoint is one observed price in a feed series, already normalized
// to presentation units.
type SeriesPoint struct {
	Date  date.Date
	Value float64
}

// Quote is an ephemeral market-data observation, exactly as reported by
// the external provider. Its unit (major vs minor) is ambiguous until it
// has gone through the Normalizer.
type Quote struct {
	Symbol        string
	Currency      string
	Price         float64
	PreviousClose float64
	Series        []SeriesPoint
	ObservedAt    time.Time
}

// NormalizerConfig holds the heuristic thresholds used to disambiguate
// feed units. The values are tuned empirically and may misfire for
// illiquid instruments with extreme native prices; treat them as
// configuration, not derived constants.
type NormalizerConfig struct {
	// MinorListingSuffixes flags symbols listed on exchanges that quote
	// in the minor unit (e.g. ".L" for London).
	MinorListingSuffixes []string
	// MajorCurrencies are currencies known to be quoted in their major
	// unit, exempt from the listing-suffix division heuristic.
	MajorCurrencies []string

	// SubUnitThreshold: below this, a minor-unit listing price was
	// reported with the decimal point shifted and is multiplied by 100.
	SubUnitThreshold float64
	// MinorCurrencyThreshold: at or above this, a price in a minor-unit
	// currency was reported in minor units and is divided by 100.
	MinorCurrencyThreshold float64
	// MinorListingThreshold: above this, a minor-unit listing in an
	// unknown currency is divided by 100.
	MinorListingThreshold float64

	// BaselineTolerance is the maximum relative deviation between the
	// previous close and the first intraday point before the close is
	// replaced by that point.
	BaselineTolerance float64
	// UnderScaledLow/High delimit the last-point/close ratio window in
	// which the close is deemed under-scaled by ~100x.
	UnderScaledLow, UnderScaledHigh float64
	// OverScaledLow/High delimit the window in which it is over-scaled.
	OverScaledLow, OverScaledHigh float64
}

// DefaultNormalizerConfig returns the empirically tuned thresholds.
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		MinorListingSuffixes:   []string{".L", ".IL"},
		MajorCurrencies:        []string{"CHF", "USD", "EUR", "GBP", "JPY", "CAD", "AUD"},
		SubUnitThreshold:       0.5,
		MinorCurrencyThreshold: 25,
		MinorListingThreshold:  50,
		BaselineTolerance:      0.03,
		UnderScaledLow:         90,
		UnderScaledHigh:        120,
		OverScaledLow:          0.008,
		OverScaledHigh:         0.012,
	}
}

// Normalizer corrects prices and reference values arriving from a feed
// whose unit reporting is inconsistent per exchange and symbol. It never
// fails: a best-effort corrected value beats no value in a tracker that
// only displays, never settles.
type Normalizer struct {
	cfg NormalizerConfig
}

// NewNormalizer builds a normalizer from the given thresholds.
func NewNormalizer(cfg NormalizerConfig) Normalizer {
	return Normalizer{cfg: cfg}
}

// isMinorListing reports whether the symbol's listing suffix marks an
// exchange quoting in the minor unit.
func (n Normalizer) isMinorListing(symbol string) bool {
	for _, suffix := range n.cfg.MinorListingSuffixes {
		if strings.HasSuffix(symbol, suffix) {
			return true
		}
	}
	return false
}

func (n Normalizer) isMajorCurrency(currency string) bool {
	for _, c := range n.cfg.MajorCurrencies {
		if c == currency {
			return true
		}
	}
	return false
}

// NormalizePrice corrects a raw feed price into presentation units.
//
// The feed does not reliably disambiguate "125" pence from "125" pounds
// for certain exchanges, so magnitude thresholds plus currency and
// exchange hints are used as a best-effort disambiguator. The correction
// is lossy by design.
func (n Normalizer) NormalizePrice(rawPrice float64, rawCurrency, symbol string) float64 {
	switch {
	case n.isMinorListing(symbol) && rawPrice < n.cfg.SubUnitThreshold:
		// minor-unit price reported as if it were a major-unit price
		// with the decimal point shifted
		return rawPrice * 100
	case IsMinorUnit(rawCurrency) && rawPrice >= n.cfg.MinorCurrencyThreshold:
		return rawPrice / 100
	case n.isMinorListing(symbol) && rawPrice > n.cfg.MinorListingThreshold && !n.isMajorCurrency(rawCurrency):
		return rawPrice / 100
	default:
		return rawPrice
	}
}

// ReconcileReferenceClose sanity-checks the feed's previous-close field
// against the observed series and corrects unit mismatches. The close and
// the series are sometimes sourced from different feed paths with
// independently buggy unit handling.
//
// The series must already be normalized. The baseline check against the
// first point only applies to intraday series, where the observed data is
// more trustworthy than the reported close.
func (n Normalizer) ReconcileReferenceClose(series []SeriesPoint, rawPreviousClose float64, currency, symbol string, intraday bool) float64 {
	previousClose := n.NormalizePrice(rawPreviousClose, currency, symbol)

	if intraday && len(series) > 0 {
		first := series[0].Value
		if first > 0 {
			deviation := (previousClose - first) / first
			if deviation > n.cfg.BaselineTolerance || deviation < -n.cfg.BaselineTolerance {
				previousClose = first
			}
		}
	}

	if len(series) > 0 && previousClose > 0 {
		ratio := series[len(series)-1].Value / previousClose
		switch {
		case ratio > n.cfg.UnderScaledLow && ratio < n.cfg.UnderScaledHigh:
			previousClose *= 100
		case ratio > n.cfg.OverScaledLow && ratio < n.cfg.OverScaledHigh:
			previousClose /= 100
		}
	}
	return previousClose
}
