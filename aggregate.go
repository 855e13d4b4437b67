package portfolio

import "github.com/charlywyss-beep/Portfolio-Manager-sub000/date"

// Aggregates holds the position metrics derived from a purchase ledger.
// All four fields are fully determined by the ledger and are never set
// independently once a ledger exists.
type Aggregates struct {
	TotalShares    Quantity
	AvgPriceNative Money     // per share, native currency, major unit
	AvgFxRate      Rate      // cost-weighted average entry rate
	EarliestDate   date.Date // zero value when the ledger is empty
}

// Recompute derives the aggregate metrics from a ledger.
//
// The average FX rate is weighted by native cost (shares × price), not by
// shares. This mirrors how entry rates were recorded historically and is
// kept as-is pending domain review.
//
// An empty ledger is not an error: it yields zero shares, a zero price,
// a unit FX rate and no date. Callers must treat that as "no position".
func Recompute(lots Ledger, currency string) Aggregates {
	totalShares := Q(0)
	totalNativeCost := M(0, currency)
	totalReferenceCost := M(0, ReferenceCurrency)

	for _, l := range lots {
		totalShares = totalShares.Add(l.Shares)
		totalNativeCost = totalNativeCost.Add(l.nativeCost())
		totalReferenceCost = totalReferenceCost.Add(l.referenceCost())
	}

	agg := Aggregates{
		TotalShares:    totalShares,
		AvgPriceNative: M(0, currency),
		AvgFxRate:      UnitRate(),
	}
	if totalShares.IsPositive() {
		agg.AvgPriceNative = totalNativeCost.Div(totalShares)
	}
	if totalNativeCost.IsPositive() {
		agg.AvgFxRate = R(totalReferenceCost.Decimal().Div(totalNativeCost.Decimal()))
	}
	for _, l := range lots {
		if agg.EarliestDate.IsZero() {
			agg.EarliestDate = l.Date
			continue
		}
		agg.EarliestDate = agg.EarliestDate.Min(l.Date)
	}
	return agg
}

// rounded applies the field precision policies before the aggregates are
// persisted on a position.
func (a Aggregates) rounded() Aggregates {
	a.TotalShares = a.TotalShares.Round()
	a.AvgPriceNative = a.AvgPriceNative.Round()
	a.AvgFxRate = a.AvgFxRate.Round()
	return a
}
