package portfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRecompute(t *testing.T) {
	lots := Ledger{
		mustLot(t, "2024-01-10", 10, 100, "USD", 1.1),
		mustLot(t, "2024-03-05", 5, 130, "USD", 1.0),
	}

	agg := Recompute(lots, "USD")

	if !agg.TotalShares.Equal(Q(15)) {
		t.Errorf("TotalShares = %v, want 15", agg.TotalShares)
	}
	// (10·100 + 5·130) / 15 = 110
	if !agg.AvgPriceNative.Equal(M(110, "USD")) {
		t.Errorf("AvgPriceNative = %v, want 110", agg.AvgPriceNative.Decimal())
	}
	// cost-weighted: (10·100·1.1 + 5·130·1.0) / (10·100 + 5·130) = 1750/1650
	want := decimal.NewFromInt(1750).Div(decimal.NewFromInt(1650))
	if !decimalNear(agg.AvgFxRate.Decimal(), want, 1e-6) {
		t.Errorf("AvgFxRate = %v, want %v", agg.AvgFxRate, want)
	}
	if agg.EarliestDate.String() != "2024-01-10" {
		t.Errorf("EarliestDate = %v, want 2024-01-10", agg.EarliestDate)
	}
}

func TestRecomputeEmptyLedger(t *testing.T) {
	// An empty ledger means "no position", never an error.
	agg := Recompute(nil, "USD")

	if !agg.TotalShares.IsZero() {
		t.Errorf("TotalShares = %v, want 0", agg.TotalShares)
	}
	if !agg.AvgPriceNative.IsZero() {
		t.Errorf("AvgPriceNative = %v, want 0", agg.AvgPriceNative.Decimal())
	}
	if !agg.AvgFxRate.Equal(UnitRate()) {
		t.Errorf("AvgFxRate = %v, want 1", agg.AvgFxRate)
	}
	if !agg.EarliestDate.IsZero() {
		t.Errorf("EarliestDate = %v, want zero", agg.EarliestDate)
	}
}

func TestRecomputeZeroCost(t *testing.T) {
	// Free shares (spin-offs) have a zero cost; the FX average falls back
	// to the unit rate instead of dividing by zero.
	lots := Ledger{mustLot(t, "2024-01-10", 10, 0, "USD", 1.1)}

	agg := Recompute(lots, "USD")

	if !agg.TotalShares.Equal(Q(10)) {
		t.Errorf("TotalShares = %v, want 10", agg.TotalShares)
	}
	if !agg.AvgPriceNative.IsZero() {
		t.Errorf("AvgPriceNative = %v, want 0", agg.AvgPriceNative.Decimal())
	}
	if !agg.AvgFxRate.Equal(UnitRate()) {
		t.Errorf("AvgFxRate = %v, want 1", agg.AvgFxRate)
	}
}

func TestRecomputeEarliestDateIgnoresOrder(t *testing.T) {
	lots := Ledger{
		mustLot(t, "2025-06-01", 1, 10, "EUR", 1),
		mustLot(t, "2023-02-14", 1, 10, "EUR", 1),
		mustLot(t, "2024-12-31", 1, 10, "EUR", 1),
	}
	agg := Recompute(lots, "EUR")
	if agg.EarliestDate.String() != "2023-02-14" {
		t.Errorf("EarliestDate = %v, want 2023-02-14", agg.EarliestDate)
	}
}
