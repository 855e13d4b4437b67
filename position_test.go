package portfolio

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/charlywyss-beep/Portfolio-Manager-sub000/date"
)

func TestNewPositionDerivesAggregates(t *testing.T) {
	lots := Ledger{
		mustLot(t, "2024-01-10", 10, 100, "USD", 1.1),
		mustLot(t, "2024-03-05", 5, 130, "USD", 1.0),
	}
	p, err := NewPosition("", "stock-1", "USD", lots)
	if err != nil {
		t.Fatalf("NewPosition() failed: %v", err)
	}

	if !p.Shares().Equal(Q(15)) {
		t.Errorf("Shares() = %v, want 15", p.Shares())
	}
	// USD has no minor-unit split, storage units == major units
	if got := p.BuyPriceAvg().String(); got != "110" {
		t.Errorf("BuyPriceAvg() = %s, want 110", got)
	}
	if got := p.AverageEntryFxRate().String(); got != "1.060606" {
		t.Errorf("AverageEntryFxRate() = %s, want 1.060606", got)
	}
	if p.BuyDate().String() != "2024-01-10" {
		t.Errorf("BuyDate() = %v, want 2024-01-10", p.BuyDate())
	}
}

func TestNewPositionMinorUnitStorage(t *testing.T) {
	// A pence-quoted instrument stores its average price in pence.
	lots := Ledger{mustLot(t, "2024-01-10", 100, 1.2345, "GBX", 1.14)}
	p, err := NewPosition("", "stock-gb", "GBX", lots)
	if err != nil {
		t.Fatalf("NewPosition() failed: %v", err)
	}
	if got := p.BuyPriceAvg().String(); got != "123.45" {
		t.Errorf("BuyPriceAvg() = %s pence, want 123.45", got)
	}
	if !p.BuyPrice().Equal(M(1.2345, "GBX")) {
		t.Errorf("BuyPrice() = %v, want 1.2345", p.BuyPrice().Decimal())
	}
}

func TestNewPositionDropsZeroShareLots(t *testing.T) {
	keep := mustLot(t, "2024-01-01", 2, 10, "USD", 1)
	zero := keep
	zero.Shares = Q(0)

	p, err := NewPosition("", "stock-1", "USD", Ledger{zero, keep})
	if err != nil {
		t.Fatalf("NewPosition() failed: %v", err)
	}
	if len(p.Lots()) != 1 {
		t.Errorf("Lots() kept %d lots, want 1", len(p.Lots()))
	}
}

func TestNewPositionRejectsInvalidLot(t *testing.T) {
	bad := mustLot(t, "2024-01-01", 2, 10, "USD", 1)
	bad.Shares = Q(-1)

	if _, err := NewPosition("", "stock-1", "USD", Ledger{bad}); err == nil {
		t.Error("NewPosition() accepted a negative-share lot")
	}
}

func TestMigrateLegacy(t *testing.T) {
	legacy := NewLegacyPosition("pos-1", "stock-gb", "GBX",
		Q(25), decimal.NewFromFloat(123.45), R(1.14), date.MustParse("2020-03-02"))

	migrated := MigrateLegacy(legacy)

	if !migrated.HasLedger() {
		t.Fatal("MigrateLegacy() did not synthesize a ledger")
	}
	lots := migrated.Lots()
	if len(lots) != 1 {
		t.Fatalf("MigrateLegacy() synthesized %d lots, want 1", len(lots))
	}
	l := lots[0]
	if !l.Shares.Equal(Q(25)) {
		t.Errorf("lot shares = %v, want 25", l.Shares)
	}
	// 123.45 pence stored -> 1.2345 pounds presented
	if got := l.Price.Decimal().String(); got != "1.2345" {
		t.Errorf("lot price = %s, want 1.2345", got)
	}
	if !l.FxRate.Equal(R(1.14)) {
		t.Errorf("lot fx = %v, want 1.14", l.FxRate)
	}
	if l.Date.String() != "2020-03-02" {
		t.Errorf("lot date = %v, want 2020-03-02", l.Date)
	}

	// aggregates survive the migration unchanged
	if got := migrated.BuyPriceAvg().String(); got != "123.45" {
		t.Errorf("BuyPriceAvg() = %s, want 123.45", got)
	}
}

func TestMigrateLegacyIdempotent(t *testing.T) {
	legacy := NewLegacyPosition("pos-1", "stock-1", "USD",
		Q(10), decimal.NewFromInt(50), R(0.9), date.MustParse("2019-11-20"))

	once := MigrateLegacy(legacy)
	twice := MigrateLegacy(once)
	if !reflect.DeepEqual(once, twice) {
		t.Error("MigrateLegacy() of an already-migrated position changed it")
	}

	// two independent migrations of the same record are bit-identical
	again := MigrateLegacy(legacy)
	if !reflect.DeepEqual(once, again) {
		t.Error("MigrateLegacy() is not deterministic for the same legacy record")
	}
}

func TestMigrateLegacyMalformed(t *testing.T) {
	// no shares and no lots: an empty position, not an error
	empty := NewLegacyPosition("pos-1", "stock-1", "USD", Q(0), decimal.Zero, Rate{}, date.Date{})
	got := MigrateLegacy(empty)
	if got.HasLedger() {
		t.Error("MigrateLegacy() synthesized a lot for an empty legacy position")
	}
	if !got.IsClosed() {
		t.Error("empty legacy position should be closed")
	}
}

func TestMigrateLegacyDefaultsDateToToday(t *testing.T) {
	legacy := NewLegacyPosition("pos-1", "stock-1", "USD",
		Q(1), decimal.NewFromInt(10), R(1), date.Date{})
	got := MigrateLegacy(legacy)
	lots := got.Lots()
	if len(lots) != 1 || lots[0].Date.IsZero() {
		t.Error("MigrateLegacy() should default the lot date to today")
	}
}

func TestDeleteLot(t *testing.T) {
	a := mustLot(t, "2024-01-10", 10, 100, "USD", 1.1)
	b := mustLot(t, "2024-03-05", 5, 130, "USD", 1.0)
	p, err := NewPosition("", "stock-1", "USD", Ledger{a, b})
	if err != nil {
		t.Fatalf("NewPosition() failed: %v", err)
	}

	got, err := p.DeleteLot(a.ID)
	if err != nil {
		t.Fatalf("DeleteLot() failed: %v", err)
	}
	if !got.Shares().Equal(Q(5)) {
		t.Errorf("Shares() after delete = %v, want 5", got.Shares())
	}
	if got.BuyDate().String() != "2024-03-05" {
		t.Errorf("BuyDate() after delete = %v, want 2024-03-05", got.BuyDate())
	}

	if _, err := got.DeleteLot("missing"); err == nil {
		t.Error("DeleteLot() of an unknown id should fail")
	}
}
