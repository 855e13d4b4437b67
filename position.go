package portfolio

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/charlywyss-beep/Portfolio-Manager-sub000/date"
)

// Position is a holding of one instrument, backed by its purchase-lot
// ledger. When the ledger is non-empty, all aggregate fields are derived
// from it; they can never be set independently. A position with an empty
// ledger and non-zero shares is a legacy record predating lot tracking,
// to be reconciled with MigrateLegacy before any recompute.
type Position struct {
	id       string
	stockID  string
	currency string // native currency of the instrument

	// derived fields, determined by the purchases ledger
	shares      Quantity
	buyPriceAvg decimal.Decimal // storage units (minor unit if applicable)
	avgEntryFx  Rate
	buyDate     date.Date
	purchases   Ledger
}

// NewPosition derives a position from its ledger. Zero-share lots are
// dropped, remaining lots are validated, aggregates are computed and
// rounded per field policy.
func NewPosition(id, stockID, currency string, lots Ledger) (Position, error) {
	if id == "" {
		id = uuid.NewString()
	}
	lots = lots.Compact()
	if err := lots.Validate(); err != nil {
		return Position{}, fmt.Errorf("position %s: %w", id, err)
	}
	p := Position{
		id:        id,
		stockID:   stockID,
		currency:  currency,
		purchases: lots,
	}
	p.refresh()
	return p, nil
}

// NewLegacyPosition rebuilds a pre-ledger position from its stored
// aggregate fields. The buy price is given in storage units.
func NewLegacyPosition(id, stockID, currency string, shares Quantity, buyPriceAvg decimal.Decimal, fxRate Rate, buyDate date.Date) Position {
	if id == "" {
		id = uuid.NewString()
	}
	return Position{
		id:          id,
		stockID:     stockID,
		currency:    currency,
		shares:      shares.Round(),
		buyPriceAvg: buyPriceAvg,
		avgEntryFx:  fxRate.OrUnit().Round(),
		buyDate:     buyDate,
	}
}

func (p Position) ID() string       { return p.id }
func (p Position) StockID() string  { return p.stockID }
func (p Position) Currency() string { return p.currency }

// Shares is the total share count, Σ lot.shares.
func (p Position) Shares() Quantity { return p.shares }

// BuyPriceAvg is the weighted-average purchase price in storage units
// (minor unit for GBX-like currencies).
func (p Position) BuyPriceAvg() decimal.Decimal { return p.buyPriceAvg }

// BuyPrice is the weighted-average purchase price in presentation units.
func (p Position) BuyPrice() Money { return FromStorage(p.buyPriceAvg, p.currency) }

// AverageEntryFxRate is the cost-weighted average FX rate at acquisition.
func (p Position) AverageEntryFxRate() Rate { return p.avgEntryFx }

// BuyDate is the earliest acquisition date across all lots.
func (p Position) BuyDate() date.Date { return p.buyDate }

// Lots returns a copy of the purchase ledger in insertion order.
func (p Position) Lots() Ledger {
	lots := make(Ledger, len(p.purchases))
	copy(lots, p.purchases)
	return lots
}

// HasLedger reports whether the position carries lot-level history.
func (p Position) HasLedger() bool { return len(p.purchases) > 0 }

// IsClosed reports whether the position holds nothing anymore. Closed
// positions may be removed by their owning collaborator.
func (p Position) IsClosed() bool { return len(p.purchases) == 0 && p.shares.IsZero() }

// refresh recomputes the derived fields from the ledger and applies the
// field precision policies. The average price is rounded in the major
// unit, then converted to storage units.
func (p *Position) refresh() {
	agg := Recompute(p.purchases, p.currency).rounded()
	p.shares = agg.TotalShares
	p.buyPriceAvg = agg.AvgPriceNative.ToStorage()
	p.avgEntryFx = agg.AvgFxRate
	p.buyDate = agg.EarliestDate
}

// MigrateLegacy reconciles a pre-ledger position into a single synthetic
// lot carrying its aggregate fields, so older positions remain editable
// without losing their cost basis. It is idempotent: once the ledger is
// non-empty the position is returned unchanged. A malformed legacy record
// with no shares is treated as an empty position, not an error.
func MigrateLegacy(p Position) Position {
	if p.HasLedger() {
		return p
	}
	if !p.shares.IsPositive() {
		return p
	}
	on := p.buyDate
	if on.IsZero() {
		on = date.Today()
	}
	// The synthetic lot id is derived from the position id so that two
	// migrations of the same record produce bit-identical ledgers.
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("legacy:"+p.id)).String()
	lot, err := NewLot(id, on, p.shares, p.BuyPrice(), p.avgEntryFx)
	if err != nil {
		// shares > 0 was checked above; the stored price and rate can
		// only fail validation if the record was corrupted on disk.
		return p
	}
	p.purchases = Ledger{lot}
	p.refresh()
	return p
}

// DeleteLot removes one lot by id and recomputes the aggregates. Deleting
// lots is the only destructive edit path, and it is always explicit.
func (p Position) DeleteLot(id string) (Position, error) {
	kept := make(Ledger, 0, len(p.purchases))
	found := false
	for _, l := range p.purchases {
		if l.ID == id {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return p, fmt.Errorf("position %s: no lot %q", p.id, id)
	}
	p.purchases = kept
	p.refresh()
	return p, nil
}
