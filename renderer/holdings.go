// Package renderer builds markdown views of positions for terminal display.
package renderer

import (
	"fmt"
	"strings"

	portfolio "github.com/charlywyss-beep/Portfolio-Manager-sub000"
)

// Holdings renders the positions table. Prices are shown in the
// instrument's presentation unit.
func Holdings(positions []portfolio.Position, stocks []portfolio.Stock) string {
	byID := make(map[string]portfolio.Stock, len(stocks))
	for _, s := range stocks {
		byID[s.ID()] = s
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	fmt.Fprintln(&b, "| Symbol | Name | Shares | Avg Price | Currency | Entry FX | Since |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|:---|---:|:---|")

	for _, p := range positions {
		if p.IsClosed() {
			continue
		}
		symbol, name := p.StockID(), ""
		if s, ok := byID[p.StockID()]; ok {
			symbol, name = s.Symbol(), s.Name()
		}
		since := ""
		if !p.BuyDate().IsZero() {
			since = p.BuyDate().String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			symbol,
			name,
			p.Shares(),
			p.BuyPrice().Decimal(),
			p.Currency(),
			p.AverageEntryFxRate(),
			since,
		)
	}
	return b.String()
}

// Lots renders the purchase ledger of one position, in insertion order.
func Lots(p portfolio.Position) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Purchases %s\n\n", p.StockID())

	if !p.HasLedger() {
		fmt.Fprintln(&b, "*no lot history (legacy position)*")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Shares | Price | FX Rate | Lot |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|:---|")
	for _, l := range p.Lots() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			l.Date,
			l.Shares,
			l.Price.Decimal(),
			l.FxRate,
			l.ID,
		)
	}
	return b.String()
}
