package portfolio

// Stock is the read-only instrument metadata a position refers to. The
// currency tag is what drives unit scaling and feed normalization.
type Stock struct {
	id       string
	symbol   string // feed symbol, including the listing suffix (e.g. "ABC.L")
	name     string
	currency string
}

func NewStock(id, symbol, name, currency string) Stock {
	return Stock{id: id, symbol: symbol, name: name, currency: currency}
}

// ID returns the unique identifier of the stock.
func (s Stock) ID() string { return s.id }

// Symbol returns the feed symbol of the stock.
func (s Stock) Symbol() string { return s.symbol }

// Name returns the display name of the stock.
func (s Stock) Name() string { return s.name }

// Currency returns the currency the stock is quoted in.
func (s Stock) Currency() string { return s.currency }
