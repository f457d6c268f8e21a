package ledger

import (
	"sort"

	"cryptofolio/internal/domain"

	"github.com/shopspring/decimal"
)

// Tracker keys ledgers by symbol for callers working across a whole
// portfolio at once. Each symbol's ledger stays independent; the
// tracker adds no locking, so concurrent use needs external
// serialization just like a bare Ledger.
type Tracker struct {
	ledgers map[string]*Ledger
}

func NewTracker() *Tracker {
	return &Tracker{
		ledgers: map[string]*Ledger{},
	}
}

func (t *Tracker) ledger(symbol string) *Ledger {
	if _, ok := t.ledgers[symbol]; !ok {
		t.ledgers[symbol] = New(symbol)
	}
	return t.ledgers[symbol]
}

func (t *Tracker) AddPurchase(symbol string, in AddPurchaseInput) (*domain.Lot, error) {
	return t.ledger(symbol).AddPurchase(in)
}

func (t *Tracker) ProcessSale(symbol string, in ProcessSaleInput) (*domain.SaleResult, error) {
	return t.ledger(symbol).ProcessSale(in)
}

func (t *Tracker) TotalQuantity(symbol string) decimal.Decimal {
	if l, ok := t.ledgers[symbol]; ok {
		return l.TotalQuantity()
	}
	return decimal.Zero
}

func (t *Tracker) TotalCostBasis(symbol string) decimal.Decimal {
	if l, ok := t.ledgers[symbol]; ok {
		return l.TotalCostBasis()
	}
	return decimal.Zero
}

func (t *Tracker) AverageCostBasis(symbol string) decimal.Decimal {
	if l, ok := t.ledgers[symbol]; ok {
		return l.AverageCostBasis()
	}
	return decimal.Zero
}

func (t *Tracker) ExportLots(symbol string) []domain.LotExport {
	if l, ok := t.ledgers[symbol]; ok {
		return l.ExportLots()
	}
	return []domain.LotExport{}
}

func (t *Tracker) Symbols() []string {
	symbols := make([]string, 0, len(t.ledgers))
	for s := range t.ledgers {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
