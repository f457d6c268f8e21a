package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LotExport is the serialized form of one remaining lot. Exports are a
// write-only audit artifact: they are persisted alongside the position
// row but never parsed back into a ledger.
type LotExport struct {
	Quantity      decimal.Decimal `json:"quantity"`
	CostBasis     decimal.Decimal `json:"unit_cost_basis"`
	Date          time.Time       `json:"date"`
	TransactionID uuid.UUID       `json:"transaction_id"`
}

type PositionSummary struct {
	Symbol              string
	TotalQuantity       decimal.Decimal
	TotalCostBasis      decimal.Decimal
	AvgCostBasis        decimal.Decimal
	FirstPurchaseDate   *time.Time
	LastTransactionDate *time.Time
	Lots                []LotExport
}

func (p PositionSummary) MarketValue(currentPrice decimal.Decimal) decimal.Decimal {
	return p.TotalQuantity.Mul(currentPrice)
}

// UnrealizedPnL needs a caller-supplied price; nothing in this package
// fetches market data.
func (p PositionSummary) UnrealizedPnL(currentPrice decimal.Decimal) decimal.Decimal {
	return p.MarketValue(currentPrice).Sub(p.TotalCostBasis)
}

// RealizedPnLBreakdown is the portfolio-wide view computed in
// fee-exclusive mode, so gross gains and fees stay separate figures.
type RealizedPnLBreakdown struct {
	GrossPnL  decimal.Decimal
	TotalFees decimal.Decimal
	NetPnL    decimal.Decimal
	BySymbol  map[string]decimal.Decimal
}
