package types

import (
	"time"

	"cryptofolio/internal/domain"

	"github.com/shopspring/decimal"
)

type TransactionInput struct {
	Symbol    string          `json:"symbol"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Fee       decimal.Decimal `json:"fee"`
	// yyyy-mm-dd
	Date string `json:"date"`
}

type CreateTransactionsRequest struct {
	Transactions []TransactionInput `json:"transactions"`
}

type PositionResponse struct {
	Symbol              string             `json:"symbol"`
	TotalQuantity       decimal.Decimal    `json:"totalQuantity"`
	TotalCostBasis      decimal.Decimal    `json:"totalCostBasis"`
	AvgCostBasis        decimal.Decimal    `json:"avgCostBasis"`
	FirstPurchaseDate   *time.Time         `json:"firstPurchaseDate"`
	LastTransactionDate *time.Time         `json:"lastTransactionDate"`
	Lots                []domain.LotExport `json:"lots"`
}

type RealizedPnlResponse struct {
	GrossPnl  decimal.Decimal            `json:"grossPnl"`
	TotalFees decimal.Decimal            `json:"totalFees"`
	NetPnl    decimal.Decimal            `json:"netPnl"`
	BySymbol  map[string]decimal.Decimal `json:"bySymbol"`
}

func PositionResponseFromDomain(p domain.PositionSummary) PositionResponse {
	return PositionResponse{
		Symbol:              p.Symbol,
		TotalQuantity:       p.TotalQuantity,
		TotalCostBasis:      p.TotalCostBasis,
		AvgCostBasis:        p.AvgCostBasis,
		FirstPurchaseDate:   p.FirstPurchaseDate,
		LastTransactionDate: p.LastTransactionDate,
		Lots:                p.Lots,
	}
}
