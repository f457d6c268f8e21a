package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lot is a quantity acquired by a single event, tracked until fully
// sold. CostBasis is per-unit and fixed at creation; only Quantity
// ever changes, and only downward.
type Lot struct {
	LotID         uuid.UUID
	TransactionID uuid.UUID
	Quantity      decimal.Decimal
	CostBasis     decimal.Decimal
	Date          time.Time
}

func (l Lot) DeepCopy() *Lot {
	return &Lot{
		LotID:         l.LotID,
		TransactionID: l.TransactionID,
		Quantity:      l.Quantity,
		CostBasis:     l.CostBasis,
		Date:          l.Date,
	}
}

// SaleResult describes one processed sale. RealizedPnL is the gross
// gain over the consumed lots' basis; Fee carries the sale fee only in
// fee-exclusive mode (in basis-inclusive mode the fee already lives in
// the matched lots' basis and Fee is zero).
type SaleResult struct {
	TransactionID  uuid.UUID
	Quantity       decimal.Decimal
	RealizedPnL    decimal.Decimal
	Fee            decimal.Decimal
	ConsumedLotIDs []uuid.UUID
}
