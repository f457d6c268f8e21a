package ledger

import (
	"fmt"
	"time"

	cryptofolio_errors "cryptofolio/internal"
	"cryptofolio/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProcessSaleInput struct {
	Quantity      decimal.Decimal
	SalePrice     decimal.Decimal
	Fee           decimal.Decimal
	Date          time.Time
	TransactionID uuid.UUID
	FeeMode       domain.FeeMode
}

// ProcessSale consumes lots oldest-first, splitting the front lot when
// the sale only partially drains it. Realized P&L derives strictly from
// the consumed lots; open lots are never revalued. If the ledger holds
// less than the requested quantity the sale fails atomically with
// ErrInsufficientLots and nothing is mutated.
func (l *Ledger) ProcessSale(in ProcessSaleInput) (*domain.SaleResult, error) {
	if in.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("sale must have quantity higher than 0, received %s", in.Quantity.String())
	}
	if in.SalePrice.IsNegative() {
		return nil, fmt.Errorf("sale has invalid price %s", in.SalePrice.String())
	}
	if in.Fee.IsNegative() {
		return nil, fmt.Errorf("sale has invalid fee %s", in.Fee.String())
	}
	if err := validateFeeMode(in.FeeMode); err != nil {
		return nil, err
	}

	// checking availability up front is what makes failure atomic:
	// once the walk starts it cannot run out
	if l.totalQuantity.LessThan(in.Quantity) {
		return nil, cryptofolio_errors.ErrInsufficientLots{
			Symbol:        l.symbol,
			TransactionID: in.TransactionID,
			Requested:     in.Quantity,
			Available:     l.totalQuantity,
		}
	}

	remaining := in.Quantity
	realized := decimal.Zero
	consumedLotIDs := []uuid.UUID{}

	for remaining.GreaterThan(decimal.Zero) {
		lot := l.lots[0]
		taken := remaining
		if lot.Quantity.LessThan(remaining) {
			taken = lot.Quantity
		}

		realized = realized.Add(in.SalePrice.Sub(lot.CostBasis).Mul(taken))
		consumedLotIDs = append(consumedLotIDs, lot.LotID)

		lot.Quantity = lot.Quantity.Sub(taken)
		l.totalQuantity = l.totalQuantity.Sub(taken)
		l.totalCostBasis = l.totalCostBasis.Sub(lot.CostBasis.Mul(taken))
		if lot.Quantity.IsZero() {
			l.lots = l.lots[1:]
		}

		remaining = remaining.Sub(taken)
	}

	fee := decimal.Zero
	if in.FeeMode == domain.FeeMode_Exclude {
		fee = in.Fee
	}

	return &domain.SaleResult{
		TransactionID:  in.TransactionID,
		Quantity:       in.Quantity,
		RealizedPnL:    realized,
		Fee:            fee,
		ConsumedLotIDs: consumedLotIDs,
	}, nil
}
