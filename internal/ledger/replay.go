package ledger

import (
	"errors"
	"fmt"
	"time"

	cryptofolio_errors "cryptofolio/internal"
	"cryptofolio/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// replay the full event history for one symbol through a fresh ledger.
// there is deliberately no incremental-update path: recomputing from
// scratch every time is what keeps positions drift-free.

type SkippedSale struct {
	TransactionID uuid.UUID
	Date          time.Time
	Reason        string
}

type ReplayResult struct {
	Summary domain.PositionSummary
	// gross realized P&L summed over every applied sale
	RealizedPnL decimal.Decimal
	// purchase + sale fees, accumulated only in fee-exclusive mode.
	// in fee-inclusive mode fees already live inside cost basis.
	TotalFees    decimal.Decimal
	SkippedSales []SkippedSale
}

// Replay folds one symbol's date-ascending transaction history into a
// PositionSummary, starting from an empty ledger. BUY/STAKING/AIRDROP/
// MINING open lots, SELL consumes them FIFO, and every other event type
// is skipped silently. A sale that oversells the ledger is logged and
// skipped so one bad historical row cannot block the whole symbol;
// precondition violations are integration bugs and propagate.
//
// The input is trusted to be sorted ascending by date; Replay does not
// re-sort. The same input always produces the same result.
func Replay(symbol string, txns []domain.Transaction, feeMode domain.FeeMode) (*ReplayResult, error) {
	if err := validateFeeMode(feeMode); err != nil {
		return nil, err
	}

	l := New(symbol)
	result := &ReplayResult{
		RealizedPnL:  decimal.Zero,
		TotalFees:    decimal.Zero,
		SkippedSales: []SkippedSale{},
	}

	var firstPurchase *time.Time
	var lastTransaction *time.Time

	for i := range txns {
		t := txns[i]
		if t.Symbol != symbol {
			return nil, fmt.Errorf("transaction %s has symbol %s, expected %s", t.TransactionID, t.Symbol, symbol)
		}

		switch {
		case t.Type.IsAcquisition():
			if _, err := l.AddPurchase(AddPurchaseInput{
				Quantity:      t.Quantity,
				UnitPrice:     t.UnitPrice,
				Fee:           t.Fee,
				Date:          t.Date,
				TransactionID: t.TransactionID,
				FeeMode:       feeMode,
			}); err != nil {
				return nil, fmt.Errorf("failed to add %s purchase %s: %w", symbol, t.TransactionID, err)
			}
			if firstPurchase == nil {
				d := t.Date
				firstPurchase = &d
			}
			if feeMode == domain.FeeMode_Exclude {
				result.TotalFees = result.TotalFees.Add(t.Fee)
			}

		case t.Type.IsDisposal():
			saleResult, err := l.ProcessSale(ProcessSaleInput{
				Quantity:      t.Quantity,
				SalePrice:     t.UnitPrice,
				Fee:           t.Fee,
				Date:          t.Date,
				TransactionID: t.TransactionID,
				FeeMode:       feeMode,
			})
			var insufficient cryptofolio_errors.ErrInsufficientLots
			if errors.As(err, &insufficient) {
				// bad history, not a bug. skip just this sale and
				// keep replaying the rest of the symbol
				log.Warn().
					Str("symbol", symbol).
					Str("transactionId", t.TransactionID.String()).
					Str("requested", insufficient.Requested.String()).
					Str("available", insufficient.Available.String()).
					Msg("skipping sale exceeding held quantity")
				result.SkippedSales = append(result.SkippedSales, SkippedSale{
					TransactionID: t.TransactionID,
					Date:          t.Date,
					Reason:        insufficient.Error(),
				})
				continue
			} else if err != nil {
				return nil, fmt.Errorf("failed to process %s sale %s: %w", symbol, t.TransactionID, err)
			}
			result.RealizedPnL = result.RealizedPnL.Add(saleResult.RealizedPnL)
			result.TotalFees = result.TotalFees.Add(saleResult.Fee)

		default:
			// deposits, withdrawals, transfers, dividends, fee
			// records and the like never touch the tracked asset
			continue
		}

		d := t.Date
		lastTransaction = &d
	}

	result.Summary = domain.PositionSummary{
		Symbol:              symbol,
		TotalQuantity:       l.TotalQuantity(),
		TotalCostBasis:      l.TotalCostBasis(),
		AvgCostBasis:        l.AverageCostBasis(),
		FirstPurchaseDate:   firstPurchase,
		LastTransactionDate: lastTransaction,
		Lots:                l.ExportLots(),
	}

	return result, nil
}
