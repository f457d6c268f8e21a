package ledger

import (
	"testing"
	"time"

	"cryptofolio/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func txn(symbol string, txnType domain.TransactionType, quantity, price, fee float64, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.New(),
		Symbol:        symbol,
		Type:          txnType,
		Quantity:      dec(quantity),
		UnitPrice:     dec(price),
		Fee:           dec(fee),
		Date:          date,
	}
}

func TestReplay(t *testing.T) {
	t.Run("rewards open lots like buys", func(t *testing.T) {
		txns := []domain.Transaction{
			txn("ETH", domain.TransactionType_Buy, 2, 1000, 0, day(1)),
			txn("ETH", domain.TransactionType_Staking, 0.1, 1100, 0, day(2)),
			txn("ETH", domain.TransactionType_Airdrop, 0.05, 0, 0, day(3)),
			txn("ETH", domain.TransactionType_Mining, 0.2, 1200, 0, day(4)),
		}
		result, err := Replay("ETH", txns, domain.FeeMode_Exclude)
		require.NoError(t, err)

		require.True(t, result.Summary.TotalQuantity.Equal(dec(2.35)))
		// 2*1000 + 0.1*1100 + 0.05*0 + 0.2*1200
		require.True(t, result.Summary.TotalCostBasis.Equal(dec(2350)))
		require.Len(t, result.Summary.Lots, 4)
		require.Equal(t, day(1), *result.Summary.FirstPurchaseDate)
		require.Equal(t, day(4), *result.Summary.LastTransactionDate)
	})

	t.Run("non-trading events never touch the ledger", func(t *testing.T) {
		txns := []domain.Transaction{
			txn("BTC", domain.TransactionType_Deposit, 500, 1, 0, day(1)),
			txn("BTC", domain.TransactionType_Buy, 1, 30000, 0, day(2)),
			txn("BTC", domain.TransactionType_Withdrawal, 100, 1, 0, day(3)),
			txn("BTC", domain.TransactionType_Transfer, 0.5, 0, 0, day(4)),
			txn("BTC", domain.TransactionType_Dividend, 1, 10, 0, day(5)),
			txn("BTC", domain.TransactionType_Fee, 1, 5, 5, day(6)),
		}
		result, err := Replay("BTC", txns, domain.FeeMode_Exclude)
		require.NoError(t, err)

		require.True(t, result.Summary.TotalQuantity.Equal(dec(1)))
		require.True(t, result.Summary.TotalCostBasis.Equal(dec(30000)))
		require.True(t, result.TotalFees.IsZero())
		// last applied event is the buy, not the later noise
		require.Equal(t, day(2), *result.Summary.LastTransactionDate)
	})

	t.Run("oversell is skipped and replay continues", func(t *testing.T) {
		oversell := txn("ADA", domain.TransactionType_Sell, 999, 2, 0, day(2))
		txns := []domain.Transaction{
			txn("ADA", domain.TransactionType_Buy, 100, 1, 0, day(1)),
			oversell,
			txn("ADA", domain.TransactionType_Sell, 40, 2, 0, day(3)),
		}
		result, err := Replay("ADA", txns, domain.FeeMode_Exclude)
		require.NoError(t, err)

		require.Len(t, result.SkippedSales, 1)
		require.Equal(t, oversell.TransactionID, result.SkippedSales[0].TransactionID)

		// the valid sale after the bad row still computed
		require.True(t, result.RealizedPnL.Equal(dec(40)))
		require.True(t, result.Summary.TotalQuantity.Equal(dec(60)))
	})

	t.Run("sell with no prior buys leaves ledger empty", func(t *testing.T) {
		txns := []domain.Transaction{
			txn("XRP", domain.TransactionType_Sell, 50, 1, 0, day(1)),
		}
		result, err := Replay("XRP", txns, domain.FeeMode_Exclude)
		require.NoError(t, err)
		require.Len(t, result.SkippedSales, 1)
		require.True(t, result.Summary.TotalQuantity.IsZero())
		require.Empty(t, result.Summary.Lots)
		require.Nil(t, result.Summary.FirstPurchaseDate)
	})

	t.Run("fees accumulate only in exclusive mode", func(t *testing.T) {
		txns := []domain.Transaction{
			txn("BTC", domain.TransactionType_Buy, 1, 30000, 10, day(1)),
			txn("BTC", domain.TransactionType_Sell, 0.5, 35000, 7.5, day(2)),
		}

		excl, err := Replay("BTC", txns, domain.FeeMode_Exclude)
		require.NoError(t, err)
		require.True(t, excl.TotalFees.Equal(dec(17.5)))
		require.True(t, excl.RealizedPnL.Equal(dec(2500)))

		incl, err := Replay("BTC", txns, domain.FeeMode_IncludeInBasis)
		require.NoError(t, err)
		require.True(t, incl.TotalFees.IsZero())
		// basis per unit is 30010, so (35000-30010)*0.5
		require.True(t, incl.RealizedPnL.Equal(dec(2495)))
	})

	t.Run("replay is idempotent", func(t *testing.T) {
		txns := []domain.Transaction{
			txn("ETH", domain.TransactionType_Buy, 3, 1000, 1, day(1)),
			txn("ETH", domain.TransactionType_Staking, 0.25, 1100, 0, day(2)),
			txn("ETH", domain.TransactionType_Sell, 1.5, 1300, 2, day(3)),
			txn("ETH", domain.TransactionType_Buy, 1, 900, 0.5, day(4)),
			txn("ETH", domain.TransactionType_Sell, 0.75, 1400, 1, day(5)),
		}

		first, err := Replay("ETH", txns, domain.FeeMode_IncludeInBasis)
		require.NoError(t, err)
		second, err := Replay("ETH", txns, domain.FeeMode_IncludeInBasis)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(first.Summary, second.Summary))
		require.True(t, first.RealizedPnL.Equal(second.RealizedPnL))
		require.True(t, first.TotalFees.Equal(second.TotalFees))
	})

	t.Run("quantity conservation", func(t *testing.T) {
		txns := []domain.Transaction{
			txn("SOL", domain.TransactionType_Buy, 10, 20, 0, day(1)),
			txn("SOL", domain.TransactionType_Buy, 5, 25, 0, day(2)),
			txn("SOL", domain.TransactionType_Sell, 7, 30, 0, day(3)),
			txn("SOL", domain.TransactionType_Airdrop, 2, 0, 0, day(4)),
			txn("SOL", domain.TransactionType_Sell, 4, 28, 0, day(5)),
		}
		result, err := Replay("SOL", txns, domain.FeeMode_Exclude)
		require.NoError(t, err)

		require.True(t, result.Summary.TotalQuantity.Equal(dec(6)))
		lotSum := decimal.Zero
		basisSum := decimal.Zero
		for _, lot := range result.Summary.Lots {
			lotSum = lotSum.Add(lot.Quantity)
			basisSum = basisSum.Add(lot.Quantity.Mul(lot.CostBasis))
		}
		require.True(t, lotSum.Equal(result.Summary.TotalQuantity))
		require.True(t, basisSum.Equal(result.Summary.TotalCostBasis))
	})

	t.Run("rejects wrong-symbol transactions", func(t *testing.T) {
		txns := []domain.Transaction{
			txn("BTC", domain.TransactionType_Buy, 1, 30000, 0, day(1)),
		}
		_, err := Replay("ETH", txns, domain.FeeMode_Exclude)
		require.Error(t, err)
	})

	t.Run("rejects missing fee mode", func(t *testing.T) {
		_, err := Replay("BTC", nil, "")
		require.Error(t, err)
	})

	t.Run("empty history yields empty summary", func(t *testing.T) {
		result, err := Replay("BTC", nil, domain.FeeMode_IncludeInBasis)
		require.NoError(t, err)
		require.True(t, result.Summary.TotalQuantity.IsZero())
		require.True(t, result.Summary.AvgCostBasis.IsZero())
		require.Nil(t, result.Summary.FirstPurchaseDate)
		require.Nil(t, result.Summary.LastTransactionDate)
		require.Empty(t, result.Summary.Lots)
	})
}
