package ledger

import (
	"testing"

	"cryptofolio/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTracker(t *testing.T) {
	t.Run("symbols stay independent", func(t *testing.T) {
		tracker := NewTracker()

		_, err := tracker.AddPurchase("BTC", AddPurchaseInput{
			Quantity:      dec(1),
			UnitPrice:     dec(30000),
			Date:          day(1),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.NoError(t, err)
		_, err = tracker.AddPurchase("ETH", AddPurchaseInput{
			Quantity:      dec(10),
			UnitPrice:     dec(1500),
			Date:          day(1),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.NoError(t, err)

		_, err = tracker.ProcessSale("ETH", ProcessSaleInput{
			Quantity:      dec(4),
			SalePrice:     dec(1600),
			Date:          day(2),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.NoError(t, err)

		require.True(t, tracker.TotalQuantity("BTC").Equal(dec(1)))
		require.True(t, tracker.TotalQuantity("ETH").Equal(dec(6)))
		require.True(t, tracker.TotalCostBasis("ETH").Equal(dec(9000)))
		require.Equal(t, []string{"BTC", "ETH"}, tracker.Symbols())
	})

	t.Run("unknown symbol reads as empty", func(t *testing.T) {
		tracker := NewTracker()
		require.True(t, tracker.TotalQuantity("XRP").IsZero())
		require.True(t, tracker.AverageCostBasis("XRP").IsZero())
		require.Empty(t, tracker.ExportLots("XRP"))
	})
}
