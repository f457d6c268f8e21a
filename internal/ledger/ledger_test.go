package ledger

import (
	"testing"
	"time"

	"cryptofolio/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func day(n int) time.Time {
	return time.Date(2023, 1, n, 0, 0, 0, 0, time.UTC)
}

func TestAddPurchase(t *testing.T) {
	t.Run("appends lots in insertion order", func(t *testing.T) {
		l := New("BTC")
		_, err := l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(1),
			UnitPrice:     dec(30000),
			Date:          day(1),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.NoError(t, err)
		_, err = l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(0.5),
			UnitPrice:     dec(35000),
			Date:          day(2),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.NoError(t, err)

		require.Equal(t, 2, l.OpenLotCount())
		require.True(t, l.TotalQuantity().Equal(dec(1.5)))
		require.True(t, l.TotalCostBasis().Equal(dec(47500)))

		export := l.ExportLots()
		require.Len(t, export, 2)
		require.True(t, export[0].CostBasis.Equal(dec(30000)))
		require.True(t, export[1].CostBasis.Equal(dec(35000)))
	})

	t.Run("fee folded into basis in inclusive mode", func(t *testing.T) {
		l := New("AAPL")
		lot, err := l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(100),
			UnitPrice:     dec(150),
			Fee:           dec(1),
			Date:          day(1),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_IncludeInBasis,
		})
		require.NoError(t, err)
		require.True(t, lot.CostBasis.Equal(dec(150.01)), "got %s", lot.CostBasis)
		require.True(t, l.TotalCostBasis().Equal(dec(15001)))
	})

	t.Run("fee left out of basis in exclusive mode", func(t *testing.T) {
		l := New("AAPL")
		lot, err := l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(100),
			UnitPrice:     dec(150),
			Fee:           dec(1),
			Date:          day(1),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.NoError(t, err)
		require.True(t, lot.CostBasis.Equal(dec(150)))
		require.True(t, l.TotalCostBasis().Equal(dec(15000)))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		l := New("ETH")
		_, err := l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(0),
			UnitPrice:     dec(100),
			Date:          day(1),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.Error(t, err)
		_, err = l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(-1),
			UnitPrice:     dec(100),
			Date:          day(1),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.Error(t, err)
		require.Equal(t, 0, l.OpenLotCount())
	})

	t.Run("rejects negative price and fee", func(t *testing.T) {
		l := New("ETH")
		_, err := l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(1),
			UnitPrice:     dec(-100),
			Date:          day(1),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.Error(t, err)
		_, err = l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(1),
			UnitPrice:     dec(100),
			Fee:           dec(-1),
			Date:          day(1),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.Error(t, err)
	})

	t.Run("rejects missing fee mode", func(t *testing.T) {
		l := New("ETH")
		_, err := l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(1),
			UnitPrice:     dec(100),
			Date:          day(1),
			TransactionID: uuid.New(),
		})
		require.Error(t, err)
	})
}

func TestAverageCostBasis(t *testing.T) {
	t.Run("derived from totals", func(t *testing.T) {
		l := New("AAPL")
		_, err := l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(100),
			UnitPrice:     dec(150),
			Date:          day(1),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.NoError(t, err)
		_, err = l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(50),
			UnitPrice:     dec(160),
			Date:          day(2),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.NoError(t, err)

		require.True(t, l.TotalQuantity().Equal(dec(150)))
		require.True(t, l.TotalCostBasis().Equal(dec(23000)))
		require.Equal(t, "153.33", l.AverageCostBasis().StringFixed(2))
	})

	t.Run("zero on empty ledger", func(t *testing.T) {
		l := New("AAPL")
		require.True(t, l.AverageCostBasis().IsZero())
	})

	t.Run("buying above average raises it, below lowers it", func(t *testing.T) {
		l := New("AAPL")
		_, err := l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(10),
			UnitPrice:     dec(100),
			Date:          day(1),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.NoError(t, err)
		before := l.AverageCostBasis()

		_, err = l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(10),
			UnitPrice:     dec(120),
			Date:          day(2),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.NoError(t, err)
		raised := l.AverageCostBasis()
		require.True(t, raised.GreaterThan(before))

		_, err = l.AddPurchase(AddPurchaseInput{
			Quantity:      dec(10),
			UnitPrice:     dec(80),
			Date:          day(3),
			TransactionID: uuid.New(),
			FeeMode:       domain.FeeMode_Exclude,
		})
		require.NoError(t, err)
		require.True(t, l.AverageCostBasis().LessThan(raised))
	})
}
