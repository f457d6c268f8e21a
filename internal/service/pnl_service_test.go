package service

import (
	"database/sql"
	"testing"

	"cryptofolio/internal/domain"
	"cryptofolio/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestRealizedBreakdown(t *testing.T) {
	t.Run("gross, fees and net reported separately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		var tx *sql.Tx

		transactionsRepository := repository.NewMockTransactionsRepository(ctrl)
		transactionsRepository.EXPECT().ListSymbols(tx).Return([]string{"BTC", "ETH"}, nil)
		transactionsRepository.EXPECT().ListForSymbol(tx, "BTC").Return([]domain.Transaction{
			txn("BTC", domain.TransactionType_Buy, 1, 30000, 10, day(1)),
			txn("BTC", domain.TransactionType_Sell, 0.5, 35000, 7.5, day(2)),
		}, nil)
		transactionsRepository.EXPECT().ListForSymbol(tx, "ETH").Return([]domain.Transaction{
			txn("ETH", domain.TransactionType_Buy, 10, 100, 1, day(1)),
			txn("ETH", domain.TransactionType_Sell, 10, 110, 2, day(3)),
		}, nil)

		svc := NewPnLService(transactionsRepository)
		breakdown, err := svc.RealizedBreakdown(tx)
		require.NoError(t, err)

		// gross gains stay gross in fee-exclusive mode
		require.True(t, breakdown.GrossPnL.Equal(dec(2600)), "got %s", breakdown.GrossPnL)
		require.True(t, breakdown.TotalFees.Equal(dec(20.5)), "got %s", breakdown.TotalFees)
		require.True(t, breakdown.NetPnL.Equal(dec(2579.5)), "got %s", breakdown.NetPnL)
		require.True(t, breakdown.BySymbol["BTC"].Equal(dec(2500)))
		require.True(t, breakdown.BySymbol["ETH"].Equal(dec(100)))
	})

	t.Run("empty portfolio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		var tx *sql.Tx

		transactionsRepository := repository.NewMockTransactionsRepository(ctrl)
		transactionsRepository.EXPECT().ListSymbols(tx).Return([]string{}, nil)

		svc := NewPnLService(transactionsRepository)
		breakdown, err := svc.RealizedBreakdown(tx)
		require.NoError(t, err)
		require.True(t, breakdown.GrossPnL.IsZero())
		require.True(t, breakdown.NetPnL.IsZero())
	})
}
