package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestUnrealizedPnL(t *testing.T) {
	p := PositionSummary{
		Symbol:         "BTC",
		TotalQuantity:  decimal.NewFromFloat(0.5),
		TotalCostBasis: decimal.NewFromInt(15000),
	}

	require.True(t, p.MarketValue(decimal.NewFromInt(40000)).Equal(decimal.NewFromInt(20000)))
	require.True(t, p.UnrealizedPnL(decimal.NewFromInt(40000)).Equal(decimal.NewFromInt(5000)))
	require.True(t, p.UnrealizedPnL(decimal.NewFromInt(20000)).Equal(decimal.NewFromInt(-5000)))
}
