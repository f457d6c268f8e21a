package service

import (
	"database/sql"
	"fmt"

	"cryptofolio/internal/domain"
	"cryptofolio/internal/ledger"
	"cryptofolio/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type PnLService interface {
	RealizedBreakdown(tx *sql.Tx) (*domain.RealizedPnLBreakdown, error)
}

type pnlServiceHandler struct {
	transactionsRepository repository.TransactionsRepository
}

func NewPnLService(transactionsRepository repository.TransactionsRepository) PnLService {
	return pnlServiceHandler{
		transactionsRepository: transactionsRepository,
	}
}

// RealizedBreakdown replays every symbol in fee-exclusive mode, so the
// summary can show gross P&L, total fees, and net P&L as three separate
// figures instead of burying fees inside cost basis.
func (h pnlServiceHandler) RealizedBreakdown(tx *sql.Tx) (*domain.RealizedPnLBreakdown, error) {
	symbols, err := h.transactionsRepository.ListSymbols(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to list symbols: %w", err)
	}

	breakdown := &domain.RealizedPnLBreakdown{
		GrossPnL:  decimal.Zero,
		TotalFees: decimal.Zero,
		NetPnL:    decimal.Zero,
		BySymbol:  map[string]decimal.Decimal{},
	}

	for _, symbol := range symbols {
		txns, err := h.transactionsRepository.ListForSymbol(tx, symbol)
		if err != nil {
			return nil, fmt.Errorf("failed to load history for %s: %w", symbol, err)
		}
		result, err := ledger.Replay(symbol, txns, domain.FeeMode_Exclude)
		if err != nil {
			log.Error().Err(err).Str("symbol", symbol).Msg("failed to replay symbol for pnl breakdown")
			continue
		}

		breakdown.GrossPnL = breakdown.GrossPnL.Add(result.RealizedPnL)
		breakdown.TotalFees = breakdown.TotalFees.Add(result.TotalFees)
		breakdown.BySymbol[symbol] = result.RealizedPnL
	}

	breakdown.NetPnL = breakdown.GrossPnL.Sub(breakdown.TotalFees)
	return breakdown, nil
}
