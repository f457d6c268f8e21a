package service

import (
	"database/sql"
	"fmt"

	"cryptofolio/internal/domain"
	"cryptofolio/internal/ledger"
	"cryptofolio/internal/repository"

	"github.com/rs/zerolog/log"
)

type PositionsService interface {
	Recompute(tx *sql.Tx, symbol string) (*domain.PositionSummary, error)
	RecomputeAll(tx *sql.Tx) ([]domain.PositionSummary, error)
	Get(tx *sql.Tx, symbol string) (*domain.PositionSummary, error)
	List(tx *sql.Tx) ([]domain.PositionSummary, error)
}

type positionsServiceHandler struct {
	transactionsRepository repository.TransactionsRepository
	positionsRepository    repository.PositionsRepository
}

func NewPositionsService(
	transactionsRepository repository.TransactionsRepository,
	positionsRepository repository.PositionsRepository,
) PositionsService {
	return positionsServiceHandler{
		transactionsRepository: transactionsRepository,
		positionsRepository:    positionsRepository,
	}
}

// Recompute replays the symbol's full transaction history through a
// fresh ledger and overwrites the persisted position row. Fees are
// folded into cost basis here so the stored position reflects the
// effective cost of the holding.
//
// The engine itself holds no locks; callers racing to recompute the
// same symbol must serialize on it (we rely on the surrounding db tx
// and the upsert's row lock for that).
func (h positionsServiceHandler) Recompute(tx *sql.Tx, symbol string) (*domain.PositionSummary, error) {
	txns, err := h.transactionsRepository.ListForSymbol(tx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for %s: %w", symbol, err)
	}

	result, err := ledger.Replay(symbol, txns, domain.FeeMode_IncludeInBasis)
	if err != nil {
		return nil, fmt.Errorf("failed to replay history for %s: %w", symbol, err)
	}
	if len(result.SkippedSales) > 0 {
		log.Warn().
			Str("symbol", symbol).
			Int("skippedSales", len(result.SkippedSales)).
			Msg("position recomputed with inconsistent sales skipped")
	}

	err = h.positionsRepository.Upsert(tx, result.Summary)
	if err != nil {
		return nil, err
	}

	return &result.Summary, nil
}

// RecomputeAll rebuilds every symbol's position. One broken symbol
// only loses that symbol, never the whole run.
func (h positionsServiceHandler) RecomputeAll(tx *sql.Tx) ([]domain.PositionSummary, error) {
	symbols, err := h.transactionsRepository.ListSymbols(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to list symbols: %w", err)
	}

	out := []domain.PositionSummary{}
	for _, symbol := range symbols {
		summary, err := h.Recompute(tx, symbol)
		if err != nil {
			log.Error().Err(err).Str("symbol", symbol).Msg("failed to recompute position")
			continue
		}
		out = append(out, *summary)
	}
	return out, nil
}

func (h positionsServiceHandler) Get(tx *sql.Tx, symbol string) (*domain.PositionSummary, error) {
	return h.positionsRepository.Get(tx, symbol)
}

func (h positionsServiceHandler) List(tx *sql.Tx) ([]domain.PositionSummary, error) {
	return h.positionsRepository.List(tx)
}
