package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cryptofolio/internal/db/models/postgres/public/model"
	. "cryptofolio/internal/db/models/postgres/public/table"
	"cryptofolio/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type PositionsRepository interface {
	Upsert(tx *sql.Tx, summary domain.PositionSummary) error
	Get(tx *sql.Tx, symbol string) (*domain.PositionSummary, error)
	List(tx *sql.Tx) ([]domain.PositionSummary, error)
	Delete(tx *sql.Tx, symbol string) error
}

type positionsRepositoryHandler struct {
}

func NewPositionsRepository() PositionsRepository {
	return positionsRepositoryHandler{}
}

// Upsert overwrites the symbol's position row with a freshly recomputed
// summary. The lots JSON is an audit artifact only; nothing ever loads
// it back into a ledger.
func (h positionsRepositoryHandler) Upsert(tx *sql.Tx, summary domain.PositionSummary) error {
	m, err := positionToDb(summary)
	if err != nil {
		return err
	}

	stmt := Position.INSERT(Position.MutableColumns).
		MODEL(m).
		ON_CONFLICT(Position.Symbol).
		DO_UPDATE(postgres.SET(
			Position.TotalQuantity.SET(Position.EXCLUDED.TotalQuantity),
			Position.TotalCostBasis.SET(Position.EXCLUDED.TotalCostBasis),
			Position.AvgCostBasis.SET(Position.EXCLUDED.AvgCostBasis),
			Position.FirstPurchaseDate.SET(Position.EXCLUDED.FirstPurchaseDate),
			Position.LastTransactionDate.SET(Position.EXCLUDED.LastTransactionDate),
			Position.Lots.SET(Position.EXCLUDED.Lots),
			Position.ModifiedAt.SET(Position.EXCLUDED.ModifiedAt),
		))

	_, err = stmt.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to upsert position for %s: %w", summary.Symbol, err)
	}

	return nil
}

func (h positionsRepositoryHandler) Get(tx *sql.Tx, symbol string) (*domain.PositionSummary, error) {
	query := Position.SELECT(Position.AllColumns).
		WHERE(Position.Symbol.EQ(postgres.String(symbol)))

	result := model.Position{}
	err := query.Query(tx, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get position for %s: %w", symbol, err)
	}

	out, err := positionFromDb(result)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (h positionsRepositoryHandler) List(tx *sql.Tx) ([]domain.PositionSummary, error) {
	query := Position.SELECT(Position.AllColumns).
		ORDER_BY(Position.Symbol.ASC())

	result := []model.Position{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	out := make([]domain.PositionSummary, 0, len(result))
	for _, p := range result {
		summary, err := positionFromDb(p)
		if err != nil {
			return nil, err
		}
		out = append(out, *summary)
	}
	return out, nil
}

func (h positionsRepositoryHandler) Delete(tx *sql.Tx, symbol string) error {
	stmt := Position.DELETE().
		WHERE(Position.Symbol.EQ(postgres.String(symbol)))

	_, err := stmt.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete position for %s: %w", symbol, err)
	}
	return nil
}

func positionToDb(p domain.PositionSummary) (model.Position, error) {
	lotsJson, err := json.Marshal(p.Lots)
	if err != nil {
		return model.Position{}, fmt.Errorf("failed to serialize lots for %s: %w", p.Symbol, err)
	}
	return model.Position{
		Symbol:              p.Symbol,
		TotalQuantity:       p.TotalQuantity,
		TotalCostBasis:      p.TotalCostBasis,
		AvgCostBasis:        p.AvgCostBasis,
		FirstPurchaseDate:   p.FirstPurchaseDate,
		LastTransactionDate: p.LastTransactionDate,
		Lots:                string(lotsJson),
		CreatedAt:           time.Now().UTC(),
		ModifiedAt:          time.Now().UTC(),
	}, nil
}

func positionFromDb(p model.Position) (*domain.PositionSummary, error) {
	// lots are decoded for display in API responses only. they are
	// never fed back into a ledger; positions are always recomputed
	// from the transaction history
	lots := []domain.LotExport{}
	if p.Lots != "" {
		if err := json.Unmarshal([]byte(p.Lots), &lots); err != nil {
			return nil, fmt.Errorf("failed to decode lots for %s: %w", p.Symbol, err)
		}
	}
	return &domain.PositionSummary{
		Symbol:              p.Symbol,
		TotalQuantity:       p.TotalQuantity,
		TotalCostBasis:      p.TotalCostBasis,
		AvgCostBasis:        p.AvgCostBasis,
		FirstPurchaseDate:   p.FirstPurchaseDate,
		LastTransactionDate: p.LastTransactionDate,
		Lots:                lots,
	}, nil
}
