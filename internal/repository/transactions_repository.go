package repository

import (
	"database/sql"
	"fmt"
	"time"

	"cryptofolio/internal/db/models/postgres/public/model"
	. "cryptofolio/internal/db/models/postgres/public/table"
	"cryptofolio/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type TransactionsRepository interface {
	Add(tx *sql.Tx, txns []domain.Transaction) ([]domain.Transaction, error)
	// ListForSymbol returns the symbol's full history ordered
	// ascending by date, which is the order the replay engine trusts
	ListForSymbol(tx *sql.Tx, symbol string) ([]domain.Transaction, error)
	ListSymbols(tx *sql.Tx) ([]string, error)
}

type transactionsRepositoryHandler struct {
}

func NewTransactionsRepository() TransactionsRepository {
	return transactionsRepositoryHandler{}
}

func (h transactionsRepositoryHandler) Add(tx *sql.Tx, txns []domain.Transaction) ([]domain.Transaction, error) {
	if len(txns) == 0 {
		return []domain.Transaction{}, nil
	}

	stmt := Transaction.INSERT(Transaction.MutableColumns).
		MODELS(transactionsToDb(txns)).
		RETURNING(Transaction.AllColumns)

	result := []model.Transaction{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transactions: %w", err)
	}

	return transactionsFromDb(result), nil
}

func (h transactionsRepositoryHandler) ListForSymbol(tx *sql.Tx, symbol string) ([]domain.Transaction, error) {
	query := Transaction.SELECT(Transaction.AllColumns).
		WHERE(Transaction.Symbol.EQ(postgres.String(symbol))).
		ORDER_BY(Transaction.Date.ASC())

	result := []model.Transaction{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for %s: %w", symbol, err)
	}

	return transactionsFromDb(result), nil
}

func (h transactionsRepositoryHandler) ListSymbols(tx *sql.Tx) ([]string, error) {
	query := Transaction.SELECT(Transaction.Symbol).DISTINCT().
		ORDER_BY(Transaction.Symbol.ASC())

	result := []model.Transaction{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list symbols: %w", err)
	}

	symbols := make([]string, 0, len(result))
	for _, r := range result {
		symbols = append(symbols, r.Symbol)
	}
	return symbols, nil
}

func transactionFromDb(t model.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: t.TransactionID,
		Symbol:        t.Symbol,
		Type:          domain.TransactionType(t.Type),
		Quantity:      t.Quantity,
		UnitPrice:     t.UnitPrice,
		Fee:           t.Fee,
		Date:          t.Date,
	}
}

func transactionsFromDb(in []model.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(in))
	for i, t := range in {
		out[i] = transactionFromDb(t)
	}
	return out
}

func transactionsToDb(in []domain.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(in))
	for i, t := range in {
		out[i] = model.Transaction{
			Symbol:     t.Symbol,
			Type:       string(t.Type),
			Quantity:   t.Quantity,
			UnitPrice:  t.UnitPrice,
			Fee:        t.Fee,
			Date:       t.Date,
			CreatedAt:  time.Now().UTC(),
			ModifiedAt: time.Now().UTC(),
		}
	}
	return out
}
