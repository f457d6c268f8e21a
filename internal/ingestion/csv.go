package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cryptofolio/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// exchange-export CSV -> transaction rows. The parser keeps unknown
// transaction types as-is; the replay engine is the one that decides
// what to skip.

func determineColumnOrder(headerRow []string) (map[string]int, error) {
	requiredColumns := []string{
		"date",
		"type",
		"symbol",
		"quantity",
		"price",
	}

	columnIndices := map[string]int{}
	for i, h := range headerRow {
		h = strings.ToLower(strings.TrimSpace(h))
		h = strings.ReplaceAll(h, " ", "_")
		columnIndices[h] = i
	}

	for _, rc := range requiredColumns {
		if _, ok := columnIndices[rc]; !ok {
			return nil, fmt.Errorf("missing required column '%s'", rc)
		}
	}

	return columnIndices, nil
}

func ParseTransactionFile(csvFileName string) ([]domain.Transaction, error) {
	f, err := os.Open(csvFileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseTransactions(f)
}

func ParseTransactions(r io.Reader) ([]domain.Transaction, error) {
	csvFile := csv.NewReader(r)
	records, err := csvFile.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file has no header row")
	}

	ordering, err := determineColumnOrder(records[0])
	if err != nil {
		return nil, err
	}

	txns := []domain.Transaction{}
	for i, record := range records[1:] {
		date, err := time.Parse("2006-01-02", strings.TrimSpace(record[ordering["date"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d has invalid date: %w", i+2, err)
		}

		quantity, err := numberStrToDecimal(record[ordering["quantity"]])
		if err != nil {
			return nil, fmt.Errorf("row %d has invalid quantity: %w", i+2, err)
		}

		price, err := numberStrToDecimal(record[ordering["price"]])
		if err != nil {
			return nil, fmt.Errorf("row %d has invalid price: %w", i+2, err)
		}

		fee := decimal.Zero
		if feeIdx, ok := ordering["fee"]; ok && strings.TrimSpace(record[feeIdx]) != "" {
			fee, err = numberStrToDecimal(record[feeIdx])
			if err != nil {
				return nil, fmt.Errorf("row %d has invalid fee: %w", i+2, err)
			}
		}

		symbol := strings.ToUpper(strings.TrimSpace(record[ordering["symbol"]]))
		if symbol == "" {
			return nil, fmt.Errorf("row %d has empty symbol", i+2)
		}

		txns = append(txns, domain.Transaction{
			TransactionID: uuid.New(),
			Symbol:        symbol,
			Type:          domain.TransactionType(strings.ToUpper(strings.TrimSpace(record[ordering["type"]]))),
			Quantity:      quantity,
			UnitPrice:     price,
			Fee:           fee,
			Date:          date,
		})
	}

	return txns, nil
}

func numberStrToDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
