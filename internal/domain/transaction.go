package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionType_Buy     TransactionType = "BUY"
	TransactionType_Sell    TransactionType = "SELL"
	TransactionType_Staking TransactionType = "STAKING"
	TransactionType_Airdrop TransactionType = "AIRDROP"
	TransactionType_Mining  TransactionType = "MINING"

	// non-trading types. these never touch quantity or
	// cost basis and the replay driver skips them
	TransactionType_Deposit    TransactionType = "DEPOSIT"
	TransactionType_Withdrawal TransactionType = "WITHDRAWAL"
	TransactionType_Transfer   TransactionType = "TRANSFER"
	TransactionType_Dividend   TransactionType = "DIVIDEND"
	TransactionType_Fee        TransactionType = "FEE"
)

// IsAcquisition reports whether the event opens a new lot. Rewards
// (staking, airdrops, mining) acquire quantity the same way a buy does,
// just at whatever unit price the event carries.
func (t TransactionType) IsAcquisition() bool {
	switch t {
	case TransactionType_Buy, TransactionType_Staking, TransactionType_Airdrop, TransactionType_Mining:
		return true
	}
	return false
}

func (t TransactionType) IsDisposal() bool {
	return t == TransactionType_Sell
}

// FeeMode selects how a transaction fee is attributed. IncludeInBasis
// folds the fee into the lot's unit cost (position valuation view);
// Exclude keeps gross gains and fees as separate figures (portfolio
// realized-P&L breakdown view). Callers must use exactly one mode for
// an entire symbol's replay.
type FeeMode string

const (
	FeeMode_IncludeInBasis FeeMode = "INCLUDE_IN_BASIS"
	FeeMode_Exclude        FeeMode = "EXCLUDE"
)

// Transaction is one immutable row of the append-only event ledger.
type Transaction struct {
	TransactionID uuid.UUID
	Symbol        string
	Type          TransactionType
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Fee           decimal.Decimal
	Date          time.Time
}

func (t Transaction) GetDate() time.Time { return t.Date }

func (t Transaction) Ptr() *Transaction { return &t }
