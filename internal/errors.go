package cryptofolio_errors

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInsufficientLots means a sale asked for more quantity than the
// ledger holds. This is a data-consistency problem in the history
// (missing acquisition, unrecorded transfer-in), not a matching bug, so
// replay callers are expected to catch it, log, and move on. The ledger
// is left untouched when this is returned.
type ErrInsufficientLots struct {
	Symbol        string
	TransactionID uuid.UUID
	Requested     decimal.Decimal
	Available     decimal.Decimal
}

func (e ErrInsufficientLots) Error() string {
	return fmt.Sprintf(
		"insufficient lots for %s: sale %s requested %s but only %s held",
		e.Symbol,
		e.TransactionID,
		e.Requested.String(),
		e.Available.String(),
	)
}
