package ledger

import (
	"fmt"
	"time"

	"cryptofolio/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger holds the open lots for one symbol. Insertion order is FIFO
// consumption order, so callers must feed acquisitions date-ascending;
// the ledger does not re-sort. totalQuantity and totalCostBasis are
// maintained by delta on every mutation, and average cost is always
// derived from them rather than stored.
type Ledger struct {
	symbol         string
	lots           []*domain.Lot
	totalQuantity  decimal.Decimal
	totalCostBasis decimal.Decimal
}

func New(symbol string) *Ledger {
	return &Ledger{
		symbol:         symbol,
		lots:           []*domain.Lot{},
		totalQuantity:  decimal.Zero,
		totalCostBasis: decimal.Zero,
	}
}

type AddPurchaseInput struct {
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Fee           decimal.Decimal
	Date          time.Time
	TransactionID uuid.UUID
	FeeMode       domain.FeeMode
}

// AddPurchase opens a new lot. In fee-inclusive mode the fee is folded
// into the lot's per-unit cost; the unit cost never changes after this.
func (l *Ledger) AddPurchase(in AddPurchaseInput) (*domain.Lot, error) {
	if in.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("purchase must have quantity higher than 0, received %s", in.Quantity.String())
	}
	if in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("purchase has invalid unit price %s", in.UnitPrice.String())
	}
	if in.Fee.IsNegative() {
		return nil, fmt.Errorf("purchase has invalid fee %s", in.Fee.String())
	}
	if err := validateFeeMode(in.FeeMode); err != nil {
		return nil, err
	}

	costBasis := in.UnitPrice
	if in.FeeMode == domain.FeeMode_IncludeInBasis {
		costBasis = in.UnitPrice.Mul(in.Quantity).Add(in.Fee).Div(in.Quantity)
	}

	lot := &domain.Lot{
		LotID:         uuid.New(),
		TransactionID: in.TransactionID,
		Quantity:      in.Quantity,
		CostBasis:     costBasis,
		Date:          in.Date,
	}
	l.lots = append(l.lots, lot)
	l.totalQuantity = l.totalQuantity.Add(in.Quantity)
	l.totalCostBasis = l.totalCostBasis.Add(costBasis.Mul(in.Quantity))

	return lot, nil
}

func (l *Ledger) Symbol() string {
	return l.symbol
}

func (l *Ledger) TotalQuantity() decimal.Decimal {
	return l.totalQuantity
}

func (l *Ledger) TotalCostBasis() decimal.Decimal {
	return l.totalCostBasis
}

// AverageCostBasis is undefined on an empty ledger; we return zero
// there rather than dividing by zero.
func (l *Ledger) AverageCostBasis() decimal.Decimal {
	if l.totalQuantity.IsZero() {
		return decimal.Zero
	}
	return l.totalCostBasis.Div(l.totalQuantity)
}

func (l *Ledger) OpenLotCount() int {
	return len(l.lots)
}

// ExportLots serializes the remaining lots oldest-first. The export is
// a write-only audit artifact: it is persisted for display but never
// read back in as computation input.
func (l *Ledger) ExportLots() []domain.LotExport {
	out := make([]domain.LotExport, 0, len(l.lots))
	for _, lot := range l.lots {
		out = append(out, domain.LotExport{
			Quantity:      lot.Quantity,
			CostBasis:     lot.CostBasis,
			Date:          lot.Date,
			TransactionID: lot.TransactionID,
		})
	}
	return out
}

func validateFeeMode(m domain.FeeMode) error {
	if m != domain.FeeMode_IncludeInBasis && m != domain.FeeMode_Exclude {
		return fmt.Errorf("invalid fee mode %q", string(m))
	}
	return nil
}
