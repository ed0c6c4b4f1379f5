package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus is the lifecycle state of a single debt record.
type DebtStatus string

const (
	DebtStatusOpen DebtStatus = "OPEN"
	DebtStatusPaid DebtStatus = "PAID"
)

// Debt is one accounting record in a partial-payment chain.
//
// A chain starts with an origin record (no parent). Each partial payment
// closes the current head and creates a new open remainder record that
// points back at it, so the full payment history stays auditable.
// OriginalAmount is constant across a chain; Amount equals RemainingAmount
// while the record is open.
type Debt struct {
	ID                string
	ChainID           string
	ParentDebtID      *string
	CreditorID        string
	DebtorID          string
	Amount            decimal.Decimal
	OriginalAmount    decimal.Decimal
	TotalPaidInChain  decimal.Decimal
	RemainingAmount   decimal.Decimal
	WasPartialPayment bool
	Status            DebtStatus
	Description       string
	Attachment        *string
	DueDate           time.Time
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewDebt creates the origin record of a new chain. The chain ID is the
// record's own ID; continuation records are only ever produced by
// ApplyPayment.
func NewDebt(id, creditorID, debtorID string, amount decimal.Decimal, dueDate time.Time, description string, now time.Time) *Debt {
	return &Debt{
		ID:               id,
		ChainID:          id,
		CreditorID:       creditorID,
		DebtorID:         debtorID,
		Amount:           amount,
		OriginalAmount:   amount,
		TotalPaidInChain: decimal.Zero,
		RemainingAmount:  amount,
		Status:           DebtStatusOpen,
		Description:      description,
		DueDate:          dueDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsOrigin reports whether this record started its chain.
func (d *Debt) IsOrigin() bool {
	return d.ParentDebtID == nil
}

// PaymentOutcome is the mutation set produced by applying a payment:
// exactly one record to close, and at most one remainder to create.
type PaymentOutcome struct {
	Closed    *Debt
	Remainder *Debt
}

// ApplyPayment applies a payment against an open record and returns the
// resulting mutation set. The receiver is never mutated; rejections leave
// no trace.
//
// A payment matching the remaining amount within the cent tolerance closes
// the chain. A strict partial payment closes this record (its Amount kept
// as the amount that was outstanding while it was the head) and produces an
// open remainder carrying the chain forward.
func (d *Debt) ApplyPayment(amount decimal.Decimal, remainderID string, now time.Time) (*PaymentOutcome, error) {
	if d.Status != DebtStatusOpen {
		return nil, ErrDebtNotOpen
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPaymentAmount
	}

	diff := d.RemainingAmount.Sub(amount)
	if diff.LessThan(CentTolerance.Neg()) {
		return nil, ErrPaymentExceedsRemaining
	}

	closed := *d
	closed.Status = DebtStatusPaid
	paidAt := now
	closed.PaidAt = &paidAt
	closed.UpdatedAt = now

	if diff.Abs().LessThanOrEqual(CentTolerance) {
		// Terminal transition: the chain is settled in full.
		closed.TotalPaidInChain = d.OriginalAmount
		closed.RemainingAmount = decimal.Zero

		return &PaymentOutcome{Closed: &closed}, nil
	}

	totalPaid := d.TotalPaidInChain.Add(amount)
	remaining := d.OriginalAmount.Sub(totalPaid)
	parentID := d.ID

	remainder := &Debt{
		ID:                remainderID,
		ChainID:           d.ChainID,
		ParentDebtID:      &parentID,
		CreditorID:        d.CreditorID,
		DebtorID:          d.DebtorID,
		Amount:            remaining,
		OriginalAmount:    d.OriginalAmount,
		TotalPaidInChain:  totalPaid,
		RemainingAmount:   remaining,
		WasPartialPayment: true,
		Status:            DebtStatusOpen,
		Description:       d.Description,
		Attachment:        d.Attachment,
		DueDate:           d.DueDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return &PaymentOutcome{Closed: &closed, Remainder: remainder}, nil
}

// VerifyChain checks the structural invariants of a full chain:
// a single origin, at most one open record, a constant original amount,
// parent links referencing paid records of the same chain, and paid plus
// remaining reconciling with the original amount on the head record.
func VerifyChain(records []*Debt) error {
	if len(records) == 0 {
		return nil
	}

	byID := make(map[string]*Debt, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	origin := records[0]
	for _, r := range records {
		if r.IsOrigin() {
			origin = r
		}
	}

	openCount := 0
	originCount := 0

	for _, r := range records {
		if r.ChainID != origin.ChainID {
			return ErrChainBrokenLink
		}

		if !r.OriginalAmount.Equal(origin.OriginalAmount) {
			return ErrChainOriginalMismatch
		}

		if r.IsOrigin() {
			originCount++
		} else {
			parent, ok := byID[*r.ParentDebtID]
			if !ok || parent.Status != DebtStatusPaid {
				return ErrChainBrokenLink
			}
		}

		if r.Status == DebtStatusOpen {
			openCount++

			if !r.Amount.Equal(r.RemainingAmount) {
				return ErrChainSumMismatch
			}
		}

		sum := r.TotalPaidInChain.Add(r.RemainingAmount)
		if r.Status == DebtStatusOpen || r.RemainingAmount.IsZero() {
			if sum.Sub(r.OriginalAmount).Abs().GreaterThan(CentTolerance) {
				return ErrChainSumMismatch
			}
		}
	}

	if originCount != 1 {
		return ErrChainBrokenLink
	}

	if openCount > 1 {
		return ErrChainMultipleOpen
	}

	return nil
}
