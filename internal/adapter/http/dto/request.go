package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
)

// CreateDebtRequest represents a request to register a new debt.
type CreateDebtRequest struct {
	CreditorID  string          `json:"creditor_id"`
	DebtorID    string          `json:"debtor_id"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	Description string          `json:"description"`
	Attachment  *string         `json:"attachment,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDebtRequest) ToUseCaseInput() usecase.CreateDebtInput {
	return usecase.CreateDebtInput{
		CreditorID:  r.CreditorID,
		DebtorID:    r.DebtorID,
		Amount:      r.Amount,
		DueDate:     r.DueDate,
		Description: r.Description,
		Attachment:  r.Attachment,
	}
}

// ApplyPaymentRequest represents a request to apply a payment to a debt.
type ApplyPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *ApplyPaymentRequest) ToUseCaseInput(debtID string) usecase.ApplyPaymentInput {
	return usecase.ApplyPaymentInput{
		DebtID: debtID,
		Amount: r.Amount,
	}
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
