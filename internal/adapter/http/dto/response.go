package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
)

// DebtResponse represents a debt record in API responses.
type DebtResponse struct {
	ID                string          `json:"id"`
	ChainID           string          `json:"chain_id"`
	ParentDebtID      *string         `json:"parent_debt_id,omitempty"`
	CreditorID        string          `json:"creditor_id"`
	DebtorID          string          `json:"debtor_id"`
	Amount            decimal.Decimal `json:"amount"`
	OriginalAmount    decimal.Decimal `json:"original_amount"`
	TotalPaidInChain  decimal.Decimal `json:"total_paid_in_chain"`
	RemainingAmount   decimal.Decimal `json:"remaining_amount"`
	WasPartialPayment bool            `json:"was_partial_payment"`
	Status            string          `json:"status"`
	Description       string          `json:"description"`
	Attachment        *string         `json:"attachment,omitempty"`
	DueDate           time.Time       `json:"due_date"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// DebtFromDomain converts a domain debt to a response.
func DebtFromDomain(d *domain.Debt) *DebtResponse {
	return &DebtResponse{
		ID:                d.ID,
		ChainID:           d.ChainID,
		ParentDebtID:      d.ParentDebtID,
		CreditorID:        d.CreditorID,
		DebtorID:          d.DebtorID,
		Amount:            d.Amount,
		OriginalAmount:    d.OriginalAmount,
		TotalPaidInChain:  d.TotalPaidInChain,
		RemainingAmount:   d.RemainingAmount,
		WasPartialPayment: d.WasPartialPayment,
		Status:            string(d.Status),
		Description:       d.Description,
		Attachment:        d.Attachment,
		DueDate:           d.DueDate,
		PaidAt:            d.PaidAt,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// ToDomain converts a response back to a domain debt. API clients use it to
// run chain verification locally.
func (r *DebtResponse) ToDomain() *domain.Debt {
	return &domain.Debt{
		ID:                r.ID,
		ChainID:           r.ChainID,
		ParentDebtID:      r.ParentDebtID,
		CreditorID:        r.CreditorID,
		DebtorID:          r.DebtorID,
		Amount:            r.Amount,
		OriginalAmount:    r.OriginalAmount,
		TotalPaidInChain:  r.TotalPaidInChain,
		RemainingAmount:   r.RemainingAmount,
		WasPartialPayment: r.WasPartialPayment,
		Status:            domain.DebtStatus(r.Status),
		Description:       r.Description,
		Attachment:        r.Attachment,
		DueDate:           r.DueDate,
		PaidAt:            r.PaidAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// DebtsFromDomain converts domain debts to responses.
func DebtsFromDomain(debts []*domain.Debt) []*DebtResponse {
	result := make([]*DebtResponse, len(debts))
	for i, d := range debts {
		result[i] = DebtFromDomain(d)
	}
	return result
}

// PaymentResultResponse represents the outcome of applying a payment.
// Remainder is present only when the payment was a strict partial.
type PaymentResultResponse struct {
	Closed    *DebtResponse `json:"closed"`
	Remainder *DebtResponse `json:"remainder,omitempty"`
}

// PaymentResultFromUseCase converts a payment result to a response.
func PaymentResultFromUseCase(res *usecase.PaymentResult) *PaymentResultResponse {
	out := &PaymentResultResponse{
		Closed: DebtFromDomain(res.Closed),
	}
	if res.Remainder != nil {
		out.Remainder = DebtFromDomain(res.Remainder)
	}
	return out
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
