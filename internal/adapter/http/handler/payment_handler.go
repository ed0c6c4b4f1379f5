package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/http/dto"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/infrastructure/metrics"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
)

// PaymentHandler handles payment-related HTTP requests.
type PaymentHandler struct {
	paymentUC *usecase.PaymentUseCase
	metrics   *metrics.Metrics
}

// NewPaymentHandler creates a new PaymentHandler. metrics is optional.
func NewPaymentHandler(paymentUC *usecase.PaymentUseCase, m *metrics.Metrics) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC, metrics: m}
}

// Apply applies a payment against an open debt.
func (h *PaymentHandler) Apply(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "id")
	if debtID == "" {
		writeError(w, http.StatusBadRequest, "missing debt ID", "")
		return
	}

	var req dto.ApplyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.paymentUC.ApplyPayment(r.Context(), req.ToUseCaseInput(debtID))
	if err != nil {
		status := mapDomainError(err)
		if h.metrics != nil {
			h.metrics.PaymentErrors.WithLabelValues(errorType(err)).Inc()
		}
		writeError(w, status, "failed to apply payment", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.PaymentsApplied.Inc()
		if result.Remainder != nil {
			h.metrics.PartialSplits.Inc()
		} else {
			h.metrics.ChainsSettled.Inc()
		}
	}

	writeJSON(w, http.StatusOK, dto.PaymentResultFromUseCase(result))
}

// errorType buckets payment failures into a small label set.
func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrDebtNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrDebtNotOpen):
		return "not_open"
	case errors.Is(err, domain.ErrInvalidPaymentAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrPaymentExceedsRemaining):
		return "exceeds_remaining"
	default:
		return "internal"
	}
}
