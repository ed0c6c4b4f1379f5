package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/http/dto"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
)

// DebtHandler handles debt-related HTTP requests.
type DebtHandler struct {
	debtUC *usecase.DebtUseCase
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtUC *usecase.DebtUseCase) *DebtHandler {
	return &DebtHandler{debtUC: debtUC}
}

// Create registers a new debt.
func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debt, err := h.debtUC.CreateDebt(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create debt", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.DebtFromDomain(debt))
}

// Get retrieves a debt by ID.
func (h *DebtHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing debt ID", "")
		return
	}

	debt, err := h.debtUC.GetDebt(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get debt", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.DebtFromDomain(debt))
}

// GetChain lists the full chain the debt belongs to, oldest first.
func (h *DebtHandler) GetChain(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing debt ID", "")
		return
	}

	records, err := h.debtUC.GetChain(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get chain", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.DebtsFromDomain(records))
}

// ListByParticipant lists debts for a user, on either side.
func (h *DebtHandler) ListByParticipant(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	debts, err := h.debtUC.ListDebtsByParticipant(r.Context(), usecase.ListDebtsByParticipantInput{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list debts", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.DebtsFromDomain(debts))
}

// Delete removes a debt that has no successor record.
func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing debt ID", "")
		return
	}

	if err := h.debtUC.DeleteDebt(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete debt", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
