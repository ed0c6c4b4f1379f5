package handler

import (
	"encoding/json"
	"net/http"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/infrastructure/metrics"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
)

// RulesHandler handles score rule set HTTP requests.
type RulesHandler struct {
	rulesUC *usecase.RulesUseCase
	metrics *metrics.Metrics
}

// NewRulesHandler creates a new RulesHandler. metrics is optional.
func NewRulesHandler(rulesUC *usecase.RulesUseCase, m *metrics.Metrics) *RulesHandler {
	return &RulesHandler{rulesUC: rulesUC, metrics: m}
}

// Get returns the active rule set.
func (h *RulesHandler) Get(w http.ResponseWriter, r *http.Request) {
	rules, err := h.rulesUC.GetRules(r.Context())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to load rules", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, rules)
}

// Update validates and persists a new rule set.
func (h *RulesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var rules domain.ScoreRules
	if err := json.NewDecoder(r.Body).Decode(&rules); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.rulesUC.UpdateRules(r.Context(), rules); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update rules", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.RulesUpdates.Inc()
	}

	writeJSON(w, http.StatusOK, rules)
}
