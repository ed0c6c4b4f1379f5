package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/infrastructure/metrics"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
)

// ScoreHandler handles reputation score HTTP requests.
type ScoreHandler struct {
	scoreUC *usecase.ScoreUseCase
	metrics *metrics.Metrics
}

// NewScoreHandler creates a new ScoreHandler. metrics is optional.
func NewScoreHandler(scoreUC *usecase.ScoreUseCase, m *metrics.Metrics) *ScoreHandler {
	return &ScoreHandler{scoreUC: scoreUC, metrics: m}
}

// Get computes the user's reputation score. ScoreDetails already carries
// JSON tags, so it goes on the wire as is.
func (h *ScoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	details, err := h.scoreUC.GetScore(r.Context(), userID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compute score", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.ScoresComputed.Inc()
	}

	writeJSON(w, http.StatusOK, details)
}
