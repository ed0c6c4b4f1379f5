package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase/mocks"
)

func newScoreHandler(t *testing.T) (*ScoreHandler, *mocks.MockDebtRepository) {
	t.Helper()

	repo := mocks.NewMockDebtRepository()
	rulesUC := usecase.NewRulesUseCase(&rulesRepoStub{})
	scoreUC := usecase.NewScoreUseCase(repo, rulesUC, nil)

	return NewScoreHandler(scoreUC, nil), repo
}

func TestScoreHandler_Get_NewUserGetsInitialScore(t *testing.T) {
	h, _ := newScoreHandler(t)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/ana/score", nil), "id", "ana")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var details domain.ScoreDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &details); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if details.Score != domain.DefaultScoreRules().InitialScore {
		t.Fatalf("expected initial score for clean history, got %d", details.Score)
	}
	if details.Classification != domain.ClassificationOk {
		t.Fatalf("expected Ok classification at initial score, got %s", details.Classification)
	}
}

func TestScoreHandler_Get_ReflectsDebtHistory(t *testing.T) {
	h, repo := newScoreHandler(t)

	debtUC := usecase.NewDebtUseCase(repo, mocks.NewMockIDGenerator())
	if _, err := debtUC.CreateDebt(context.Background(), usecase.CreateDebtInput{
		CreditorID: "ana",
		DebtorID:   "bruno",
		Amount:     decimal.NewFromInt(100),
		DueDate:    time.Now().UTC().Add(30 * 24 * time.Hour),
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/ana/score", nil), "id", "ana")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var details domain.ScoreDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &details); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := domain.DefaultScoreRules().InitialScore + domain.DefaultScoreRules().CreditorCreation
	if details.Score != want {
		t.Fatalf("expected creditor creation bonus, got %d want %d", details.Score, want)
	}
	if len(details.History) != 1 {
		t.Fatalf("expected one history event, got %d", len(details.History))
	}
}
