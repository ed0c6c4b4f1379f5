package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
)

type rulesRepoStub struct {
	rules *domain.ScoreRules
	saved *domain.ScoreRules
}

func (s *rulesRepoStub) Load(_ context.Context) (*domain.ScoreRules, error) {
	if s.rules == nil {
		return nil, domain.ErrRulesNotFound
	}
	return s.rules, nil
}

func (s *rulesRepoStub) Save(_ context.Context, rules domain.ScoreRules) error {
	s.saved = &rules
	return nil
}

func TestRulesHandler_Get_DefaultsWhenUnset(t *testing.T) {
	h := NewRulesHandler(usecase.NewRulesUseCase(&rulesRepoStub{}), nil)

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/rules", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rules domain.ScoreRules
	if err := json.Unmarshal(rec.Body.Bytes(), &rules); err != nil {
		t.Fatalf("failed to decode rules: %v", err)
	}
	if rules.InitialScore != domain.DefaultScoreRules().InitialScore {
		t.Fatalf("expected default initial score, got %d", rules.InitialScore)
	}
}

func TestRulesHandler_Update_PersistsValidRules(t *testing.T) {
	repo := &rulesRepoStub{}
	h := NewRulesHandler(usecase.NewRulesUseCase(repo), nil)

	rules := domain.DefaultScoreRules()
	rules.InitialScore = 200
	body, _ := json.Marshal(rules)

	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPut, "/rules", bytes.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if repo.saved == nil || repo.saved.InitialScore != 200 {
		t.Fatalf("expected rules to be saved, got %+v", repo.saved)
	}
}

func TestRulesHandler_Update_RejectsInvalidRules(t *testing.T) {
	repo := &rulesRepoStub{}
	h := NewRulesHandler(usecase.NewRulesUseCase(repo), nil)

	rules := domain.DefaultScoreRules()
	rules.Penalties.Late1To2 = 5 // penalties must be negative
	body, _ := json.Marshal(rules)

	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPut, "/rules", bytes.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if repo.saved != nil {
		t.Fatalf("invalid rules must not be persisted")
	}
}
