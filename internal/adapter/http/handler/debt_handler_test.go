package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/http/dto"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase/mocks"
)

func newDebtHandler() (*DebtHandler, *mocks.MockDebtRepository) {
	repo := mocks.NewMockDebtRepository()
	uc := usecase.NewDebtUseCase(repo, mocks.NewMockIDGenerator())
	return NewDebtHandler(uc), repo
}

func TestDebtHandler_Create_Success(t *testing.T) {
	h, _ := newDebtHandler()

	body, _ := json.Marshal(dto.CreateDebtRequest{
		CreditorID:  "ana",
		DebtorID:    "bruno",
		Amount:      decimal.NewFromInt(100),
		DueDate:     time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		Description: "churrasco",
	})

	req := httptest.NewRequest(http.MethodPost, "/debts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.DebtResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ChainID != resp.ID {
		t.Fatalf("expected origin record chain ID to equal its own ID, got %s vs %s", resp.ChainID, resp.ID)
	}
	if resp.Status != "OPEN" {
		t.Fatalf("expected OPEN status, got %s", resp.Status)
	}
}

func TestDebtHandler_Create_InvalidBody(t *testing.T) {
	h, _ := newDebtHandler()

	req := httptest.NewRequest(http.MethodPost, "/debts", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDebtHandler_Create_SameParticipant(t *testing.T) {
	h, _ := newDebtHandler()

	body, _ := json.Marshal(dto.CreateDebtRequest{
		CreditorID: "ana",
		DebtorID:   "ana",
		Amount:     decimal.NewFromInt(100),
		DueDate:    time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodPost, "/debts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDebtHandler_Get_NotFound(t *testing.T) {
	h, _ := newDebtHandler()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/debts/nope", nil), "id", "nope")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDebtHandler_Delete_WithSuccessorConflicts(t *testing.T) {
	h, repo := newDebtHandler()

	uc := usecase.NewDebtUseCase(repo, mocks.NewMockIDGenerator())
	debt, err := uc.CreateDebt(context.Background(), usecase.CreateDebtInput{
		CreditorID: "ana",
		DebtorID:   "bruno",
		Amount:     decimal.NewFromInt(100),
		DueDate:    time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Apply a partial payment so the origin gains a successor.
	paymentUC := usecase.NewPaymentUseCase(mocks.NewMockTransactionManager(), repo, mocks.NewMockIDGenerator(), nil, nil)
	if _, err := paymentUC.ApplyPayment(context.Background(), usecase.ApplyPaymentInput{
		DebtID: debt.ID,
		Amount: decimal.NewFromInt(40),
	}); err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/debts/"+debt.ID, nil), "id", debt.ID)
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 deleting a record with a successor, got %d: %s", rec.Code, rec.Body.String())
	}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
