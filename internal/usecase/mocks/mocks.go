package mocks

import (
	"context"
	"sync"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
)

// MockDebtRepository is an in-memory implementation of DebtRepository.
// Individual methods can be overridden through the corresponding Func
// fields.
type MockDebtRepository struct {
	mu    sync.RWMutex
	debts map[string]*domain.Debt

	CreateFunc            func(ctx context.Context, debt *domain.Debt) error
	CreateTxFunc          func(ctx context.Context, tx usecase.Transaction, debt *domain.Debt) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Debt, error)
	GetByIDForUpdateFunc  func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Debt, error)
	MarkPaidFunc          func(ctx context.Context, tx usecase.Transaction, debt *domain.Debt) error
	GetChainFunc          func(ctx context.Context, chainID string) ([]*domain.Debt, error)
	ListByParticipantFunc func(ctx context.Context, userID string, limit, offset int) ([]*domain.Debt, error)
	HasSuccessorFunc      func(ctx context.Context, id string) (bool, error)
	DeleteFunc            func(ctx context.Context, id string) error
}

func NewMockDebtRepository() *MockDebtRepository {
	return &MockDebtRepository{
		debts: make(map[string]*domain.Debt),
	}
}

func (m *MockDebtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, debt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debts[debt.ID] = debt
	return nil
}

func (m *MockDebtRepository) CreateTx(ctx context.Context, tx usecase.Transaction, debt *domain.Debt) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, debt)
	}
	return m.Create(ctx, debt)
}

func (m *MockDebtRepository) GetByID(ctx context.Context, id string) (*domain.Debt, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if debt, ok := m.debts[id]; ok {
		return debt, nil
	}
	return nil, domain.ErrDebtNotFound
}

func (m *MockDebtRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Debt, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockDebtRepository) MarkPaid(ctx context.Context, tx usecase.Transaction, debt *domain.Debt) error {
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, tx, debt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.debts[debt.ID]
	if !ok {
		return domain.ErrDebtNotFound
	}
	if existing.Status != domain.DebtStatusOpen {
		return domain.ErrDebtNotOpen
	}
	m.debts[debt.ID] = debt
	return nil
}

func (m *MockDebtRepository) GetChain(ctx context.Context, chainID string) ([]*domain.Debt, error) {
	if m.GetChainFunc != nil {
		return m.GetChainFunc(ctx, chainID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.Debt
	for _, d := range m.debts {
		if d.ChainID == chainID {
			records = append(records, d)
		}
	}
	return records, nil
}

func (m *MockDebtRepository) ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*domain.Debt, error) {
	if m.ListByParticipantFunc != nil {
		return m.ListByParticipantFunc(ctx, userID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.Debt
	for _, d := range m.debts {
		if d.CreditorID == userID || d.DebtorID == userID {
			records = append(records, d)
		}
	}
	return records, nil
}

func (m *MockDebtRepository) HasSuccessor(ctx context.Context, id string) (bool, error) {
	if m.HasSuccessorFunc != nil {
		return m.HasSuccessorFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.debts {
		if d.ParentDebtID != nil && *d.ParentDebtID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockDebtRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.debts[id]; !ok {
		return domain.ErrDebtNotFound
	}
	delete(m.debts, id)
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu      sync.Mutex
	counter int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "debt-" + string(rune('0'+m.counter))
}

// MockRetrier runs the operation once without retrying.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}
