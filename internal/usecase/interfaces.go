package usecase

import (
	"context"
	"time"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
)

// DebtRepository defines data access for debt records. The persistence
// layer must apply MarkPaid conditionally on the record still being OPEN so
// that concurrent payment attempts against the same debt are serialized.
type DebtRepository interface {
	Create(ctx context.Context, debt *domain.Debt) error
	CreateTx(ctx context.Context, tx Transaction, debt *domain.Debt) error
	GetByID(ctx context.Context, id string) (*domain.Debt, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Debt, error)
	// MarkPaid persists the closed record. It must only touch rows whose
	// status is still OPEN and return domain.ErrDebtNotOpen otherwise.
	MarkPaid(ctx context.Context, tx Transaction, debt *domain.Debt) error
	GetChain(ctx context.Context, chainID string) ([]*domain.Debt, error)
	ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*domain.Debt, error)
	HasSuccessor(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// RulesRepository is the narrow contract against the external settings
// store that owns the ScoreRules document.
type RulesRepository interface {
	Load(ctx context.Context) (*domain.ScoreRules, error)
	Save(ctx context.Context, rules domain.ScoreRules) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations for score snapshots.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// Retrier retries an operation on transient persistence failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}
