package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
)

// pgxPool is the subset of pgxpool.Pool the transaction manager needs.
type pgxPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager implements usecase.TransactionManager on pgx.
type TxManager struct {
	pool pgxPool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool pgxPool) *TxManager {
	return &TxManager{pool: pool}
}

// Begin starts a new database transaction.
func (m *TxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}

	return &Tx{tx: tx}, nil
}

// Tx wraps a pgx transaction behind the usecase.Transaction interface.
type Tx struct {
	tx pgx.Tx
}

// Commit commits the transaction.
func (t *Tx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback aborts the transaction. Rolling back after a successful commit
// is a no-op.
func (t *Tx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err == pgx.ErrTxClosed {
		return nil
	}

	return err
}

// PgxTx exposes the underlying pgx transaction to repositories in this
// package.
func (t *Tx) PgxTx() pgx.Tx {
	return t.tx
}
