package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
)

// DebtRepository implements usecase.DebtRepository on PostgreSQL.
//
// The debts table carries a partial unique index on (chain_id) WHERE
// status = 'OPEN', so the store itself guarantees at most one open record
// per chain no matter what the application does.
type DebtRepository struct {
	pool *pgxpool.Pool
}

// NewDebtRepository creates a new DebtRepository.
func NewDebtRepository(pool *pgxpool.Pool) *DebtRepository {
	return &DebtRepository{pool: pool}
}

const debtColumns = `id, chain_id, parent_debt_id, creditor_id, debtor_id,
	amount, original_amount, total_paid_in_chain, remaining_amount,
	was_partial_payment, status, description, attachment,
	due_date, paid_at, created_at, updated_at`

const insertDebtSQL = `
	INSERT INTO debts (` + debtColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

// Create inserts a new debt record outside a transaction.
func (r *DebtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	_, err := r.pool.Exec(ctx, insertDebtSQL, insertArgs(debt)...)
	return err
}

// CreateTx inserts a new debt record inside an existing transaction.
func (r *DebtRepository) CreateTx(ctx context.Context, tx usecase.Transaction, debt *domain.Debt) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertDebtSQL, insertArgs(debt)...)
	return err
}

// GetByID retrieves a debt record by ID.
func (r *DebtRepository) GetByID(ctx context.Context, id string) (*domain.Debt, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+debtColumns+` FROM debts WHERE id = $1`, id)

	return scanDebt(row)
}

// GetByIDForUpdate retrieves a debt record with a row lock, serializing
// concurrent payment attempts against the same record.
func (r *DebtRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Debt, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `SELECT `+debtColumns+` FROM debts WHERE id = $1 FOR UPDATE`, id)

	return scanDebt(row)
}

// MarkPaid persists the closed record. The update is conditional on the row
// still being OPEN; losing that race surfaces as domain.ErrDebtNotOpen with
// no partial mutation visible.
func (r *DebtRepository) MarkPaid(ctx context.Context, tx usecase.Transaction, debt *domain.Debt) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE debts
		SET status = $2, total_paid_in_chain = $3, remaining_amount = $4,
			paid_at = $5, updated_at = $6
		WHERE id = $1 AND status = 'OPEN'`,
		debt.ID,
		string(debt.Status),
		decimalToNumeric(debt.TotalPaidInChain),
		decimalToNumeric(debt.RemainingAmount),
		timePtrToPgTimestamptz(debt.PaidAt),
		timeToPgTimestamptz(debt.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotOpen
	}

	return nil
}

// GetChain lists every record sharing a chain ID, oldest first.
func (r *DebtRepository) GetChain(ctx context.Context, chainID string) ([]*domain.Debt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+debtColumns+` FROM debts WHERE chain_id = $1 ORDER BY created_at`, chainID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDebts(rows)
}

// ListByParticipant lists debts in which the user appears as creditor or
// debtor, newest chain first.
func (r *DebtRepository) ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*domain.Debt, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+debtColumns+`
		FROM debts
		WHERE creditor_id = $1 OR debtor_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDebts(rows)
}

// HasSuccessor reports whether another record points at this one.
func (r *DebtRepository) HasSuccessor(ctx context.Context, id string) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM debts WHERE parent_debt_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Delete removes a debt record unconditionally. Chain safety is enforced
// by the use case, not here.
func (r *DebtRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM debts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}

	return nil
}

func insertArgs(debt *domain.Debt) []any {
	return []any{
		debt.ID,
		debt.ChainID,
		debt.ParentDebtID,
		debt.CreditorID,
		debt.DebtorID,
		decimalToNumeric(debt.Amount),
		decimalToNumeric(debt.OriginalAmount),
		decimalToNumeric(debt.TotalPaidInChain),
		decimalToNumeric(debt.RemainingAmount),
		debt.WasPartialPayment,
		string(debt.Status),
		debt.Description,
		debt.Attachment,
		timeToPgTimestamptz(debt.DueDate),
		timePtrToPgTimestamptz(debt.PaidAt),
		timeToPgTimestamptz(debt.CreatedAt),
		timeToPgTimestamptz(debt.UpdatedAt),
	}
}

func scanDebts(rows pgx.Rows) ([]*domain.Debt, error) {
	debts := make([]*domain.Debt, 0)

	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}

		debts = append(debts, debt)
	}

	return debts, rows.Err()
}

func scanDebt(row pgx.Row) (*domain.Debt, error) {
	var (
		debt      domain.Debt
		status    string
		amount    pgtype.Numeric
		original  pgtype.Numeric
		totalPaid pgtype.Numeric
		remaining pgtype.Numeric
		dueDate   pgtype.Timestamptz
		paidAt    pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&debt.ID,
		&debt.ChainID,
		&debt.ParentDebtID,
		&debt.CreditorID,
		&debt.DebtorID,
		&amount,
		&original,
		&totalPaid,
		&remaining,
		&debt.WasPartialPayment,
		&status,
		&debt.Description,
		&debt.Attachment,
		&dueDate,
		&paidAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDebtNotFound
		}

		return nil, err
	}

	debt.Status = domain.DebtStatus(status)
	debt.Amount = numericToDecimal(amount)
	debt.OriginalAmount = numericToDecimal(original)
	debt.TotalPaidInChain = numericToDecimal(totalPaid)
	debt.RemainingAmount = numericToDecimal(remaining)
	debt.DueDate = dueDate.Time
	debt.CreatedAt = createdAt.Time
	debt.UpdatedAt = updatedAt.Time

	if paidAt.Valid {
		t := paidAt.Time
		debt.PaidAt = &t
	}

	return &debt, nil
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func timePtrToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}

	return pgtype.Timestamptz{Time: *t, Valid: true}
}
