package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
)

// PaymentUseCase is the chain resolver entry point: it applies a payment
// against an open debt and persists the resulting mutation set atomically.
type PaymentUseCase struct {
	txManager TransactionManager
	debtRepo  DebtRepository
	idGen     IDGenerator
	retrier   Retrier
	cache     Cache
}

// NewPaymentUseCase creates a new PaymentUseCase. retrier and cache are
// optional.
func NewPaymentUseCase(
	txManager TransactionManager,
	debtRepo DebtRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
) *PaymentUseCase {
	return &PaymentUseCase{
		txManager: txManager,
		debtRepo:  debtRepo,
		idGen:     idGen,
		retrier:   retrier,
		cache:     cache,
	}
}

// ApplyPaymentInput represents input for applying a payment.
type ApplyPaymentInput struct {
	DebtID string
	Amount decimal.Decimal
}

// PaymentResult is the persisted mutation set: the record that closed and,
// for a strict partial payment, the open remainder that carries the chain.
type PaymentResult struct {
	Closed    *domain.Debt
	Remainder *domain.Debt
}

// ApplyPayment applies a payment to an open debt. The PAID transition and
// the remainder creation commit together or not at all; if the record is no
// longer open by the time the mutation is applied, the call fails cleanly
// with domain.ErrDebtNotOpen and the caller re-reads and retries.
func (uc *PaymentUseCase) ApplyPayment(ctx context.Context, input ApplyPaymentInput) (*PaymentResult, error) {
	// Reject obvious caller errors before touching the store.
	if input.DebtID == "" {
		return nil, domain.ErrDebtNotFound
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidPaymentAmount
	}

	var result *PaymentResult

	operation := func() error {
		res, err := uc.applyOnce(ctx, input)
		if err != nil {
			return err
		}

		result = res

		return nil
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, operation)
	} else {
		err = operation()
	}

	if err != nil {
		return nil, err
	}

	uc.invalidateScores(ctx, result.Closed)

	return result, nil
}

func (uc *PaymentUseCase) applyOnce(ctx context.Context, input ApplyPaymentInput) (*PaymentResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock the record so concurrent payments against the same debt
	// serialize instead of double-closing.
	debt, err := uc.debtRepo.GetByIDForUpdate(ctx, tx, input.DebtID)
	if err != nil {
		return nil, err
	}

	outcome, err := debt.ApplyPayment(input.Amount, uc.idGen.Generate(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := uc.debtRepo.MarkPaid(ctx, tx, outcome.Closed); err != nil {
		return nil, err
	}

	if outcome.Remainder != nil {
		if err := uc.debtRepo.CreateTx(ctx, tx, outcome.Remainder); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &PaymentResult{Closed: outcome.Closed, Remainder: outcome.Remainder}, nil
}

// invalidateScores drops both participants' cached score snapshots after a
// successful settlement. Best effort: the short cache TTL covers misses.
func (uc *PaymentUseCase) invalidateScores(ctx context.Context, debt *domain.Debt) {
	if uc.cache == nil {
		return
	}

	_ = uc.cache.Delete(ctx, scoreCacheKey(debt.CreditorID))
	_ = uc.cache.Delete(ctx, scoreCacheKey(debt.DebtorID))
}
