package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
)

// DebtUseCase handles debt record business logic.
type DebtUseCase struct {
	debtRepo DebtRepository
	idGen    IDGenerator
}

// NewDebtUseCase creates a new DebtUseCase.
func NewDebtUseCase(debtRepo DebtRepository, idGen IDGenerator) *DebtUseCase {
	return &DebtUseCase{
		debtRepo: debtRepo,
		idGen:    idGen,
	}
}

// CreateDebtInput represents input for registering a new debt.
type CreateDebtInput struct {
	CreditorID  string
	DebtorID    string
	Amount      decimal.Decimal
	DueDate     time.Time
	Description string
	Attachment  *string
}

// CreateDebt registers the origin record of a new chain.
func (uc *DebtUseCase) CreateDebt(ctx context.Context, input CreateDebtInput) (*domain.Debt, error) {
	if input.CreditorID == "" || input.DebtorID == "" {
		return nil, domain.ErrMissingParticipant
	}

	if input.CreditorID == input.DebtorID {
		return nil, domain.ErrSameParticipant
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if input.DueDate.IsZero() {
		return nil, domain.ErrMissingDueDate
	}

	now := time.Now().UTC()

	debt := domain.NewDebt(uc.idGen.Generate(), input.CreditorID, input.DebtorID, input.Amount, input.DueDate, input.Description, now)
	debt.Attachment = input.Attachment

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}

	return debt, nil
}

// GetDebt retrieves a single debt record by ID.
func (uc *DebtUseCase) GetDebt(ctx context.Context, id string) (*domain.Debt, error) {
	return uc.debtRepo.GetByID(ctx, id)
}

// GetChain returns every record of the chain the given debt belongs to,
// oldest first.
func (uc *DebtUseCase) GetChain(ctx context.Context, debtID string) ([]*domain.Debt, error) {
	debt, err := uc.debtRepo.GetByID(ctx, debtID)
	if err != nil {
		return nil, err
	}

	records, err := uc.debtRepo.GetChain(ctx, debt.ChainID)
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	return records, nil
}

// ListDebtsByParticipantInput represents input for listing a user's debts.
type ListDebtsByParticipantInput struct {
	UserID string
	Limit  int
	Offset int
}

// ListDebtsByParticipant lists debts a user is involved in, on either side.
func (uc *DebtUseCase) ListDebtsByParticipant(ctx context.Context, input ListDebtsByParticipantInput) ([]*domain.Debt, error) {
	if input.UserID == "" {
		return nil, domain.ErrMissingUserID
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.debtRepo.ListByParticipant(ctx, input.UserID, limit, offset)
}

// DeleteDebt removes a debt record. Records another record descends from
// cannot be deleted: cascading would erase audit history and re-parenting
// would fabricate records that never existed. Deletion never rebalances
// the chain.
func (uc *DebtUseCase) DeleteDebt(ctx context.Context, id string) error {
	if _, err := uc.debtRepo.GetByID(ctx, id); err != nil {
		return err
	}

	hasSuccessor, err := uc.debtRepo.HasSuccessor(ctx, id)
	if err != nil {
		return err
	}

	if hasSuccessor {
		return domain.ErrDebtHasSuccessor
	}

	return uc.debtRepo.Delete(ctx, id)
}
