package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/score"
)

// ScoreUseCase is the read-side projection over the debt collection: it
// gathers a user's full history plus the current rule set and hands both to
// the pure scoring engine. It never mutates the ledger.
type ScoreUseCase struct {
	debtRepo DebtRepository
	rulesUC  *RulesUseCase
	cache    Cache
	now      func() time.Time
}

// NewScoreUseCase creates a new ScoreUseCase. cache is optional.
func NewScoreUseCase(debtRepo DebtRepository, rulesUC *RulesUseCase, cache Cache) *ScoreUseCase {
	return &ScoreUseCase{
		debtRepo: debtRepo,
		rulesUC:  rulesUC,
		cache:    cache,
		now:      time.Now,
	}
}

// GetScore computes the user's reputation score by full replay.
func (uc *ScoreUseCase) GetScore(ctx context.Context, userID string) (*domain.ScoreDetails, error) {
	if userID == "" {
		return nil, domain.ErrMissingUserID
	}

	if cached := uc.cachedScore(ctx, userID); cached != nil {
		return cached, nil
	}

	rules, err := uc.rulesUC.GetRules(ctx)
	if err != nil {
		return nil, err
	}

	debts, err := uc.debtRepo.ListByParticipant(ctx, userID, scoreHistoryLimit, 0)
	if err != nil {
		return nil, err
	}

	details, err := score.Calculate(userID, debts, *rules, uc.now().UTC())
	if err != nil {
		return nil, err
	}

	uc.storeScore(ctx, userID, details)

	return details, nil
}

func (uc *ScoreUseCase) cachedScore(ctx context.Context, userID string) *domain.ScoreDetails {
	if uc.cache == nil {
		return nil
	}

	data, err := uc.cache.Get(ctx, scoreCacheKey(userID))
	if err != nil || len(data) == 0 {
		return nil
	}

	var details domain.ScoreDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil
	}

	return &details
}

func (uc *ScoreUseCase) storeScore(ctx context.Context, userID string, details *domain.ScoreDetails) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(details)
	if err != nil {
		return
	}

	_ = uc.cache.Set(ctx, scoreCacheKey(userID), data, scoreCacheTTL)
}
