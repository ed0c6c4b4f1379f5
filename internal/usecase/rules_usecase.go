package usecase

import (
	"context"
	"errors"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
)

// RulesUseCase owns the load/save contract against the settings store that
// holds the score rule set.
type RulesUseCase struct {
	rulesRepo RulesRepository
}

// NewRulesUseCase creates a new RulesUseCase.
func NewRulesUseCase(rulesRepo RulesRepository) *RulesUseCase {
	return &RulesUseCase{rulesRepo: rulesRepo}
}

// GetRules loads the current rule set. An empty settings store falls back
// to the published product defaults; a stored but invalid rule set fails
// loudly so a misconfiguration never silently skews every user's score.
func (uc *RulesUseCase) GetRules(ctx context.Context) (*domain.ScoreRules, error) {
	rules, err := uc.rulesRepo.Load(ctx)
	if errors.Is(err, domain.ErrRulesNotFound) {
		defaults := domain.DefaultScoreRules()
		return &defaults, nil
	}

	if err != nil {
		return nil, err
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return rules, nil
}

// UpdateRules validates and persists an administrator's rule-set edit.
// Scores are recomputed on read, so the change applies retroactively to
// every user's full history.
func (uc *RulesUseCase) UpdateRules(ctx context.Context, rules domain.ScoreRules) error {
	if err := rules.Validate(); err != nil {
		return err
	}

	return uc.rulesRepo.Save(ctx, rules)
}
