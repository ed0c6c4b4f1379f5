package domain

import "fmt"

// Classification is the named reputation tier mapped from a score range.
type Classification string

const (
	ClassificationElite     Classification = "Elite"
	ClassificationConfiavel Classification = "Confiável"
	ClassificationOk        Classification = "Ok"
	ClassificationInstavel  Classification = "Instável"
	ClassificationPerigo    Classification = "Perigo"
	ClassificationCaloteiro Classification = "Caloteiro"
)

// BonusTiers configures settlement-timing bonuses for one side of a debt.
// LateToleranceDays is the grace window after the due date within which a
// payment still counts as on time for that side.
type BonusTiers struct {
	Early             int `json:"early"`
	OnTime            int `json:"on_time"`
	LateToleranceDays int `json:"late_tolerance_days"`
}

// PenaltyTiers configures debtor penalties as negative point values.
// OverdueMax is the floor for accumulated weekly accrual on a single debt.
type PenaltyTiers struct {
	Late1To2      int `json:"late_1_to_2"`
	Late3To7      int `json:"late_3_to_7"`
	Late8To30     int `json:"late_8_to_30"`
	Late30Plus    int `json:"late_30_plus"`
	OverdueWeekly int `json:"overdue_weekly"`
	OverdueMax    int `json:"overdue_max"`
	Default       int `json:"default"`
}

// Thresholds maps a score onto a classification tier. Each field is the
// minimum score for that tier; anything below Perigo is Caloteiro.
type Thresholds struct {
	Elite     int `json:"elite"`
	Confiavel int `json:"confiavel"`
	Ok        int `json:"ok"`
	Instavel  int `json:"instavel"`
	Perigo    int `json:"perigo"`
}

// Classify maps a score to its tier.
func (t Thresholds) Classify(score int) Classification {
	switch {
	case score >= t.Elite:
		return ClassificationElite
	case score >= t.Confiavel:
		return ClassificationConfiavel
	case score >= t.Ok:
		return ClassificationOk
	case score >= t.Instavel:
		return ClassificationInstavel
	case score >= t.Perigo:
		return ClassificationPerigo
	default:
		return ClassificationCaloteiro
	}
}

// ScoreRules is the administrator-editable rule set the scoring engine
// replays debt history against. It is an immutable value: loaded from the
// settings store, validated, and passed explicitly into every scoring
// call, never cached as ambient state inside the engine.
type ScoreRules struct {
	InitialScore     int          `json:"initial_score"`
	CreditorCreation int          `json:"creditor_creation"`
	PaymentBonus     BonusTiers   `json:"payment_bonus"`
	DebtorBonus      BonusTiers   `json:"debtor_bonus"`
	Penalties        PenaltyTiers `json:"penalties"`
	Thresholds       Thresholds   `json:"thresholds"`
}

// Validate checks the rule set eagerly. The engine refuses to compute with
// an invalid rule set rather than substituting silent defaults, since a
// silent default would misrepresent every user's score.
func (r ScoreRules) Validate() error {
	if r.InitialScore <= 0 {
		return fmt.Errorf("%w: initial_score must be positive", ErrInvalidRules)
	}

	if r.CreditorCreation < 0 {
		return fmt.Errorf("%w: creditor_creation cannot be negative", ErrInvalidRules)
	}

	if err := r.PaymentBonus.validate("payment_bonus"); err != nil {
		return err
	}

	if err := r.DebtorBonus.validate("debtor_bonus"); err != nil {
		return err
	}

	if err := r.Penalties.validate(); err != nil {
		return err
	}

	t := r.Thresholds
	if t.Elite <= t.Confiavel || t.Confiavel <= t.Ok || t.Ok <= t.Instavel || t.Instavel <= t.Perigo {
		return fmt.Errorf("%w: thresholds must be strictly descending", ErrInvalidRules)
	}

	return nil
}

func (b BonusTiers) validate(field string) error {
	if b.Early < 0 || b.OnTime < 0 {
		return fmt.Errorf("%w: %s points cannot be negative", ErrInvalidRules, field)
	}

	if b.LateToleranceDays < 0 {
		return fmt.Errorf("%w: %s.late_tolerance_days cannot be negative", ErrInvalidRules, field)
	}

	return nil
}

func (p PenaltyTiers) validate() error {
	lateTiers := map[string]int{
		"late_1_to_2":  p.Late1To2,
		"late_3_to_7":  p.Late3To7,
		"late_8_to_30": p.Late8To30,
		"late_30_plus": p.Late30Plus,
		"default":      p.Default,
	}

	for field, points := range lateTiers {
		if points >= 0 {
			return fmt.Errorf("%w: penalties.%s must be negative", ErrInvalidRules, field)
		}
	}

	if p.OverdueWeekly > 0 {
		return fmt.Errorf("%w: penalties.overdue_weekly cannot be positive", ErrInvalidRules)
	}

	if p.OverdueMax > p.OverdueWeekly {
		return fmt.Errorf("%w: penalties.overdue_max cannot be weaker than a single week", ErrInvalidRules)
	}

	return nil
}

// DefaultScoreRules returns the product's published defaults, used to
// bootstrap the settings store on first boot. They are surfaced through the
// same API administrators edit; the engine itself never falls back to them.
func DefaultScoreRules() ScoreRules {
	return ScoreRules{
		InitialScore:     100,
		CreditorCreation: 2,
		PaymentBonus: BonusTiers{
			Early:             5,
			OnTime:            3,
			LateToleranceDays: 2,
		},
		DebtorBonus: BonusTiers{
			Early:             10,
			OnTime:            5,
			LateToleranceDays: 2,
		},
		Penalties: PenaltyTiers{
			Late1To2:      -5,
			Late3To7:      -15,
			Late8To30:     -30,
			Late30Plus:    -50,
			OverdueWeekly: -5,
			OverdueMax:    -60,
			Default:       -100,
		},
		Thresholds: Thresholds{
			Elite:     180,
			Confiavel: 140,
			Ok:        100,
			Instavel:  60,
			Perigo:    20,
		},
	}
}
