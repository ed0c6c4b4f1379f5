package score

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
)

var evalTime = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func paidDebt(id, creditor, debtor string, due, paid time.Time) *domain.Debt {
	paidAt := paid
	return &domain.Debt{
		ID:               id,
		ChainID:          id,
		CreditorID:       creditor,
		DebtorID:         debtor,
		Amount:           decimal.NewFromInt(100),
		OriginalAmount:   decimal.NewFromInt(100),
		TotalPaidInChain: decimal.NewFromInt(100),
		RemainingAmount:  decimal.Zero,
		Status:           domain.DebtStatusPaid,
		DueDate:          due,
		PaidAt:           &paidAt,
		CreatedAt:        due.AddDate(0, -1, 0),
		UpdatedAt:        paid,
	}
}

func openDebt(id, creditor, debtor string, due time.Time) *domain.Debt {
	return &domain.Debt{
		ID:              id,
		ChainID:         id,
		CreditorID:      creditor,
		DebtorID:        debtor,
		Amount:          decimal.NewFromInt(100),
		OriginalAmount:  decimal.NewFromInt(100),
		RemainingAmount: decimal.NewFromInt(100),
		Status:          domain.DebtStatusOpen,
		DueDate:         due,
		CreatedAt:       due.AddDate(0, -1, 0),
		UpdatedAt:       due.AddDate(0, -1, 0),
	}
}

func TestCalculate_EmptyHistory(t *testing.T) {
	details, err := Calculate("ana", nil, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	assert.Equal(t, 100, details.Score)
	assert.Equal(t, domain.ClassificationOk, details.Classification)
	assert.Empty(t, details.History)
	assert.Equal(t, 100, details.Breakdown.Base)
	assert.Zero(t, details.Breakdown.Earned)
	assert.Zero(t, details.Breakdown.Lost)
}

func TestCalculate_MissingUserID(t *testing.T) {
	_, err := Calculate("", nil, domain.DefaultScoreRules(), evalTime)
	assert.ErrorIs(t, err, domain.ErrMissingUserID)
}

func TestCalculate_InvalidRulesRefuse(t *testing.T) {
	rules := domain.DefaultScoreRules()
	rules.InitialScore = 0

	_, err := Calculate("ana", nil, rules, evalTime)
	assert.ErrorIs(t, err, domain.ErrInvalidRules)
}

func TestCalculate_CreditorCreationBonus(t *testing.T) {
	due := evalTime.AddDate(0, 1, 0)
	debts := []*domain.Debt{openDebt("d1", "ana", "bruno", due)}

	details, err := Calculate("ana", debts, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	assert.Equal(t, 102, details.Score)
	require.Len(t, details.History, 1)
	assert.Equal(t, domain.ReasonDebtRegistered, details.History[0].Reason)
	assert.Equal(t, 2, details.History[0].Points)
}

func TestCalculate_RemainderRecordEarnsNoCreationBonus(t *testing.T) {
	due := evalTime.AddDate(0, 1, 0)
	remainder := openDebt("d2", "ana", "bruno", due)
	remainder.ChainID = "d1"
	parent := "d1"
	remainder.ParentDebtID = &parent
	remainder.WasPartialPayment = true

	details, err := Calculate("ana", []*domain.Debt{remainder}, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	assert.Equal(t, 100, details.Score)
	assert.Empty(t, details.History)
}

func TestCalculate_SettlementTiming(t *testing.T) {
	due := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		paidAt     time.Time
		wantReason string
		wantPoints int
	}{
		{"early", due.AddDate(0, 0, -3), domain.ReasonPaidEarly, 10},
		{"on due date", due, domain.ReasonPaidOnTime, 5},
		{"within tolerance", due.AddDate(0, 0, 2), domain.ReasonPaidOnTime, 5},
		{"three days late", due.AddDate(0, 0, 3), domain.ReasonPaidLate3To7, -15},
		{"ten days late", due.AddDate(0, 0, 10), domain.ReasonPaidLate8To30, -30},
		{"forty days late", due.AddDate(0, 0, 40), domain.ReasonPaidLate30Plus, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debts := []*domain.Debt{paidDebt("d1", "ana", "bruno", due, tt.paidAt)}

			details, err := Calculate("bruno", debts, domain.DefaultScoreRules(), evalTime)
			require.NoError(t, err)

			require.Len(t, details.History, 1)
			assert.Equal(t, tt.wantReason, details.History[0].Reason)
			assert.Equal(t, tt.wantPoints, details.History[0].Points)
		})
	}
}

func TestCalculate_CreditorSideOfSettlement(t *testing.T) {
	due := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	// Early settlement: creation bonus plus creditor early bonus.
	debts := []*domain.Debt{paidDebt("d1", "ana", "bruno", due, due.AddDate(0, 0, -1))}

	details, err := Calculate("ana", debts, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	require.Len(t, details.History, 2)
	assert.Equal(t, 100+2+5, details.Score)

	// A late settlement earns the creditor nothing but costs nothing either.
	debts = []*domain.Debt{paidDebt("d2", "ana", "bruno", due, due.AddDate(0, 0, 10))}

	details, err = Calculate("ana", debts, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	require.Len(t, details.History, 1)
	assert.Equal(t, domain.ReasonDebtRegistered, details.History[0].Reason)
}

func TestCalculate_OverdueAccrual(t *testing.T) {
	// Three full weeks overdue as of evaluation time.
	due := evalTime.AddDate(0, 0, -21)
	debts := []*domain.Debt{openDebt("d1", "ana", "bruno", due)}

	details, err := Calculate("bruno", debts, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	require.Len(t, details.History, 1)
	assert.Equal(t, domain.ReasonOverdueAccrual, details.History[0].Reason)
	assert.Equal(t, -15, details.History[0].Points)
	assert.Equal(t, 85, details.Score)
}

func TestCalculate_OverdueAccrualFlooredAtMax(t *testing.T) {
	// Twenty weeks overdue: raw accrual of -100 floors at -60, and the
	// one-time default penalty fires past sixty days.
	due := evalTime.AddDate(0, 0, -140)
	debts := []*domain.Debt{openDebt("d1", "ana", "bruno", due)}

	details, err := Calculate("bruno", debts, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	require.Len(t, details.History, 2)

	var accrual, defaulted *domain.ScoreEvent
	for i := range details.History {
		switch details.History[i].Reason {
		case domain.ReasonOverdueAccrual:
			accrual = &details.History[i]
		case domain.ReasonDefaulted:
			defaulted = &details.History[i]
		}
	}

	require.NotNil(t, accrual)
	assert.Equal(t, -60, accrual.Points)
	require.NotNil(t, defaulted)
	assert.Equal(t, -100, defaulted.Points)

	assert.Equal(t, 100-60-100, details.Score)
	assert.Equal(t, domain.ClassificationCaloteiro, details.Classification)
}

func TestCalculate_NotYetDueAccruesNothing(t *testing.T) {
	due := evalTime.AddDate(0, 0, 10)
	debts := []*domain.Debt{openDebt("d1", "ana", "bruno", due)}

	details, err := Calculate("bruno", debts, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	assert.Empty(t, details.History)
	assert.Equal(t, 100, details.Score)
}

func TestCalculate_SkipsMalformedRecords(t *testing.T) {
	due := evalTime.AddDate(0, 1, 0)

	noPaidAt := paidDebt("d2", "ana", "bruno", due, due)
	noPaidAt.PaidAt = nil

	debts := []*domain.Debt{
		openDebt("d1", "ana", "bruno", due),
		nil,
		{ID: "", Status: domain.DebtStatusOpen},
		noPaidAt,
	}

	details, err := Calculate("ana", debts, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	// Only the well-formed record scores.
	require.Len(t, details.History, 1)
	assert.Equal(t, 102, details.Score)
}

func TestCalculate_HistoryIsChronological(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	newest := paidDebt("d2", "carla", "ana", base.AddDate(0, 3, 0), base.AddDate(0, 3, 0))
	oldest := paidDebt("d1", "bruno", "ana", base, base)

	details, err := Calculate("ana", []*domain.Debt{newest, oldest}, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	require.Len(t, details.History, 2)
	for i := 1; i < len(details.History); i++ {
		assert.False(t, details.History[i].Date.Before(details.History[i-1].Date),
			"history out of order at %d", i)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	due := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	debts := []*domain.Debt{
		paidDebt("d1", "ana", "bruno", due, due.AddDate(0, 0, 3)),
		openDebt("d2", "carla", "bruno", evalTime.AddDate(0, 0, -30)),
	}

	first, err := Calculate("bruno", debts, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	second, err := Calculate("bruno", debts, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculate_BreakdownReconciles(t *testing.T) {
	due := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	debts := []*domain.Debt{
		paidDebt("d1", "ana", "bruno", due, due),
		paidDebt("d2", "carla", "bruno", due, due.AddDate(0, 0, 10)),
	}

	details, err := Calculate("bruno", debts, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	assert.Equal(t, details.Breakdown.Base+details.Breakdown.Earned+details.Breakdown.Lost, details.Score)
	assert.Equal(t, 5, details.Breakdown.Earned)
	assert.Equal(t, -30, details.Breakdown.Lost)
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2026, 6, 10, 23, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 13, 1, 0, 0, 0, time.UTC)

	// Whole calendar days, ignoring time of day.
	assert.Equal(t, 3, daysBetween(from, to))
	assert.Equal(t, -3, daysBetween(to, from))
	assert.Equal(t, 0, daysBetween(from, from))
}

func TestCalculate_UninvolvedDebtsIgnored(t *testing.T) {
	due := evalTime.AddDate(0, 1, 0)
	debts := []*domain.Debt{openDebt("d1", "carla", "diego", due)}

	details, err := Calculate("ana", debts, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	assert.Empty(t, details.History)
	assert.Equal(t, 100, details.Score)
}

func TestCalculate_RulesChangeRetroactively(t *testing.T) {
	due := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	debts := []*domain.Debt{paidDebt("d1", "ana", "bruno", due, due)}

	strict := domain.DefaultScoreRules()
	strict.DebtorBonus.OnTime = 1

	lenient, err := Calculate("bruno", debts, domain.DefaultScoreRules(), evalTime)
	require.NoError(t, err)

	adjusted, err := Calculate("bruno", debts, strict, evalTime)
	require.NoError(t, err)

	assert.Equal(t, 105, lenient.Score)
	assert.Equal(t, 101, adjusted.Score)
}
