package domain

import "time"

// ScoreEventType tells whether an event added or removed points.
type ScoreEventType string

const (
	ScoreEventEarned ScoreEventType = "earned"
	ScoreEventLost   ScoreEventType = "lost"
)

// Score event reason codes. The UI maps these to user-facing copy.
const (
	ReasonDebtRegistered = "debt_registered"
	ReasonPaidEarly      = "paid_early"
	ReasonPaidOnTime     = "paid_on_time"
	ReasonPaidLate1To2   = "paid_late_1_2"
	ReasonPaidLate3To7   = "paid_late_3_7"
	ReasonPaidLate8To30  = "paid_late_8_30"
	ReasonPaidLate30Plus = "paid_late_30_plus"
	ReasonOverdueAccrual = "overdue_accrual"
	ReasonDefaulted      = "defaulted"
)

// ScoreEvent is one atomic, explainable point adjustment tied to a debt.
// The full list forms a replayable audit trail of a user's score.
type ScoreEvent struct {
	Type   ScoreEventType `json:"type"`
	Reason string         `json:"reason"`
	Points int            `json:"points"`
	Date   time.Time      `json:"date"`
	DebtID string         `json:"debt_id"`
}

// ScoreBreakdown splits a score into its base and the earned/lost totals.
type ScoreBreakdown struct {
	Base   int `json:"base"`
	Earned int `json:"earned"`
	Lost   int `json:"lost"`
}

// ScoreDetails is the scoring engine's sole output: the number, the tier,
// the breakdown, and the event history in chronological order.
type ScoreDetails struct {
	UserID         string         `json:"user_id"`
	Score          int            `json:"score"`
	Classification Classification `json:"classification"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
	History        []ScoreEvent   `json:"history"`
	EvaluatedAt    time.Time      `json:"evaluated_at"`
}
