// Package score implements the reputation scoring engine: a deterministic
// replay of a user's full debt history against a rule set, producing a
// numeric score, a classification tier, and an explainable event log.
//
// The engine is a pure function. It performs no I/O, keeps no state between
// calls, and takes the evaluation time as an explicit input, so identical
// inputs always produce identical output and the whole history can be
// recomputed whenever the rules change.
package score

import (
	"sort"
	"time"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
)

// defaultAfterDays is how many days past due an open debt must be before
// the one-time default penalty fires on top of the weekly accrual.
const defaultAfterDays = 60

// Calculate replays every debt the user participated in, as creditor or
// debtor, against the rule set.
//
// Rules are validated eagerly and an invalid rule set refuses to compute.
// Malformed debt records are skipped instead of aborting: one corrupt
// record must not zero out a user's entire history.
func Calculate(userID string, debts []*domain.Debt, rules domain.ScoreRules, now time.Time) (*domain.ScoreDetails, error) {
	if userID == "" {
		return nil, domain.ErrMissingUserID
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	events := make([]domain.ScoreEvent, 0)

	for _, d := range debts {
		if d == nil || !scorable(d) {
			continue
		}

		isCreditor := d.CreditorID == userID
		isDebtor := d.DebtorID == userID
		if !isCreditor && !isDebtor {
			continue
		}

		if isCreditor && d.IsOrigin() {
			events = append(events, event(domain.ReasonDebtRegistered, rules.CreditorCreation, d.CreatedAt, d.ID))
		}

		switch d.Status {
		case domain.DebtStatusPaid:
			events = append(events, settlementEvents(d, isCreditor, isDebtor, rules)...)
		case domain.DebtStatusOpen:
			if isDebtor {
				events = append(events, overdueEvents(d, rules, now)...)
			}
		}
	}

	// The history reads as a timeline: chronological by the underlying
	// debt event, not by loop insertion order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	details := &domain.ScoreDetails{
		UserID:      userID,
		Breakdown:   domain.ScoreBreakdown{Base: rules.InitialScore},
		History:     events,
		EvaluatedAt: now.UTC(),
	}

	total := rules.InitialScore
	for _, ev := range events {
		total += ev.Points

		if ev.Points >= 0 {
			details.Breakdown.Earned += ev.Points
		} else {
			details.Breakdown.Lost += ev.Points
		}
	}

	details.Score = total
	details.Classification = rules.Thresholds.Classify(total)

	return details, nil
}

// settlementEvents scores the timing of a settled record against its due
// date. Each record was the chain head exactly once, so each paid record
// contributes exactly one timing decision per side.
func settlementEvents(d *domain.Debt, isCreditor, isDebtor bool, rules domain.ScoreRules) []domain.ScoreEvent {
	daysLate := daysBetween(d.DueDate, *d.PaidAt)

	var events []domain.ScoreEvent

	if isCreditor {
		switch {
		case daysLate < 0:
			events = append(events, event(domain.ReasonPaidEarly, rules.PaymentBonus.Early, *d.PaidAt, d.ID))
		case daysLate <= rules.PaymentBonus.LateToleranceDays:
			events = append(events, event(domain.ReasonPaidOnTime, rules.PaymentBonus.OnTime, *d.PaidAt, d.ID))
		}
	}

	if isDebtor {
		switch {
		case daysLate < 0:
			events = append(events, event(domain.ReasonPaidEarly, rules.DebtorBonus.Early, *d.PaidAt, d.ID))
		case daysLate <= rules.DebtorBonus.LateToleranceDays:
			events = append(events, event(domain.ReasonPaidOnTime, rules.DebtorBonus.OnTime, *d.PaidAt, d.ID))
		default:
			reason, points := lateTier(daysLate, rules.Penalties)
			events = append(events, event(reason, points, *d.PaidAt, d.ID))
		}
	}

	return events
}

// lateTier buckets a late settlement by how many whole days overdue it was
// at payment time.
func lateTier(daysLate int, p domain.PenaltyTiers) (string, int) {
	switch {
	case daysLate <= 2:
		return domain.ReasonPaidLate1To2, p.Late1To2
	case daysLate <= 7:
		return domain.ReasonPaidLate3To7, p.Late3To7
	case daysLate <= 30:
		return domain.ReasonPaidLate8To30, p.Late8To30
	default:
		return domain.ReasonPaidLate30Plus, p.Late30Plus
	}
}

// overdueEvents accrues penalties for a still-open record evaluated as of
// now. The weekly accrual is emitted as a single aggregated event per
// evaluation (not one per elapsed week) to keep the history compact, and
// is floored at OverdueMax per debt. Past sixty days the one-time default
// penalty lands on top of the accrual.
func overdueEvents(d *domain.Debt, rules domain.ScoreRules, now time.Time) []domain.ScoreEvent {
	daysOverdue := daysBetween(d.DueDate, now)
	if daysOverdue <= 0 {
		return nil
	}

	var events []domain.ScoreEvent

	if weeks := daysOverdue / 7; weeks > 0 {
		points := weeks * rules.Penalties.OverdueWeekly
		if points < rules.Penalties.OverdueMax {
			points = rules.Penalties.OverdueMax
		}

		events = append(events, event(domain.ReasonOverdueAccrual, points, now, d.ID))
	}

	if daysOverdue > defaultAfterDays {
		events = append(events, event(domain.ReasonDefaulted, rules.Penalties.Default, now, d.ID))
	}

	return events
}

// scorable reports whether a record carries everything scoring needs.
func scorable(d *domain.Debt) bool {
	if d.ID == "" || d.CreatedAt.IsZero() || d.DueDate.IsZero() {
		return false
	}

	if !d.OriginalAmount.IsPositive() {
		return false
	}

	switch d.Status {
	case domain.DebtStatusOpen:
		return true
	case domain.DebtStatusPaid:
		return d.PaidAt != nil && !d.PaidAt.IsZero()
	default:
		return false
	}
}

func event(reason string, points int, date time.Time, debtID string) domain.ScoreEvent {
	eventType := domain.ScoreEventEarned
	if points < 0 {
		eventType = domain.ScoreEventLost
	}

	return domain.ScoreEvent{
		Type:   eventType,
		Reason: reason,
		Points: points,
		Date:   date.UTC(),
		DebtID: debtID,
	}
}

// daysBetween counts whole calendar days from one instant to another,
// negative when to precedes from.
func daysBetween(from, to time.Time) int {
	f := from.UTC().Truncate(24 * time.Hour)
	t := to.UTC().Truncate(24 * time.Hour)

	return int(t.Sub(f).Hours() / 24)
}
