package domain

import "errors"

var (
	// Debt errors
	ErrDebtNotFound       = errors.New("debt not found")
	ErrMissingParticipant = errors.New("creditor and debtor are required")
	ErrSameParticipant    = errors.New("creditor and debtor cannot be the same user")
	ErrMissingDueDate     = errors.New("debt requires a due date")
	ErrDebtHasSuccessor   = errors.New("debt has a successor record and cannot be deleted")

	// Payment errors
	ErrDebtNotOpen             = errors.New("debt is not open")
	ErrInvalidPaymentAmount    = errors.New("payment amount must be positive")
	ErrPaymentExceedsRemaining = errors.New("payment exceeds remaining amount")

	// Chain errors
	ErrChainMultipleOpen     = errors.New("chain has more than one open record")
	ErrChainOriginalMismatch = errors.New("chain records disagree on original amount")
	ErrChainBrokenLink       = errors.New("chain parent link is broken")
	ErrChainSumMismatch      = errors.New("chain paid and remaining amounts do not reconcile")

	// Score rules errors
	ErrRulesNotFound = errors.New("score rules not found")
	ErrInvalidRules  = errors.New("invalid score rules")

	// Scoring errors
	ErrMissingUserID = errors.New("user id is required")
)
