package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrAmountTooLarge = errors.New("amount exceeds maximum allowed")
	ErrAmountTooSmall = errors.New("amount below minimum allowed")
)

// Validation constants
const (
	MaxDebtAmount = "1000000000" // 1 billion
	MinDebtAmount = "0.01"

	MaxDescriptionLength = 500
)

// CentTolerance is the rounding slack applied wherever two money amounts
// are compared: a payment within one cent of the remaining amount settles
// the chain.
var CentTolerance = decimal.New(1, -2)

// ValidateAmount validates a debt or payment amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	minAmount, _ := decimal.NewFromString(MinDebtAmount)
	if amount.LessThan(minAmount) {
		return fmt.Errorf("%w: minimum amount is %s", ErrAmountTooSmall, MinDebtAmount)
	}

	maxAmount, _ := decimal.NewFromString(MaxDebtAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxDebtAmount)
	}

	return nil
}

// ValidatePagination normalizes pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
