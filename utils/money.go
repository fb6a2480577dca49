package utils

import (
	"github.com/shopspring/decimal"
)

// Validation and formatting helpers for monetary inputs. The rate and
// accrual arithmetic itself lives in models (ApplyRate, DailyReturn) next to
// the types that use it.

// IsNonNegative reports whether the amount is zero or positive.
func IsNonNegative(amount decimal.Decimal) bool {
	return !amount.IsNegative()
}

// ValidRate reports whether rate is a whole-number percentage in [0,100].
func ValidRate(rate int) bool {
	return rate >= 0 && rate <= 100
}

// FormatAmount renders an amount with two decimal places for API responses.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
