package utils

import (
	"github.com/shopspring/decimal"

	"github.com/supergidii/Loans/models"
)

// ValidateInvestmentInput checks the creation bounds: amount in
// [100, 1,000,000], duration one of the fixed plan lengths, interest rate in
// [5, 20]. Returns every violated field, not just the first.
func ValidateInvestmentInput(amount decimal.Decimal, duration, interestRate int) FieldValidationErrors {
	var errs FieldValidationErrors

	if amount.LessThan(decimal.NewFromInt(models.MinInvestmentAmount)) ||
		amount.GreaterThan(decimal.NewFromInt(models.MaxInvestmentAmount)) {
		errs = append(errs, FieldValidationError{Field: "amount", Message: ErrInvalidAmount})
	}
	if !models.ValidDuration(duration) {
		errs = append(errs, FieldValidationError{Field: "duration", Message: ErrInvalidDuration})
	}
	if interestRate < models.MinInterestRate || interestRate > models.MaxInterestRate {
		errs = append(errs, FieldValidationError{Field: "interest_rate", Message: ErrInvalidRate})
	}

	return errs
}

// CanTransitionInvestment checks the lifecycle table
// (pending -> active|cancelled, active -> completed|cancelled) and returns a
// conflict error for anything else.
func CanTransitionInvestment(investment *models.Investment, newStatus string) error {
	if !investment.CanTransition(newStatus) {
		return ConflictError("Invalid status transition from "+investment.Status+" to "+newStatus, nil)
	}
	return nil
}
