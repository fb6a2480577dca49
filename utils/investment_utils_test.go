package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supergidii/Loans/models"
)

func TestValidateInvestmentInput(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		errs := ValidateInvestmentInput(decimal.NewFromInt(1000), 30, 10)
		assert.Empty(t, errs)
	})

	t.Run("boundary amounts pass", func(t *testing.T) {
		assert.Empty(t, ValidateInvestmentInput(decimal.NewFromInt(100), 4, 5))
		assert.Empty(t, ValidateInvestmentInput(decimal.NewFromInt(1000000), 30, 20))
	})

	t.Run("amount below minimum", func(t *testing.T) {
		errs := ValidateInvestmentInput(decimal.NewFromInt(99), 30, 10)
		require.Len(t, errs, 1)
		assert.Equal(t, "amount", errs[0].Field)
	})

	t.Run("amount above maximum", func(t *testing.T) {
		errs := ValidateInvestmentInput(decimal.NewFromInt(1000001), 30, 10)
		require.Len(t, errs, 1)
		assert.Equal(t, "amount", errs[0].Field)
	})

	t.Run("invalid duration", func(t *testing.T) {
		errs := ValidateInvestmentInput(decimal.NewFromInt(1000), 5, 10)
		require.Len(t, errs, 1)
		assert.Equal(t, "duration", errs[0].Field)
	})

	t.Run("rate out of range", func(t *testing.T) {
		errs := ValidateInvestmentInput(decimal.NewFromInt(1000), 30, 25)
		require.Len(t, errs, 1)
		assert.Equal(t, "interest_rate", errs[0].Field)

		errs = ValidateInvestmentInput(decimal.NewFromInt(1000), 30, 4)
		require.Len(t, errs, 1)
		assert.Equal(t, "interest_rate", errs[0].Field)
	})

	t.Run("all violations reported together", func(t *testing.T) {
		errs := ValidateInvestmentInput(decimal.NewFromInt(99), 5, 25)
		assert.Len(t, errs, 3)
	})
}

func TestCanTransitionInvestment(t *testing.T) {
	pending := &models.Investment{Status: models.InvestmentStatusPending}
	assert.NoError(t, CanTransitionInvestment(pending, models.InvestmentStatusActive))
	assert.NoError(t, CanTransitionInvestment(pending, models.InvestmentStatusCancelled))

	err := CanTransitionInvestment(pending, models.InvestmentStatusCompleted)
	require.Error(t, err)
	assert.True(t, IsConflictError(err))

	completed := &models.Investment{Status: models.InvestmentStatusCompleted}
	err = CanTransitionInvestment(completed, models.InvestmentStatusActive)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completed")
}
