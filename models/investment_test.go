package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDerivedFields(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		amount   string
		duration int
		expected string
	}{
		{"thirty day plan", "1000", 30, "1300"},
		{"four day plan", "1000", 4, "1040"},
		{"eight day plan", "250.50", 8, "270.54"},
		{"sixteen day plan", "100", 16, "116"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := Investment{
				Amount:   decimal.RequireFromString(tt.amount),
				Duration: tt.duration,
			}
			inv.ComputeDerivedFields(now)

			assert.True(t, inv.ExpectedReturn.Equal(decimal.RequireFromString(tt.expected)),
				"expected return %s, got %s", tt.expected, inv.ExpectedReturn)
			assert.Equal(t, now, inv.StartDate)
			assert.Equal(t, now.AddDate(0, 0, tt.duration), inv.EndDate)
		})
	}
}

func TestComputeDerivedFieldsKeepsExplicitStartDate(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	inv := Investment{
		Amount:    decimal.NewFromInt(500),
		Duration:  4,
		StartDate: start,
	}
	inv.ComputeDerivedFields(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, start, inv.StartDate)
	assert.Equal(t, start.AddDate(0, 0, 4), inv.EndDate)
}

func TestBeforeCreateDefaultsInterestRate(t *testing.T) {
	inv := Investment{
		Amount:   decimal.NewFromInt(1000),
		Duration: 8,
	}
	require.NoError(t, inv.BeforeCreate(nil))

	assert.Equal(t, DefaultInterestRate, inv.InterestRate)
	assert.False(t, inv.ExpectedReturn.IsZero())
}

func TestValidDuration(t *testing.T) {
	for _, d := range InvestmentDurations {
		assert.True(t, ValidDuration(d), "duration %d should be valid", d)
	}
	for _, d := range []int{0, 1, 5, 7, 15, 31, 365, -4} {
		assert.False(t, ValidDuration(d), "duration %d should be invalid", d)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{InvestmentStatusPending, InvestmentStatusActive, true},
		{InvestmentStatusPending, InvestmentStatusCancelled, true},
		{InvestmentStatusPending, InvestmentStatusCompleted, false},
		{InvestmentStatusActive, InvestmentStatusCompleted, true},
		{InvestmentStatusActive, InvestmentStatusCancelled, true},
		{InvestmentStatusActive, InvestmentStatusPending, false},
		{InvestmentStatusCompleted, InvestmentStatusActive, false},
		{InvestmentStatusCompleted, InvestmentStatusCancelled, false},
		{InvestmentStatusCancelled, InvestmentStatusActive, false},
	}
	for _, tt := range tests {
		inv := Investment{Status: tt.from}
		assert.Equal(t, tt.allowed, inv.CanTransition(tt.to),
			"transition %s -> %s", tt.from, tt.to)
	}
}
