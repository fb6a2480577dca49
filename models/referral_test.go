package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCommission(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		amount   string
		expected string
	}{
		{"default rate", DefaultCommissionRate, "1000", "20"},
		{"default rate fractional", DefaultCommissionRate, "250.50", "5.01"},
		{"higher rate", 10, "1000", "100"},
		{"zero rate", 0, "1000", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := Referral{CommissionRate: tt.rate}
			got := ref.CalculateCommission(decimal.RequireFromString(tt.amount))

			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, got.Equal(expected), "expected %s, got %s", expected, got)
			assert.True(t, ref.Commission.Equal(expected), "commission not stored on referral")
		})
	}
}

func TestCalculateCommissionIdempotent(t *testing.T) {
	ref := Referral{CommissionRate: DefaultCommissionRate}
	amount := decimal.NewFromInt(1000)

	first := ref.CalculateCommission(amount)
	second := ref.CalculateCommission(amount)
	assert.True(t, first.Equal(second))
}

func TestValidReferralStatus(t *testing.T) {
	for _, s := range []string{
		ReferralStatusPending, ReferralStatusActive, ReferralStatusCompleted, ReferralStatusCancelled,
	} {
		assert.True(t, ValidReferralStatus(s), "status %s should be valid", s)
	}
	assert.False(t, ValidReferralStatus("paid"))
	assert.False(t, ValidReferralStatus(""))
}
