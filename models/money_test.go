package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplyRate(t *testing.T) {
	tests := []struct {
		amount   string
		rate     int
		expected string
	}{
		{"1000", 2, "20"},
		{"1000", 10, "100"},
		{"250.50", 2, "5.01"},
		{"0.01", 50, "0.005"},
		{"1000", 0, "0"},
	}
	for _, tt := range tests {
		got := ApplyRate(decimal.RequireFromString(tt.amount), tt.rate)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
			"ApplyRate(%s, %d) = %s, want %s", tt.amount, tt.rate, got, tt.expected)
	}
}

func TestDailyReturn(t *testing.T) {
	tests := []struct {
		amount   string
		rate     int
		days     int
		expected string
	}{
		{"1000", 1, 30, "1300"},
		{"1000", 1, 4, "1040"},
		{"500", 1, 8, "540"},
		{"100", 2, 10, "120"},
	}
	for _, tt := range tests {
		got := DailyReturn(decimal.RequireFromString(tt.amount), tt.rate, tt.days)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
			"DailyReturn(%s, %d, %d) = %s, want %s", tt.amount, tt.rate, tt.days, got, tt.expected)
	}
}
