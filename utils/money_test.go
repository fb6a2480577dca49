package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsNonNegative(t *testing.T) {
	assert.True(t, IsNonNegative(decimal.Zero))
	assert.True(t, IsNonNegative(decimal.NewFromInt(100)))
	assert.False(t, IsNonNegative(decimal.NewFromInt(-1)))
}

func TestValidRate(t *testing.T) {
	assert.True(t, ValidRate(0))
	assert.True(t, ValidRate(2))
	assert.True(t, ValidRate(100))
	assert.False(t, ValidRate(-1))
	assert.False(t, ValidRate(101))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1300.00", FormatAmount(decimal.NewFromInt(1300)))
	assert.Equal(t, "5.01", FormatAmount(decimal.RequireFromString("5.01")))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
}
