package models

import (
	"github.com/shopspring/decimal"
)

// Monetary values are carried as decimal amounts with two fractional digits,
// never binary floating point. Percentage rates are whole numbers in [0,100]
// applied as rate/100.

var hundred = decimal.NewFromInt(100)

// ApplyRate returns amount * rate/100 exactly.
func ApplyRate(amount decimal.Decimal, rate int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(rate))).Div(hundred)
}

// DailyReturn returns amount * (1 + dailyRatePercent/100 * days) exactly.
func DailyReturn(amount decimal.Decimal, dailyRatePercent, days int) decimal.Decimal {
	multiplier := decimal.NewFromInt(int64(100 + dailyRatePercent*days))
	return amount.Mul(multiplier).Div(hundred)
}
