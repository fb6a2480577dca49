package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Investment statuses
const (
	InvestmentStatusPending   = "pending"
	InvestmentStatusActive    = "active"
	InvestmentStatusCompleted = "completed"
	InvestmentStatusCancelled = "cancelled"
)

// Investment amount and rate bounds
const (
	MinInvestmentAmount = 100
	MaxInvestmentAmount = 1000000
	MinInterestRate     = 5
	MaxInterestRate     = 20
	DefaultInterestRate = 10
)

// InvestmentDurations lists the allowed plan lengths in days.
var InvestmentDurations = []int{4, 8, 16, 30}

// Investment represents a fixed-term deposit accruing 1% per day.
type Investment struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Amount   decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	Duration int             `gorm:"not null" json:"duration"`

	// Stored for reporting only; the return formula uses the fixed daily rate.
	InterestRate int `gorm:"default:10" json:"interest_rate"`

	ExpectedReturn decimal.Decimal `gorm:"type:numeric(15,2)" json:"expected_return"`
	Status         string          `gorm:"default:'pending'" json:"status"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`

	ReferralCode string `json:"referral_code"`
	ReferredBy   *uint  `json:"referred_by"`
}

// ValidDuration reports whether d is one of the allowed plan lengths.
func ValidDuration(d int) bool {
	for _, v := range InvestmentDurations {
		if v == d {
			return true
		}
	}
	return false
}

// FixedDailyRatePercent is the accrual rate every plan earns per day,
// independent of the stored reporting rate.
const FixedDailyRatePercent = 1

// ComputeDerivedFields fills the expected return, start date and end date.
// The return uses the fixed 1%-per-day accrual, computed exactly in decimal
// arithmetic.
func (i *Investment) ComputeDerivedFields(now time.Time) {
	i.ExpectedReturn = DailyReturn(i.Amount, FixedDailyRatePercent, i.Duration)
	if i.StartDate.IsZero() {
		i.StartDate = now
	}
	i.EndDate = i.StartDate.AddDate(0, 0, i.Duration)
}

// BeforeCreate derives the financial fields once. They are never recomputed
// on later edits.
func (i *Investment) BeforeCreate(tx *gorm.DB) error {
	if i.InterestRate == 0 {
		i.InterestRate = DefaultInterestRate
	}
	i.ComputeDerivedFields(time.Now())
	return nil
}

// investmentTransitions holds the allowed status changes.
var investmentTransitions = map[string][]string{
	InvestmentStatusPending: {InvestmentStatusActive, InvestmentStatusCancelled},
	InvestmentStatusActive:  {InvestmentStatusCompleted, InvestmentStatusCancelled},
}

// CanTransition reports whether the investment may move to newStatus.
func (i *Investment) CanTransition(newStatus string) bool {
	for _, allowed := range investmentTransitions[i.Status] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}
