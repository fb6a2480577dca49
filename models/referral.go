package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Referral statuses
const (
	ReferralStatusPending   = "pending"
	ReferralStatusActive    = "active"
	ReferralStatusCompleted = "completed"
	ReferralStatusCancelled = "cancelled"
)

// Referral payment statuses
const (
	ReferralPaymentPending = "pending"
	ReferralPaymentPaid    = "paid"
	ReferralPaymentFailed  = "failed"
)

// DefaultCommissionRate is the platform-wide referral commission percentage.
const DefaultCommissionRate = 2

// Referral is a directed referrer -> referred relationship carrying the
// commission owed to the referrer for the referred user's investment.
type Referral struct {
	gorm.Model
	ReferrerID uint `gorm:"not null;index" json:"referrer_id"`
	Referrer   User `gorm:"foreignKey:ReferrerID" json:"referrer,omitempty"`

	ReferredID uint `gorm:"not null;index" json:"referred_id"`
	Referred   User `gorm:"foreignKey:ReferredID" json:"referred,omitempty"`

	Status string `gorm:"default:'pending'" json:"status"`

	// Whole-number percentage, applied as rate/100.
	CommissionRate int             `gorm:"not null" json:"commission_rate"`
	Commission     decimal.Decimal `gorm:"type:numeric(15,2);default:0" json:"commission"`

	InvestmentID *uint       `gorm:"index" json:"investment_id"`
	Investment   *Investment `gorm:"foreignKey:InvestmentID" json:"investment,omitempty"`

	PaymentStatus string     `gorm:"default:'pending'" json:"payment_status"`
	PaymentDate   *time.Time `json:"payment_date"`
	Notes         string     `json:"notes"`
}

// CalculateCommission derives the commission from an investment amount,
// stores it on the referral and returns it. Idempotent for the same inputs.
func (r *Referral) CalculateCommission(investmentAmount decimal.Decimal) decimal.Decimal {
	r.Commission = ApplyRate(investmentAmount, r.CommissionRate)
	return r.Commission
}

// ValidReferralStatus reports whether s is a known referral status.
func ValidReferralStatus(s string) bool {
	switch s {
	case ReferralStatusPending, ReferralStatusActive, ReferralStatusCompleted, ReferralStatusCancelled:
		return true
	}
	return false
}
