package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a platform member. Admins are regular users carrying the
// admin role rather than a separate entity.
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         string `gorm:"default:'user'" json:"role"`
	ReferralCode string `gorm:"uniqueIndex" json:"referral_code"`
	ReferredBy   *uint  `json:"referred_by"`
	Referrer     *User  `gorm:"foreignKey:ReferredBy" json:"referrer,omitempty"`

	WalletBalance  decimal.Decimal `gorm:"type:numeric(15,2);default:0" json:"wallet_balance"`
	WalletCurrency string          `gorm:"default:'USD'" json:"wallet_currency"`

	// Cumulative earnings across interest and referral bonuses. Kept in sync
	// with the transaction ledger by utils.RecordTransaction.
	TotalEarnings decimal.Decimal `gorm:"type:numeric(15,2);default:0" json:"total_earnings"`

	// Investment stat block
	TotalInvested      decimal.Decimal `gorm:"type:numeric(15,2);default:0" json:"total_invested"`
	InvestmentEarnings decimal.Decimal `gorm:"type:numeric(15,2);default:0" json:"investment_earnings"`
	ActiveInvestments  int             `gorm:"default:0" json:"active_investments"`

	// Referral stat block
	TotalReferrals   int             `gorm:"default:0" json:"total_referrals"`
	ActiveReferrals  int             `gorm:"default:0" json:"active_referrals"`
	ReferralEarnings decimal.Decimal `gorm:"type:numeric(15,2);default:0" json:"referral_earnings"`

	IsVerified  bool      `gorm:"default:false" json:"is_verified"`
	IsBlocked   bool      `gorm:"default:false" json:"is_blocked"`
	LastLoginAt time.Time `json:"last_login_at"`

	ResetPasswordToken  string    `json:"-"`
	ResetPasswordExpire time.Time `json:"-"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// BeforeCreate assigns a referral code when the caller did not supply one.
// Uniqueness is enforced by the index; callers treat a duplicate-key failure
// as retryable.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ReferralCode == "" {
		code, err := NewReferralCode()
		if err != nil {
			return err
		}
		u.ReferralCode = code
	}
	return nil
}
