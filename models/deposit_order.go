package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DepositOrder tracks a Razorpay payment created to fund a wallet deposit.
// The ledger Transaction is only written once the payment is verified.
type DepositOrder struct {
	gorm.Model
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	RazorpayOrderID string          `gorm:"uniqueIndex;not null" json:"razorpay_order_id"`
	Amount          decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	Status          string          `gorm:"default:'pending'" json:"status"`
}
