package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction types
const (
	TransactionTypeDeposit       = "deposit"
	TransactionTypeWithdrawal    = "withdrawal"
	TransactionTypeInterest      = "interest"
	TransactionTypeReferralBonus = "referral_bonus"
	TransactionTypeInvestment    = "investment"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusCancelled = "cancelled"
)

// Payment methods
const (
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodDebitCard    = "debit_card"
	PaymentMethodCrypto       = "crypto"
	PaymentMethodSystem       = "system"
)

// TransactionMetadata is a string-valued key/value bag stored as JSONB.
type TransactionMetadata map[string]string

// Value implements driver.Valuer.
func (m TransactionMetadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *TransactionMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("unsupported metadata column type")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, m)
}

// Transaction is an append-only ledger entry for a balance-affecting event.
// Rows are never updated or deleted once stored.
type Transaction struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	InvestmentID *uint       `gorm:"index" json:"investment_id"`
	Investment   *Investment `gorm:"foreignKey:InvestmentID" json:"investment,omitempty"`

	Type        string          `gorm:"not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	Status      string          `gorm:"default:'pending'" json:"status"`
	Description string          `gorm:"not null" json:"description"`

	// Assigned exactly once, at creation, when not supplied by the caller.
	Reference string `gorm:"uniqueIndex;not null" json:"reference"`

	PaymentMethod string              `gorm:"not null" json:"payment_method"`
	Metadata      TransactionMetadata `gorm:"type:jsonb" json:"metadata,omitempty"`
}

// BeforeCreate assigns a reference when the caller did not supply one.
// Uniqueness is enforced by the index, not pre-checked; callers treat a
// duplicate-key failure as retryable.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Reference == "" {
		ref, err := NewTransactionReference()
		if err != nil {
			return err
		}
		t.Reference = ref
	}
	return nil
}

// ValidTransactionType reports whether t is a known ledger entry type.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeInterest,
		TransactionTypeReferralBonus, TransactionTypeInvestment:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodCrypto, PaymentMethodSystem:
		return true
	}
	return false
}

// EarnsTowardTotal reports whether the entry type counts toward the user's
// cumulative earnings.
func EarnsTowardTotal(t string) bool {
	return t == TransactionTypeInterest || t == TransactionTypeReferralBonus
}
