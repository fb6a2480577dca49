package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Pairing statuses
const (
	PairingStatusPending   = "pending"
	PairingStatusActive    = "active"
	PairingStatusCompleted = "completed"
	PairingStatusCancelled = "cancelled"
)

// Pairing types
const (
	PairingTypeInvestment = "investment"
	PairingTypeReferral   = "referral"
	PairingTypeManual     = "manual"
)

// ErrSelfPairing is returned when both sides of a pairing are the same user.
var ErrSelfPairing = errors.New("user1 and user2 cannot be the same user")

// PairedUser links two distinct users. The unique index keys on the stored
// order of (user1, user2, status); the creation handler checks both orders
// before inserting.
type PairedUser struct {
	gorm.Model
	User1ID uint `gorm:"not null;uniqueIndex:idx_pairing_pair_status" json:"user1_id"`
	User1   User `gorm:"foreignKey:User1ID" json:"user1,omitempty"`

	User2ID uint `gorm:"not null;uniqueIndex:idx_pairing_pair_status" json:"user2_id"`
	User2   User `gorm:"foreignKey:User2ID" json:"user2,omitempty"`

	Status string `gorm:"default:'pending';uniqueIndex:idx_pairing_pair_status" json:"status"`

	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	PairingType string `gorm:"not null" json:"pairing_type"`
	Notes       string `json:"notes"`

	CreatedByID uint `gorm:"not null" json:"created_by_id"`
	CreatedBy   User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`

	InvestmentID *uint       `gorm:"index" json:"investment_id"`
	Investment   *Investment `gorm:"foreignKey:InvestmentID" json:"investment,omitempty"`

	ReferralID *uint     `gorm:"index" json:"referral_id"`
	Referral   *Referral `gorm:"foreignKey:ReferralID" json:"referral,omitempty"`
}

// Validate rejects self-pairings and unknown pairing types.
func (p *PairedUser) Validate() error {
	if p.User1ID == p.User2ID {
		return ErrSelfPairing
	}
	if !ValidPairingType(p.PairingType) {
		return errors.New("invalid pairing type")
	}
	return nil
}

// BeforeCreate enforces pairing validity and stamps the start date.
func (p *PairedUser) BeforeCreate(tx *gorm.DB) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.StartDate.IsZero() {
		p.StartDate = time.Now()
	}
	return nil
}

// ValidPairingType reports whether t is a known pairing type.
func ValidPairingType(t string) bool {
	switch t {
	case PairingTypeInvestment, PairingTypeReferral, PairingTypeManual:
		return true
	}
	return false
}

// ValidPairingStatus reports whether s is a known pairing status.
func ValidPairingStatus(s string) bool {
	switch s {
	case PairingStatusPending, PairingStatusActive, PairingStatusCompleted, PairingStatusCancelled:
		return true
	}
	return false
}
