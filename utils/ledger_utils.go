package utils

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/supergidii/Loans/models"
)

// LedgerEntry carries the inputs for a new ledger transaction.
type LedgerEntry struct {
	UserID        uint
	Type          string
	Amount        decimal.Decimal
	Status        string
	Description   string
	PaymentMethod string
	InvestmentID  *uint
	Reference     string
	Metadata      models.TransactionMetadata
}

// RecordTransaction appends an immutable ledger record. The insert and the
// earnings update for interest/referral_bonus entries run in one database
// transaction so the cached total can never drift from the ledger.
//
// When the reference was generated here and collides with an existing one,
// the write is retried with a fresh reference; a caller-supplied reference
// that collides is a conflict.
func RecordTransaction(db *gorm.DB, entry LedgerEntry) (*models.Transaction, error) {
	if !models.ValidTransactionType(entry.Type) {
		return nil, BadRequestError("Invalid transaction type", nil)
	}
	if !models.ValidPaymentMethod(entry.PaymentMethod) {
		return nil, BadRequestError("Invalid payment method", nil)
	}
	if !IsNonNegative(entry.Amount) {
		return nil, BadRequestError("Transaction amount cannot be negative", nil)
	}
	if entry.Description == "" {
		return nil, BadRequestError("Please provide a transaction description", nil)
	}

	callerReference := entry.Reference != ""
	attempts := MaxReferenceRetries
	if callerReference {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		reference := entry.Reference
		if !callerReference {
			ref, err := models.NewTransactionReference()
			if err != nil {
				return nil, err
			}
			reference = ref
		}

		transaction := models.Transaction{
			UserID:        entry.UserID,
			InvestmentID:  entry.InvestmentID,
			Type:          entry.Type,
			Amount:        entry.Amount,
			Status:        entry.Status,
			Description:   entry.Description,
			Reference:     reference,
			PaymentMethod: entry.PaymentMethod,
			Metadata:      entry.Metadata,
		}
		if transaction.Status == "" {
			transaction.Status = models.TransactionStatusPending
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&transaction).Error; err != nil {
				return err
			}
			if models.EarnsTowardTotal(entry.Type) {
				result := tx.Model(&models.User{}).
					Where("id = ?", entry.UserID).
					UpdateColumn("total_earnings", gorm.Expr("total_earnings + ?", entry.Amount))
				if result.Error != nil {
					return result.Error
				}
				if result.RowsAffected == 0 {
					return NotFoundError("User not found", nil)
				}
			}
			return nil
		})
		if err == nil {
			return &transaction, nil
		}

		if IsDuplicateKeyError(err) {
			if callerReference {
				return nil, ConflictError("Transaction reference already exists", err)
			}
			lastErr = err
			continue
		}
		return nil, err
	}

	return nil, ConflictError("Failed to generate a unique transaction reference", lastErr)
}
