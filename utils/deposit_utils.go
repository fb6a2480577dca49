package utils

import (
	"gorm.io/gorm"

	"github.com/supergidii/Loans/models"
)

// SettleDeposit marks a deposit order completed and credits the wallet. The
// order claim, the deposit ledger entry and the balance update commit or roll
// back together.
//
// The order row is claimed with a conditional update, so two concurrent
// verifications of the same order settle it exactly once: the loser sees zero
// rows affected and gets a conflict instead of a second wallet credit.
func SettleDeposit(db *gorm.DB, order *models.DepositOrder, metadata models.TransactionMetadata) (*models.Transaction, error) {
	var transaction *models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		claim := tx.Model(&models.DepositOrder{}).
			Where("id = ? AND status <> ?", order.ID, models.TransactionStatusCompleted).
			UpdateColumn("status", models.TransactionStatusCompleted)
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return ConflictError("Deposit has already been processed", nil)
		}
		order.Status = models.TransactionStatusCompleted

		var err error
		transaction, err = RecordTransaction(tx, LedgerEntry{
			UserID:        order.UserID,
			Type:          models.TransactionTypeDeposit,
			Amount:        order.Amount,
			Status:        models.TransactionStatusCompleted,
			Description:   "Wallet deposit via Razorpay",
			PaymentMethod: models.PaymentMethodBankTransfer,
			Metadata:      metadata,
		})
		if err != nil {
			return err
		}

		result := tx.Model(&models.User{}).
			Where("id = ?", order.UserID).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", order.Amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return NotFoundError("User not found", nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}
