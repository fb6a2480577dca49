package utils

import (
	"time"

	"gorm.io/gorm"

	"github.com/supergidii/Loans/models"
)

// ApplyReferralStatusEffects applies the referrer-side stat updates for a
// referral that was just persisted with a new status. This is the explicit
// coordinator for what used to be a hidden on-save hook: the referral's own
// save is already complete when this runs.
//
// Counters move via database-side increments, so two referrals completing
// concurrently can never lose an update.
func ApplyReferralStatusEffects(db *gorm.DB, referral *models.Referral) error {
	switch referral.Status {
	case models.ReferralStatusActive:
		return db.Model(&models.User{}).
			Where("id = ?", referral.ReferrerID).
			UpdateColumns(map[string]interface{}{
				"active_referrals": gorm.Expr("active_referrals + 1"),
				"total_referrals":  gorm.Expr("total_referrals + 1"),
			}).Error
	case models.ReferralStatusCompleted:
		return db.Model(&models.User{}).
			Where("id = ?", referral.ReferrerID).
			UpdateColumn("referral_earnings", gorm.Expr("referral_earnings + ?", referral.Commission)).Error
	}
	return nil
}

// CompleteReferral marks a referral completed and pays the commission out.
// The status change, the payment bookkeeping, the referrer's wallet credit,
// the referral_bonus ledger entry and the stat update all commit or roll
// back together.
//
// The commission is paid at most once: only a pending or active referral can
// be claimed for payout, so a repeated completion (or completing a cancelled
// referral) is a conflict, not a second payment.
func CompleteReferral(db *gorm.DB, referral *models.Referral) error {
	return db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		claim := tx.Model(&models.Referral{}).
			Where("id = ? AND status IN ?", referral.ID,
				[]string{models.ReferralStatusPending, models.ReferralStatusActive}).
			Updates(map[string]interface{}{
				"status":         models.ReferralStatusCompleted,
				"payment_status": models.ReferralPaymentPaid,
				"payment_date":   now,
			})
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return ConflictError("Referral commission has already been settled or the referral is not payable", nil)
		}

		referral.Status = models.ReferralStatusCompleted
		referral.PaymentStatus = models.ReferralPaymentPaid
		referral.PaymentDate = &now

		result := tx.Model(&models.User{}).
			Where("id = ?", referral.ReferrerID).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", referral.Commission))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return NotFoundError("Referrer not found", nil)
		}

		if _, err := RecordTransaction(tx, LedgerEntry{
			UserID:        referral.ReferrerID,
			Type:          models.TransactionTypeReferralBonus,
			Amount:        referral.Commission,
			Status:        models.TransactionStatusCompleted,
			Description:   "Referral commission payout",
			PaymentMethod: models.PaymentMethodSystem,
			InvestmentID:  referral.InvestmentID,
		}); err != nil {
			return err
		}

		return ApplyReferralStatusEffects(tx, referral)
	})
}

// CreateReferralForInvestment materializes the referrer -> investor
// relationship when a referred user funds an investment. The commission is
// derived once, from the investment amount and the configured rate.
func CreateReferralForInvestment(db *gorm.DB, investment *models.Investment, referrerID uint, commissionRate int) (*models.Referral, error) {
	if !ValidRate(commissionRate) {
		return nil, BadRequestError("Invalid commission rate", nil)
	}

	referral := models.Referral{
		ReferrerID:     referrerID,
		ReferredID:     investment.UserID,
		Status:         models.ReferralStatusPending,
		CommissionRate: commissionRate,
		InvestmentID:   &investment.ID,
	}
	referral.CalculateCommission(investment.Amount)

	if err := db.Create(&referral).Error; err != nil {
		return nil, err
	}
	return &referral, nil
}
