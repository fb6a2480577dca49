package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supergidii/Loans/models"
)

func TestSettleDepositCreditsWalletOnce(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "depositor")

	order := models.DepositOrder{
		UserID:          user.ID,
		RazorpayOrderID: "order_test_1",
		Amount:          decimal.NewFromInt(250),
		Status:          models.TransactionStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)

	metadata := models.TransactionMetadata{
		"razorpay_order_id":   "order_test_1",
		"razorpay_payment_id": "pay_test_1",
	}

	transaction, err := SettleDeposit(db, &order, metadata)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionTypeDeposit, transaction.Type)
	assert.Equal(t, models.TransactionStatusCompleted, transaction.Status)
	assert.Equal(t, models.TransactionStatusCompleted, order.Status)

	var credited models.User
	require.NoError(t, db.First(&credited, user.ID).Error)
	assert.True(t, credited.WalletBalance.Equal(decimal.NewFromInt(250)),
		"wallet balance = %s, want 250", credited.WalletBalance)
	// Deposits fund the wallet but are not earnings.
	assert.True(t, credited.TotalEarnings.IsZero(),
		"total earnings = %s, want 0", credited.TotalEarnings)

	// A second settlement of the same order is a conflict, not a second credit.
	_, err = SettleDeposit(db, &order, metadata)
	require.Error(t, err)
	assert.True(t, IsConflictError(err))

	require.NoError(t, db.First(&credited, user.ID).Error)
	assert.True(t, credited.WalletBalance.Equal(decimal.NewFromInt(250)),
		"wallet balance after repeat = %s, want 250", credited.WalletBalance)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", user.ID, models.TransactionTypeDeposit).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
