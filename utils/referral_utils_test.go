package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/supergidii/Loans/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Investment{},
		&models.Transaction{},
		&models.Referral{},
		&models.DepositOrder{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func bonusTransactionCount(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeReferralBonus).
		Count(&count).Error)
	return count
}

func TestCompleteReferralPaysCommissionOnce(t *testing.T) {
	db := newTestDB(t)
	referrer := createTestUser(t, db, "referrer")
	referred := createTestUser(t, db, "referred")

	referral := models.Referral{
		ReferrerID:     referrer.ID,
		ReferredID:     referred.ID,
		Status:         models.ReferralStatusPending,
		CommissionRate: 5,
	}
	referral.CalculateCommission(decimal.NewFromInt(1000))
	require.NoError(t, db.Create(&referral).Error)
	require.True(t, referral.Commission.Equal(decimal.NewFromInt(50)))

	require.NoError(t, CompleteReferral(db, &referral))

	assert.Equal(t, models.ReferralStatusCompleted, referral.Status)
	assert.Equal(t, models.ReferralPaymentPaid, referral.PaymentStatus)
	assert.NotNil(t, referral.PaymentDate)

	var stored models.Referral
	require.NoError(t, db.First(&stored, referral.ID).Error)
	assert.Equal(t, models.ReferralStatusCompleted, stored.Status)
	assert.Equal(t, models.ReferralPaymentPaid, stored.PaymentStatus)

	var paid models.User
	require.NoError(t, db.First(&paid, referrer.ID).Error)
	assert.True(t, paid.WalletBalance.Equal(decimal.NewFromInt(50)),
		"wallet balance = %s, want 50", paid.WalletBalance)
	assert.True(t, paid.ReferralEarnings.Equal(decimal.NewFromInt(50)),
		"referral earnings = %s, want 50", paid.ReferralEarnings)
	assert.True(t, paid.TotalEarnings.Equal(decimal.NewFromInt(50)),
		"total earnings = %s, want 50", paid.TotalEarnings)
	assert.EqualValues(t, 1, bonusTransactionCount(t, db, referrer.ID))

	// A repeated completion settles nothing.
	err := CompleteReferral(db, &stored)
	require.Error(t, err)
	assert.True(t, IsConflictError(err))

	require.NoError(t, db.First(&paid, referrer.ID).Error)
	assert.True(t, paid.WalletBalance.Equal(decimal.NewFromInt(50)),
		"wallet balance after repeat = %s, want 50", paid.WalletBalance)
	assert.True(t, paid.TotalEarnings.Equal(decimal.NewFromInt(50)),
		"total earnings after repeat = %s, want 50", paid.TotalEarnings)
	assert.EqualValues(t, 1, bonusTransactionCount(t, db, referrer.ID))
}

func TestCompleteReferralRejectsCancelled(t *testing.T) {
	db := newTestDB(t)
	referrer := createTestUser(t, db, "referrer")
	referred := createTestUser(t, db, "referred")

	referral := models.Referral{
		ReferrerID:     referrer.ID,
		ReferredID:     referred.ID,
		Status:         models.ReferralStatusCancelled,
		CommissionRate: 5,
	}
	referral.CalculateCommission(decimal.NewFromInt(1000))
	require.NoError(t, db.Create(&referral).Error)

	err := CompleteReferral(db, &referral)
	require.Error(t, err)
	assert.True(t, IsConflictError(err))

	var untouched models.User
	require.NoError(t, db.First(&untouched, referrer.ID).Error)
	assert.True(t, untouched.WalletBalance.IsZero(),
		"wallet balance = %s, want 0", untouched.WalletBalance)
	assert.EqualValues(t, 0, bonusTransactionCount(t, db, referrer.ID))
}

func TestCreateReferralForInvestment(t *testing.T) {
	db := newTestDB(t)
	referrer := createTestUser(t, db, "referrer")
	investor := createTestUser(t, db, "investor")

	investment := models.Investment{
		UserID:   investor.ID,
		Amount:   decimal.NewFromInt(2500),
		Duration: 8,
	}
	require.NoError(t, db.Create(&investment).Error)

	referral, err := CreateReferralForInvestment(db, &investment, referrer.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, models.ReferralStatusPending, referral.Status)
	assert.True(t, referral.Commission.Equal(decimal.NewFromInt(50)),
		"commission = %s, want 50", referral.Commission)
	require.NotNil(t, referral.InvestmentID)
	assert.Equal(t, investment.ID, *referral.InvestmentID)

	_, err = CreateReferralForInvestment(db, &investment, referrer.ID, 101)
	require.Error(t, err)
}
