package controllers

import (
	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
)

// GetWallet returns the authenticated user's wallet summary.
func GetWallet(c *gin.Context) {
	utils.LogInfo("GetWallet called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	// Reload so the balance reflects any concurrent credits
	var fresh models.User
	if err := config.DB.First(&fresh, user.ID).Error; err != nil {
		utils.LogError("Failed to reload user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching wallet", nil)
		return
	}

	utils.Success(c, "Wallet retrieved successfully", gin.H{
		"wallet": gin.H{
			"balance":  fresh.WalletBalance,
			"currency": fresh.WalletCurrency,
		},
		"total_earnings":      fresh.TotalEarnings,
		"total_invested":      fresh.TotalInvested,
		"referral_earnings":   fresh.ReferralEarnings,
		"investment_earnings": fresh.InvestmentEarnings,
	})
}

// GetWalletTransactions lists the user's ledger entries that move money in
// or out of the wallet.
func GetWalletTransactions(c *gin.Context) {
	utils.LogInfo("GetWalletTransactions called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	walletTypes := []string{
		models.TransactionTypeDeposit,
		models.TransactionTypeWithdrawal,
		models.TransactionTypeInterest,
		models.TransactionTypeReferralBonus,
	}

	var total int64
	query := config.DB.Model(&models.Transaction{}).
		Where("user_id = ? AND type IN ?", user.ID, walletTypes)
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count wallet transactions for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching transactions", nil)
		return
	}

	var transactions []models.Transaction
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch wallet transactions for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching transactions", nil)
		return
	}
	utils.LogInfo("Retrieved %d wallet transactions for user %d", len(transactions), user.ID)

	utils.SuccessWithPagination(c, "Transactions retrieved successfully", gin.H{
		"transactions": transactions,
	}, total, page, limit)
}
