package controllers

import (
	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetDashboard returns platform-wide statistics for the admin overview
func GetDashboard(c *gin.Context) {
	utils.LogInfo("GetDashboard called")

	var totalUsers int64
	if err := config.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Error fetching dashboard data", nil)
		return
	}

	var totalInvestments int64
	if err := config.DB.Model(&models.Investment{}).Count(&totalInvestments).Error; err != nil {
		utils.LogError("Failed to count investments: %v", err)
		utils.InternalServerError(c, "Error fetching dashboard data", nil)
		return
	}

	var activeInvestments int64
	if err := config.DB.Model(&models.Investment{}).
		Where("status = ?", models.InvestmentStatusActive).
		Count(&activeInvestments).Error; err != nil {
		utils.LogError("Failed to count active investments: %v", err)
		utils.InternalServerError(c, "Error fetching dashboard data", nil)
		return
	}

	// Revenue here means the principal of completed investments
	var revenue struct {
		Total decimal.NullDecimal
	}
	if err := config.DB.Model(&models.Investment{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("status = ?", models.InvestmentStatusCompleted).
		Scan(&revenue).Error; err != nil {
		utils.LogError("Failed to compute revenue: %v", err)
		utils.InternalServerError(c, "Error fetching dashboard data", nil)
		return
	}
	totalRevenue := decimal.Zero
	if revenue.Total.Valid {
		totalRevenue = revenue.Total.Decimal
	}

	var totalReferrals int64
	if err := config.DB.Model(&models.Referral{}).Count(&totalReferrals).Error; err != nil {
		utils.LogError("Failed to count referrals: %v", err)
		utils.InternalServerError(c, "Error fetching dashboard data", nil)
		return
	}

	var activePairings int64
	if err := config.DB.Model(&models.PairedUser{}).
		Where("status = ?", models.PairingStatusActive).
		Count(&activePairings).Error; err != nil {
		utils.LogError("Failed to count active pairings: %v", err)
		utils.InternalServerError(c, "Error fetching dashboard data", nil)
		return
	}

	var recentUsers []models.User
	if err := config.DB.Order("created_at DESC").Limit(5).Find(&recentUsers).Error; err != nil {
		utils.LogError("Failed to fetch recent users: %v", err)
		utils.InternalServerError(c, "Error fetching dashboard data", nil)
		return
	}

	var recentInvestments []models.Investment
	if err := config.DB.Preload("User").Order("created_at DESC").Limit(5).
		Find(&recentInvestments).Error; err != nil {
		utils.LogError("Failed to fetch recent investments: %v", err)
		utils.InternalServerError(c, "Error fetching dashboard data", nil)
		return
	}
	utils.LogInfo("Dashboard data assembled")

	utils.Success(c, "Dashboard data retrieved successfully", gin.H{
		"stats": gin.H{
			"total_users":        totalUsers,
			"total_investments":  totalInvestments,
			"active_investments": activeInvestments,
			"total_revenue":      totalRevenue,
			"total_referrals":    totalReferrals,
			"active_pairings":    activePairings,
		},
		"recent_users":       recentUsers,
		"recent_investments": recentInvestments,
	})
}
