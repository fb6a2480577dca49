package controllers

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
)

// GetMyReferrals returns the referrals where the caller is the referrer
func GetMyReferrals(c *gin.Context) {
	utils.LogInfo("GetMyReferrals called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	var referrals []models.Referral
	if err := config.DB.Where("referrer_id = ?", user.ID).
		Preload("Referred").Preload("Investment").
		Order("created_at DESC").
		Find(&referrals).Error; err != nil {
		utils.LogError("Failed to fetch referrals for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching referrals", nil)
		return
	}
	utils.LogInfo("Retrieved %d referrals for user ID: %d", len(referrals), user.ID)

	utils.Success(c, "Referrals retrieved successfully", gin.H{
		"count":     len(referrals),
		"referrals": referrals,
	})
}

// GetReferralStats aggregates the caller's referral totals live from the
// referrals table rather than reading the cached counters
func GetReferralStats(c *gin.Context) {
	utils.LogInfo("GetReferralStats called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	var stats struct {
		TotalReferrals  int64           `json:"total_referrals"`
		TotalEarnings   decimal.Decimal `json:"total_earnings"`
		ActiveReferrals int64           `json:"active_referrals"`
	}
	err := config.DB.Model(&models.Referral{}).
		Select("COUNT(*) AS total_referrals, COALESCE(SUM(commission), 0) AS total_earnings, COUNT(*) FILTER (WHERE status = 'active') AS active_referrals").
		Where("referrer_id = ? AND status IN ?", user.ID, []string{models.ReferralStatusActive, models.ReferralStatusCompleted}).
		Scan(&stats).Error
	if err != nil {
		utils.LogError("Failed to aggregate referral stats for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching referral statistics", nil)
		return
	}

	utils.Success(c, "Referral statistics retrieved successfully", gin.H{"stats": stats})
}

// GenerateUserReferralCode ensures the caller has a referral code and
// returns it
func GenerateUserReferralCode(c *gin.Context) {
	utils.LogInfo("GenerateUserReferralCode called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	if user.ReferralCode == "" {
		code, err := models.NewReferralCode()
		if err != nil {
			utils.LogError("Failed to generate referral code for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to generate referral code", nil)
			return
		}
		user.ReferralCode = code
		if err := config.DB.Model(&user).UpdateColumn("referral_code", code).Error; err != nil {
			utils.LogError("Failed to store referral code for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to generate referral code", nil)
			return
		}
		utils.LogInfo("Generated referral code for user ID: %d", user.ID)
	}

	utils.Success(c, "Referral code retrieved successfully", gin.H{"code": user.ReferralCode})
}

// GetReferral returns a single referral visible to its referrer or an admin
func GetReferral(c *gin.Context) {
	utils.LogInfo("GetReferral called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	referralID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid referral ID: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid referral ID", nil)
		return
	}

	var referral models.Referral
	if err := config.DB.Preload("Referrer").Preload("Referred").Preload("Investment").
		First(&referral, referralID).Error; err != nil {
		utils.LogError("Referral not found - ID: %d", referralID)
		utils.NotFound(c, "Referral not found")
		return
	}

	if !utils.CanAccessResource(&user, referral.ReferrerID) {
		utils.LogError("User %d attempted to access referral %d owned by user %d", user.ID, referral.ID, referral.ReferrerID)
		utils.Forbidden(c, "Not authorized to access this referral")
		return
	}

	utils.Success(c, "Referral retrieved successfully", gin.H{"referral": referral})
}
