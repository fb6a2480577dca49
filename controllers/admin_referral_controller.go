package controllers

import (
	"strconv"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
)

// GetAllReferrals returns every referral with both sides resolved (admin)
func GetAllReferrals(c *gin.Context) {
	utils.LogInfo("GetAllReferrals called")

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Referral{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count referrals: %v", err)
		utils.InternalServerError(c, "Error fetching referrals", nil)
		return
	}

	var referrals []models.Referral
	if err := query.Preload("Referrer").Preload("Referred").Preload("Investment").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&referrals).Error; err != nil {
		utils.LogError("Failed to fetch referrals: %v", err)
		utils.InternalServerError(c, "Error fetching referrals", nil)
		return
	}
	utils.LogInfo("Retrieved %d referrals", len(referrals))

	utils.SuccessWithPagination(c, "Referrals retrieved successfully", gin.H{"referrals": referrals}, total, page, limit)
}

// UpdateReferralStatus changes a referral's status (admin). Completion pays
// the commission into the referrer's wallet and writes the referral_bonus
// ledger entry in one transaction.
func UpdateReferralStatus(c *gin.Context) {
	utils.LogInfo("UpdateReferralStatus called")

	referralID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid referral ID: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid referral ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid status request body: %v", err)
		utils.BadRequest(c, "Invalid request format", "Status is required")
		return
	}
	if !models.ValidReferralStatus(req.Status) {
		utils.LogError("Invalid referral status: %s", req.Status)
		utils.BadRequest(c, "Invalid status", nil)
		return
	}

	var referral models.Referral
	if err := config.DB.First(&referral, referralID).Error; err != nil {
		utils.LogError("Referral not found - ID: %d", referralID)
		utils.NotFound(c, "Referral not found")
		return
	}

	previousStatus := referral.Status

	if req.Status == models.ReferralStatusCompleted {
		if err := utils.CompleteReferral(config.DB, &referral); err != nil {
			utils.LogError("Failed to complete referral %d: %v", referral.ID, err)
			utils.RespondWithError(c, err)
			return
		}
		utils.LogInfo("Referral %d completed, commission %s paid to user %d", referral.ID, referral.Commission.StringFixed(2), referral.ReferrerID)
	} else {
		referral.Status = req.Status
		if err := config.DB.Save(&referral).Error; err != nil {
			utils.LogError("Failed to update referral %d status: %v", referral.ID, err)
			utils.InternalServerError(c, "Error updating referral", nil)
			return
		}
		utils.LogInfo("Referral %d status changed: %s -> %s", referral.ID, previousStatus, req.Status)

		// The referral's own save is complete; a lost counter update is a
		// consistency warning, not a request failure.
		if err := utils.ApplyReferralStatusEffects(config.DB, &referral); err != nil {
			utils.LogConsistencyWarning("apply referral status effects", err)
		}
	}

	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"referral": referral})
}
