package controllers

import (
	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
)

// GetMyPairings returns the pairings where the caller sits on either side
func GetMyPairings(c *gin.Context) {
	utils.LogInfo("GetMyPairings called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	var pairings []models.PairedUser
	if err := config.DB.Where("user1_id = ? OR user2_id = ?", user.ID, user.ID).
		Preload("User1").Preload("User2").Preload("CreatedBy").
		Preload("Investment").Preload("Referral").
		Order("created_at DESC").
		Find(&pairings).Error; err != nil {
		utils.LogError("Failed to fetch pairings for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching pairings", nil)
		return
	}
	utils.LogInfo("Retrieved %d pairings for user ID: %d", len(pairings), user.ID)

	utils.Success(c, "Pairings retrieved successfully", gin.H{
		"count":    len(pairings),
		"pairings": pairings,
	})
}
