package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
)

// GetAllPairings returns every pairing (admin)
func GetAllPairings(c *gin.Context) {
	utils.LogInfo("GetAllPairings called")

	var pairings []models.PairedUser
	if err := config.DB.Preload("User1").Preload("User2").Preload("CreatedBy").
		Preload("Investment").Preload("Referral").
		Order("created_at DESC").
		Find(&pairings).Error; err != nil {
		utils.LogError("Failed to fetch pairings: %v", err)
		utils.InternalServerError(c, "Error fetching pairings", nil)
		return
	}
	utils.LogInfo("Retrieved %d pairings", len(pairings))

	utils.Success(c, "Pairings retrieved successfully", gin.H{
		"count":    len(pairings),
		"pairings": pairings,
	})
}

// CreatePairingRequest represents the pairing creation request body
type CreatePairingRequest struct {
	User1ID      uint   `json:"user1_id" binding:"required"`
	User2ID      uint   `json:"user2_id" binding:"required"`
	PairingType  string `json:"pairing_type" binding:"required"`
	Notes        string `json:"notes"`
	InvestmentID *uint  `json:"investment_id"`
	ReferralID   *uint  `json:"referral_id"`
}

// CreatePairing links two users (admin). At most one pending or active
// pairing may exist for an unordered pair, so both stored orders are
// checked before inserting.
func CreatePairing(c *gin.Context) {
	utils.LogInfo("CreatePairing called")
	admin, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	var req CreatePairingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid pairing request body: %v", err)
		utils.BadRequest(c, "Invalid request format", "User1 ID, user2 ID, and pairing type are required")
		return
	}

	if req.User1ID == req.User2ID {
		utils.LogError("Self-pairing rejected for user ID: %d", req.User1ID)
		utils.BadRequest(c, "User1 and User2 cannot be the same user", nil)
		return
	}
	if !models.ValidPairingType(req.PairingType) {
		utils.LogError("Invalid pairing type: %s", req.PairingType)
		utils.BadRequest(c, "Invalid pairing type", nil)
		return
	}

	var user1, user2 models.User
	if err := config.DB.First(&user1, req.User1ID).Error; err != nil {
		utils.LogError("Pairing user1 not found - ID: %d", req.User1ID)
		utils.NotFound(c, "One or both users not found")
		return
	}
	if err := config.DB.First(&user2, req.User2ID).Error; err != nil {
		utils.LogError("Pairing user2 not found - ID: %d", req.User2ID)
		utils.NotFound(c, "One or both users not found")
		return
	}

	// Uniqueness holds for the unordered pair while pending or active
	var existing models.PairedUser
	err := config.DB.Where(
		"((user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)) AND status IN ?",
		req.User1ID, req.User2ID, req.User2ID, req.User1ID,
		[]string{models.PairingStatusPending, models.PairingStatusActive},
	).First(&existing).Error
	if err == nil {
		utils.LogError("Duplicate pairing rejected for users %d and %d", req.User1ID, req.User2ID)
		utils.Conflict(c, "Users are already paired", nil)
		return
	}

	pairing := models.PairedUser{
		User1ID:      req.User1ID,
		User2ID:      req.User2ID,
		Status:       models.PairingStatusPending,
		PairingType:  req.PairingType,
		Notes:        req.Notes,
		CreatedByID:  admin.ID,
		InvestmentID: req.InvestmentID,
		ReferralID:   req.ReferralID,
	}

	if err := config.DB.Create(&pairing).Error; err != nil {
		if errors.Is(err, models.ErrSelfPairing) {
			utils.BadRequest(c, "User1 and User2 cannot be the same user", nil)
			return
		}
		if utils.IsDuplicateKeyError(err) {
			utils.LogError("Pairing uniqueness violation for users %d and %d", req.User1ID, req.User2ID)
			utils.Conflict(c, "Users are already paired", nil)
			return
		}
		utils.LogError("Failed to create pairing: %v", err)
		utils.InternalServerError(c, "Error creating pairing", nil)
		return
	}
	utils.LogInfo("Pairing created - ID: %d, users %d and %d", pairing.ID, req.User1ID, req.User2ID)

	// Both members are told about the pairing; mail failures never fail
	// the request.
	if err := utils.SendPairingNotification(user1.Email, user1.Username, user2.Username); err != nil {
		utils.LogError("Failed to send pairing notification to %s: %v", user1.Email, err)
	}
	if err := utils.SendPairingNotification(user2.Email, user2.Username, user1.Username); err != nil {
		utils.LogError("Failed to send pairing notification to %s: %v", user2.Email, err)
	}

	utils.Created(c, "Pairing created successfully", gin.H{"pairing": pairing})
}

// UpdatePairingStatus changes a pairing's status (admin)
func UpdatePairingStatus(c *gin.Context) {
	utils.LogInfo("UpdatePairingStatus called")

	pairingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid pairing ID: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid pairing ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid status request body: %v", err)
		utils.BadRequest(c, "Invalid request format", "Status is required")
		return
	}
	if !models.ValidPairingStatus(req.Status) {
		utils.LogError("Invalid pairing status: %s", req.Status)
		utils.BadRequest(c, "Invalid status", nil)
		return
	}

	var pairing models.PairedUser
	if err := config.DB.First(&pairing, pairingID).Error; err != nil {
		utils.LogError("Pairing not found - ID: %d", pairingID)
		utils.NotFound(c, "Pairing not found")
		return
	}

	pairing.Status = req.Status
	if req.Notes != "" {
		pairing.Notes = req.Notes
	}
	if req.Status == models.PairingStatusCompleted || req.Status == models.PairingStatusCancelled {
		now := time.Now()
		pairing.EndDate = &now
	}

	if err := config.DB.Save(&pairing).Error; err != nil {
		utils.LogError("Failed to update pairing %d: %v", pairing.ID, err)
		utils.InternalServerError(c, "Error updating pairing", nil)
		return
	}
	utils.LogInfo("Pairing %d status updated to %s", pairing.ID, req.Status)

	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"pairing": pairing})
}

// DeletePairing removes a pairing (admin)
func DeletePairing(c *gin.Context) {
	utils.LogInfo("DeletePairing called")

	pairingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid pairing ID: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid pairing ID", nil)
		return
	}

	var pairing models.PairedUser
	if err := config.DB.First(&pairing, pairingID).Error; err != nil {
		utils.LogError("Pairing not found - ID: %d", pairingID)
		utils.NotFound(c, "Pairing not found")
		return
	}

	if err := config.DB.Delete(&pairing).Error; err != nil {
		utils.LogError("Failed to delete pairing %d: %v", pairing.ID, err)
		utils.InternalServerError(c, "Error deleting pairing", nil)
		return
	}
	utils.LogInfo("Pairing %d deleted", pairing.ID)

	utils.Success(c, utils.MsgDeleteSuccess, gin.H{})
}
