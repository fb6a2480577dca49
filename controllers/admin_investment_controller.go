package controllers

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
)

// GetAllInvestments returns every investment with its owner (admin)
func GetAllInvestments(c *gin.Context) {
	utils.LogInfo("GetAllInvestments called")

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Investment{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count investments: %v", err)
		utils.InternalServerError(c, "Error fetching investments", nil)
		return
	}

	var investments []models.Investment
	if err := query.Preload("User").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&investments).Error; err != nil {
		utils.LogError("Failed to fetch investments: %v", err)
		utils.InternalServerError(c, "Error fetching investments", nil)
		return
	}
	utils.LogInfo("Retrieved %d investments", len(investments))

	utils.SuccessWithPagination(c, "Investments retrieved successfully", gin.H{"investments": investments}, total, page, limit)
}

// UpdateInvestmentStatus advances an investment through its lifecycle (admin)
func UpdateInvestmentStatus(c *gin.Context) {
	utils.LogInfo("UpdateInvestmentStatus called")

	investmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid investment ID: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid investment ID", nil)
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

	var investment models.Investment
	if err := config.DB.First(&investment, investmentID).Error; err != nil {
		utils.LogError("Investment not found - ID: %d", investmentID)
		utils.NotFound(c, "Investment not found")
		return
	}

	if err := utils.CanTransitionInvestment(&investment, req.Status); err != nil {
		utils.LogError("Rejected transition for investment %d: %s -> %s", investment.ID, investment.Status, req.Status)
		utils.RespondWithError(c, err)
		return
	}

	previousStatus := investment.Status
	investment.Status = req.Status

	// Status is the only mutable field; the financial fields stay as they
	// were derived at creation.
	if err := config.DB.Model(&investment).UpdateColumn("status", req.Status).Error; err != nil {
		utils.LogError("Failed to update investment %d status: %v", investment.ID, err)
		utils.InternalServerError(c, "Error updating investment", nil)
		return
	}
	utils.LogInfo("Investment %d status changed: %s -> %s", investment.ID, previousStatus, req.Status)

	// Keep the owner's active-investment counter in step. Lost updates are
	// consistency warnings, never request failures.
	var delta string
	switch {
	case req.Status == models.InvestmentStatusActive:
		delta = "active_investments + 1"
	case previousStatus == models.InvestmentStatusActive:
		delta = "active_investments - 1"
	}
	if delta != "" {
		if err := config.DB.Model(&models.User{}).
			Where("id = ?", investment.UserID).
			UpdateColumn("active_investments", gorm.Expr(delta)).Error; err != nil {
			utils.LogConsistencyWarning("update active_investments after status change", err)
		}
	}

	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"investment": investment})
}
