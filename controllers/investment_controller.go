package controllers

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
)

// CreateInvestmentRequest represents the investment creation request body
type CreateInvestmentRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Duration     int             `json:"duration" binding:"required"`
	InterestRate int             `json:"interest_rate"`
}

// CreateInvestment creates a new investment for the authenticated user
func CreateInvestment(c *gin.Context) {
	utils.LogInfo("CreateInvestment called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid investment request body for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request format", "Amount and duration are required")
		return
	}

	if req.InterestRate == 0 {
		req.InterestRate = models.DefaultInterestRate
	}

	if errs := utils.ValidateInvestmentInput(req.Amount, req.Duration, req.InterestRate); len(errs) > 0 {
		utils.LogError("Investment validation failed for user ID: %d: %v", user.ID, errs)
		utils.BadRequest(c, "Invalid investment", errs)
		return
	}
	utils.LogDebug("Creating investment - User ID: %d, Amount: %s, Duration: %d days", user.ID, req.Amount.StringFixed(2), req.Duration)

	investment := models.Investment{
		UserID:       user.ID,
		Amount:       req.Amount,
		Duration:     req.Duration,
		InterestRate: req.InterestRate,
		Status:       models.InvestmentStatusPending,
		ReferredBy:   user.ReferredBy,
	}

	if err := config.DB.Create(&investment).Error; err != nil {
		utils.LogError("Failed to create investment for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error creating investment", nil)
		return
	}
	utils.LogInfo("Investment created - ID: %d, expected return: %s", investment.ID, investment.ExpectedReturn.StringFixed(2))

	// Derived-state update on the owner. Lost updates here are consistency
	// warnings, never request failures.
	if err := config.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		UpdateColumn("total_invested", gorm.Expr("total_invested + ?", investment.Amount)).Error; err != nil {
		utils.LogConsistencyWarning("update total_invested after investment create", err)
	}

	// A referred investor materializes the referral relationship with the
	// configured commission precomputed from this investment.
	if user.ReferredBy != nil {
		cfg, _ := config.LoadConfig()
		if _, err := utils.CreateReferralForInvestment(config.DB, &investment, *user.ReferredBy, cfg.ReferralCommissionRate); err != nil {
			utils.LogConsistencyWarning("create referral for investment", err)
		} else {
			utils.LogInfo("Referral created for investment ID: %d, referrer ID: %d", investment.ID, *user.ReferredBy)
		}
	}

	// Historically the investment route wrote no ledger entry while the
	// generic transaction endpoint did. The flag opts into the unified
	// behavior.
	if cfg, _ := config.LoadConfig(); cfg.LedgerOnInvest {
		if _, err := utils.RecordTransaction(config.DB, utils.LedgerEntry{
			UserID:        user.ID,
			Type:          models.TransactionTypeInvestment,
			Amount:        investment.Amount,
			Status:        models.TransactionStatusCompleted,
			Description:   fmt.Sprintf("Investment in %d-day plan", investment.Duration),
			PaymentMethod: models.PaymentMethodSystem,
			InvestmentID:  &investment.ID,
		}); err != nil {
			utils.LogConsistencyWarning("record investment ledger entry", err)
		}
	}

	utils.Created(c, "Investment created successfully", gin.H{"investment": investment})
}

// ListInvestments returns the authenticated user's investments
func ListInvestments(c *gin.Context) {
	utils.LogInfo("ListInvestments called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	var total int64
	if err := config.DB.Model(&models.Investment{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		utils.LogError("Failed to count investments for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching investments", nil)
		return
	}

	var investments []models.Investment
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&investments).Error; err != nil {
		utils.LogError("Failed to fetch investments for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching investments", nil)
		return
	}
	utils.LogInfo("Retrieved %d investments for user ID: %d", len(investments), user.ID)

	utils.SuccessWithPagination(c, "Investments retrieved successfully", gin.H{"investments": investments}, total, page, limit)
}

// GetInvestment returns a single investment owned by the caller (admins may
// read any)
func GetInvestment(c *gin.Context) {
	utils.LogInfo("GetInvestment called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	investmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid investment ID: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid investment ID", nil)
		return
	}

	var investment models.Investment
	if err := config.DB.First(&investment, investmentID).Error; err != nil {
		utils.LogError("Investment not found - ID: %d", investmentID)
		utils.NotFound(c, "Investment not found")
		return
	}

	if !utils.CanAccessResource(&user, investment.UserID) {
		utils.LogError("User %d attempted to access investment %d owned by user %d", user.ID, investment.ID, investment.UserID)
		utils.Forbidden(c, "Not authorized to access this investment")
		return
	}

	utils.Success(c, "Investment retrieved successfully", gin.H{"investment": investment})
}

// GetInvestmentStats returns live aggregates over the caller's active
// investments
func GetInvestmentStats(c *gin.Context) {
	utils.LogInfo("GetInvestmentStats called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	var stats struct {
		TotalInvested decimal.Decimal `json:"total_invested"`
		TotalEarnings decimal.Decimal `json:"total_earnings"`
		Count         int64           `json:"count"`
	}
	err := config.DB.Model(&models.Investment{}).
		Select("COALESCE(SUM(amount), 0) AS total_invested, COALESCE(SUM(expected_return), 0) AS total_earnings, COUNT(*) AS count").
		Where("user_id = ? AND status = ?", user.ID, models.InvestmentStatusActive).
		Scan(&stats).Error
	if err != nil {
		utils.LogError("Failed to aggregate investment stats for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching investment statistics", nil)
		return
	}

	utils.Success(c, "Investment statistics retrieved successfully", gin.H{"stats": stats})
}
