package controllers

import (
	"os"
	"strconv"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
)

// GetSettings returns the platform configuration an admin may review (admin)
func GetSettings(c *gin.Context) {
	utils.LogInfo("GetSettings called")

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Failed to load configuration: %v", err)
		utils.InternalServerError(c, "Error loading settings", nil)
		return
	}

	utils.Success(c, "Settings retrieved successfully", gin.H{
		"settings": gin.H{
			"referral_commission_rate": cfg.ReferralCommissionRate,
			"ledger_on_invest":         cfg.LedgerOnInvest,
			"maintenance_mode":         cfg.MaintenanceMode,
			"investment": gin.H{
				"min_amount":            models.MinInvestmentAmount,
				"max_amount":            models.MaxInvestmentAmount,
				"durations":             models.InvestmentDurations,
				"min_interest_rate":     models.MinInterestRate,
				"max_interest_rate":     models.MaxInterestRate,
				"default_interest_rate": models.DefaultInterestRate,
			},
		},
	})
}

// UpdateSettings changes the runtime-adjustable settings (admin). Settings
// live in the environment, so changes apply to this process only and reset
// on restart.
func UpdateSettings(c *gin.Context) {
	utils.LogInfo("UpdateSettings called")

	var req struct {
		ReferralCommissionRate *int  `json:"referral_commission_rate"`
		LedgerOnInvest         *bool `json:"ledger_on_invest"`
		MaintenanceMode        *bool `json:"maintenance_mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid settings request body: %v", err)
		utils.BadRequest(c, "Invalid request format", nil)
		return
	}
	if req.ReferralCommissionRate == nil && req.LedgerOnInvest == nil && req.MaintenanceMode == nil {
		utils.BadRequest(c, "No editable settings provided", nil)
		return
	}

	if req.ReferralCommissionRate != nil {
		if !utils.ValidRate(*req.ReferralCommissionRate) {
			utils.LogError("Invalid referral commission rate: %d", *req.ReferralCommissionRate)
			utils.BadRequest(c, "Referral commission rate must be between 0 and 100", nil)
			return
		}
		os.Setenv("REFERRAL_COMMISSION_RATE", strconv.Itoa(*req.ReferralCommissionRate))
		utils.LogInfo("Referral commission rate set to %d", *req.ReferralCommissionRate)
	}
	if req.LedgerOnInvest != nil {
		os.Setenv("LEDGER_ON_INVEST", strconv.FormatBool(*req.LedgerOnInvest))
		utils.LogInfo("Ledger on invest set to %t", *req.LedgerOnInvest)
	}
	if req.MaintenanceMode != nil {
		os.Setenv("MAINTENANCE_MODE", strconv.FormatBool(*req.MaintenanceMode))
		utils.LogInfo("Maintenance mode set to %t", *req.MaintenanceMode)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Failed to reload configuration: %v", err)
		utils.InternalServerError(c, "Error reloading settings", nil)
		return
	}

	utils.Success(c, utils.MsgUpdateSuccess, gin.H{
		"settings": gin.H{
			"referral_commission_rate": cfg.ReferralCommissionRate,
			"ledger_on_invest":         cfg.LedgerOnInvest,
			"maintenance_mode":         cfg.MaintenanceMode,
		},
	})
}
