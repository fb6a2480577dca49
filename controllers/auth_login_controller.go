package controllers

import (
	"time"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
)

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginUser handles user login
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Login attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", "Email and password are required")
		return
	}

	utils.LogInfo("Login attempt for email: %s", req.Email)

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login attempt failed - User not found for email: %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login attempt failed - Invalid password for email: %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if user.IsBlocked {
		utils.LogError("Login attempt by blocked user: %d", user.ID)
		utils.Forbidden(c, utils.ErrUserBlocked)
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error logging in", nil)
		return
	}

	user.LastLoginAt = time.Now()
	if err := config.DB.Model(&user).UpdateColumn("last_login_at", user.LastLoginAt).Error; err != nil {
		utils.LogError("Failed to update last login for user ID: %d: %v", user.ID, err)
	}
	utils.LogInfo("User %d logged in successfully", user.ID)

	utils.Success(c, utils.MsgLoginSuccess, gin.H{
		"token": token,
		"user":  user,
	})
}

// GetMe returns the authenticated user's profile
func GetMe(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	// Re-read so the stat blocks reflect any side effects since login
	var fresh models.User
	if err := config.DB.First(&fresh, user.ID).Error; err != nil {
		utils.LogError("Failed to load user ID: %d: %v", user.ID, err)
		utils.NotFound(c, "User not found")
		return
	}

	utils.Success(c, "User retrieved successfully", gin.H{"user": fresh})
}
