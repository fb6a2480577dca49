package controllers

import (
	"time"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
)

// ForgotPassword issues a reset token and emails it to the user
func ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Forgot password failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", "A valid email is required")
		return
	}

	utils.LogInfo("Password reset requested for email: %s", req.Email)

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Password reset failed - User not found for email: %s", req.Email)
		utils.NotFound(c, "User not found")
		return
	}

	resetToken, err := utils.GenerateResetToken(&user)
	if err != nil {
		utils.LogError("Failed to generate reset token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to process reset request", nil)
		return
	}

	user.ResetPasswordToken = resetToken
	user.ResetPasswordExpire = time.Now().Add(time.Hour)
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to store reset token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to process reset request", nil)
		return
	}

	if err := utils.SendPasswordResetEmail(user.Email, resetToken); err != nil {
		utils.LogError("Failed to send reset email to %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to send password reset email", nil)
		return
	}
	utils.LogInfo("Password reset email sent to user ID: %d", user.ID)

	utils.Success(c, "Password reset email sent", nil)
}

// ResetPassword sets a new password from a valid reset token
func ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Password reset failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", "Password is required")
		return
	}

	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.LogError("Password reset failed - Invalid password: %s", msg)
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	var user models.User
	if err := config.DB.Where("reset_password_token = ? AND reset_password_expire > ?", token, time.Now()).First(&user).Error; err != nil {
		utils.LogError("Password reset failed - Invalid or expired token")
		utils.BadRequest(c, "Invalid or expired reset token", nil)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash new password for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	user.Password = hashedPassword
	user.ResetPasswordToken = ""
	user.ResetPasswordExpire = time.Time{}
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to save new password for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}
	utils.LogInfo("Password reset completed for user ID: %d", user.ID)

	utils.Success(c, utils.MsgPasswordReset, nil)
}
