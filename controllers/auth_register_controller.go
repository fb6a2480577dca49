package controllers

import (
	"time"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	ReferralCode string `json:"referral_code"`
}

// RegisterUser handles user registration
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", "Please check your input data and ensure all required fields are provided correctly.")
		return
	}

	utils.LogInfo("Registration attempt for email: %s, username: %s", req.Email, req.Username)

	if valid, msg := utils.ValidateUsername(req.Username); !valid {
		utils.LogError("Registration attempt failed - Invalid username: %s - %s", req.Username, msg)
		utils.BadRequest(c, "Invalid username", msg)
		return
	}
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.LogError("Registration attempt failed - Invalid email: %s - %s", req.Email, msg)
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.LogError("Registration attempt failed - Invalid password for email: %s - %s", req.Email, msg)
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if valid, msg := utils.ValidateName(req.FirstName); !valid {
		utils.LogError("Registration attempt failed - Invalid first name: %s - %s", req.FirstName, msg)
		utils.BadRequest(c, "Invalid first name", msg)
		return
	}
	if valid, msg := utils.ValidateName(req.LastName); !valid {
		utils.LogError("Registration attempt failed - Invalid last name: %s - %s", req.LastName, msg)
		utils.BadRequest(c, "Invalid last name", msg)
		return
	}

	// Check for existing email or username
	var existing models.User
	if err := config.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		if existing.Email == req.Email {
			utils.LogError("Registration attempt failed - Email already exists: %s", req.Email)
			utils.Conflict(c, "User with this email already exists", nil)
		} else {
			utils.LogError("Registration attempt failed - Username already taken: %s", req.Username)
			utils.Conflict(c, "Username is already taken", nil)
		}
		return
	}

	// Resolve the referrer when a code was supplied. An unknown code is not
	// fatal; the user simply registers without a referrer.
	var referredBy *uint
	if req.ReferralCode != "" {
		var referrer models.User
		if err := config.DB.Where("referral_code = ?", req.ReferralCode).First(&referrer).Error; err == nil {
			referredBy = &referrer.ID
			utils.LogInfo("Referrer found for code %s: user ID %d", req.ReferralCode, referrer.ID)
		} else {
			utils.LogDebug("No referrer found for code: %s", req.ReferralCode)
		}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password for email: %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	// The referral code is assigned by the model's create hook.
	user := models.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    hashedPassword,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        models.RoleUser,
		ReferredBy:  referredBy,
		LastLoginAt: time.Now(),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			utils.LogError("Registration attempt failed - Duplicate entry for email: %s", req.Email)
			utils.Conflict(c, "User with this email or username already exists", nil)
			return
		}
		utils.LogError("Failed to create user for email: %s: %v", req.Email, err)
		utils.InternalServerError(c, "Error registering user", nil)
		return
	}
	utils.LogInfo("User created successfully - ID: %d, referral code: %s", user.ID, user.ReferralCode)

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error registering user", nil)
		return
	}

	utils.Created(c, utils.MsgRegisterSuccess, gin.H{
		"token": token,
		"user":  user,
	})
}
