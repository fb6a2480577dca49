package controllers

import (
	"strconv"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetUsers lists registered users with optional search (admin)
func GetUsers(c *gin.Context) {
	utils.LogInfo("GetUsers called")

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Error fetching users", nil)
		return
	}

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Error fetching users", nil)
		return
	}
	utils.LogInfo("Retrieved %d users", len(users))

	utils.SuccessWithPagination(c, "Users retrieved successfully", gin.H{
		"users": users,
	}, total, page, limit)
}

// GetUserDetails returns one user with referral and investment context (admin)
func GetUserDetails(c *gin.Context) {
	utils.LogInfo("GetUserDetails called")

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid user ID: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid user ID", nil)
		return
	}

	var user models.User
	if err := config.DB.Preload("Referrer").First(&user, userID).Error; err != nil {
		utils.LogError("User not found - ID: %d", userID)
		utils.NotFound(c, "User not found")
		return
	}

	var investments []models.Investment
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&investments).Error; err != nil {
		utils.LogError("Failed to fetch investments for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching user details", nil)
		return
	}

	utils.Success(c, "User retrieved successfully", gin.H{
		"user":        user,
		"investments": investments,
	})
}

// UpdateUserRequest limits which fields an admin may change on a user
type UpdateUserRequest struct {
	Role          *string          `json:"role"`
	IsVerified    *bool            `json:"is_verified"`
	IsBlocked     *bool            `json:"is_blocked"`
	WalletBalance *decimal.Decimal `json:"wallet_balance"`
}

// UpdateUser applies an admin edit to a user. Only role, verification,
// blocked flag, and wallet balance are editable.
func UpdateUser(c *gin.Context) {
	utils.LogInfo("UpdateUser called")

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid user ID: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid user ID", nil)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid update request body: %v", err)
		utils.BadRequest(c, "Invalid request format", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.LogError("User not found - ID: %d", userID)
		utils.NotFound(c, "User not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Role != nil {
		if *req.Role != models.RoleUser && *req.Role != models.RoleAdmin {
			utils.LogError("Invalid role: %s", *req.Role)
			utils.BadRequest(c, "Invalid role", nil)
			return
		}
		updates["role"] = *req.Role
	}
	if req.IsVerified != nil {
		updates["is_verified"] = *req.IsVerified
	}
	if req.IsBlocked != nil {
		updates["is_blocked"] = *req.IsBlocked
	}
	if req.WalletBalance != nil {
		if req.WalletBalance.Sign() < 0 {
			utils.LogError("Negative wallet balance rejected for user %d", user.ID)
			utils.BadRequest(c, "Wallet balance cannot be negative", nil)
			return
		}
		updates["wallet_balance"] = *req.WalletBalance
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "No editable fields provided", nil)
		return
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error updating user", nil)
		return
	}
	utils.LogInfo("User %d updated by admin", user.ID)

	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"user": user})
}
