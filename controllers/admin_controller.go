package controllers

import (
	"os"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
)

// CreateSampleAdmin seeds an admin account from the environment on startup.
func CreateSampleAdmin() error {
	utils.LogInfo("CreateSampleAdmin called")

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		utils.LogInfo("Admin credentials not configured, skipping admin seed")
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		utils.LogError("Failed to hash admin password: %v", err)
		return err
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	admin := models.User{
		Username:   username,
		Email:      email,
		Password:   hashedPassword,
		FirstName:  os.Getenv("ADMIN_FIRST_NAME"),
		LastName:   os.Getenv("ADMIN_LAST_NAME"),
		Role:       models.RoleAdmin,
		IsVerified: true,
	}

	if err := config.DB.FirstOrCreate(&admin, models.User{Email: admin.Email}).Error; err != nil {
		utils.LogError("Failed to create sample admin: %v", err)
		return err
	}
	utils.LogInfo("Sample admin ready: %s", admin.Email)
	return nil
}
