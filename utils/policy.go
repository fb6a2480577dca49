package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/supergidii/Loans/models"
)

// Authorization decisions live here so handlers never compare role strings
// inline.

// CurrentUser pulls the authenticated user set by the auth middleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}

// CanManagePlatform reports whether the user may perform admin operations.
func CanManagePlatform(u *models.User) bool {
	return u.IsAdmin()
}

// CanAccessResource reports whether the user owns the resource or may manage
// the platform.
func CanAccessResource(u *models.User, ownerID uint) bool {
	return u.ID == ownerID || CanManagePlatform(u)
}
