package middleware

import (
	"net/http"

	"github.com/supergidii/Loans/config"
	"github.com/gin-gonic/gin"
)

// MaintenanceMiddleware refuses user traffic while maintenance mode is on.
// Admin routes stay reachable so the mode can be switched back off.
func MaintenanceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := config.LoadConfig()
		if err == nil && cfg.MaintenanceMode {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Platform is under maintenance"})
			c.Abort()
			return
		}
		c.Next()
	}
}
