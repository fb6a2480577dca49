package routes

import (
	"github.com/supergidii/Loans/controllers"
	"github.com/supergidii/Loans/middleware"
	"github.com/supergidii/Loans/models"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.Authorize(models.RoleAdmin))
	{
		admin.GET("/dashboard", controllers.GetDashboard)

		// User management
		admin.GET("/users", controllers.GetUsers)
		admin.GET("/users/:id", controllers.GetUserDetails)
		admin.PATCH("/users/:id", controllers.UpdateUser)

		// Investment management
		admin.GET("/investments", controllers.GetAllInvestments)
		admin.PATCH("/investments/:id/status", controllers.UpdateInvestmentStatus)

		// Referral management
		admin.GET("/referrals", controllers.GetAllReferrals)
		admin.PATCH("/referrals/:id/status", controllers.UpdateReferralStatus)

		// Transaction ledger
		admin.GET("/transactions", controllers.GetAllTransactions)
		admin.GET("/transactions/export", controllers.ExportTransactionsExcel)

		// Pairing management
		admin.GET("/pairings", controllers.GetAllPairings)
		admin.POST("/pairings", controllers.CreatePairing)
		admin.PATCH("/pairings/:id/status", controllers.UpdatePairingStatus)
		admin.DELETE("/pairings/:id", controllers.DeletePairing)

		// Platform settings
		admin.GET("/settings", controllers.GetSettings)
		admin.PATCH("/settings", controllers.UpdateSettings)
	}
}
