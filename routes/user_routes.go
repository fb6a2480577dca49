package routes

import (
	"github.com/supergidii/Loans/controllers"
	"github.com/supergidii/Loans/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all user-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)
	router.POST("/forgot-password", controllers.ForgotPassword)
	router.POST("/reset-password/:token", controllers.ResetPassword)

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.MaintenanceMiddleware(), middleware.AuthMiddleware())
	{
		protected.GET("/me", controllers.GetMe)

		// Investment operations
		protected.POST("/investments", controllers.CreateInvestment)
		protected.GET("/investments", controllers.ListInvestments)
		protected.GET("/investments/stats", controllers.GetInvestmentStats)
		protected.GET("/investments/:id", controllers.GetInvestment)
		protected.GET("/investments/:id/statement", controllers.DownloadInvestmentStatement)

		// Transaction ledger
		protected.POST("/transactions", controllers.CreateTransaction)
		protected.GET("/transactions", controllers.ListTransactions)
		protected.GET("/transactions/:id", controllers.GetTransaction)

		// Wallet
		protected.GET("/wallet", controllers.GetWallet)
		protected.GET("/wallet/transactions", controllers.GetWalletTransactions)
		protected.POST("/wallet/deposit", controllers.InitiateDeposit)
		protected.POST("/wallet/deposit/verify", controllers.VerifyDeposit)

		// Referrals
		protected.GET("/referrals", controllers.GetMyReferrals)
		protected.GET("/referrals/stats", controllers.GetReferralStats)
		protected.POST("/referrals/generate-code", controllers.GenerateUserReferralCode)
		protected.GET("/referrals/:id", controllers.GetReferral)

		// Pairings
		protected.GET("/pairings", controllers.GetMyPairings)
	}
}
