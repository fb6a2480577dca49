package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	razorpay "github.com/razorpay/razorpay-go"
)

// InitiateDeposit creates a Razorpay order to fund the wallet
func InitiateDeposit(c *gin.Context) {
	utils.LogInfo("InitiateDeposit called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	utils.LogInfo("Processing deposit request for user ID: %d", user.ID)

	var req struct {
		Amount decimal.Decimal `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request body for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. Amount is required and must be positive", err.Error())
		return
	}
	if req.Amount.Sign() <= 0 {
		utils.LogError("Non-positive deposit amount for user ID: %d", user.ID)
		utils.BadRequest(c, "Deposit amount must be positive", nil)
		return
	}
	utils.LogDebug("Received deposit request - User ID: %d, Amount: %s", user.ID, utils.FormatAmount(req.Amount))

	// Razorpay expects the amount in the smallest currency unit
	amountMinor := req.Amount.Mul(decimal.NewFromInt(100)).IntPart()

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	orderData := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        "USD",
		"receipt":         "deposit_" + strconv.FormatUint(uint64(user.ID), 10) + "_" + time.Now().Format("20060102150405"),
		"payment_capture": 1,
	}
	utils.LogDebug("Creating Razorpay order with data: %+v", orderData)

	rzOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create payment order", nil)
		return
	}
	utils.LogDebug("Created Razorpay order - Order ID: %v", rzOrder["id"])

	depositOrder := models.DepositOrder{
		UserID:          user.ID,
		RazorpayOrderID: fmt.Sprintf("%v", rzOrder["id"]),
		Amount:          req.Amount,
		Status:          models.TransactionStatusPending,
	}
	if err := config.DB.Create(&depositOrder).Error; err != nil {
		utils.LogError("Failed to record deposit order for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to record deposit order", nil)
		return
	}
	utils.LogInfo("Deposit order created - Order ID: %s", depositOrder.RazorpayOrderID)

	utils.Success(c, "Deposit order created successfully", gin.H{
		"razorpay_order_id": depositOrder.RazorpayOrderID,
		"amount":            utils.FormatAmount(req.Amount),
		"currency":          "USD",
		"key":               os.Getenv("RAZORPAY_KEY"),
		"user": gin.H{
			"name":  user.Username,
			"email": user.Email,
		},
	})
}

// VerifyDeposit verifies the Razorpay payment signature and credits the
// wallet. The ledger entry, the balance update, and the order status change
// run in one database transaction.
func VerifyDeposit(c *gin.Context) {
	utils.LogInfo("VerifyDeposit called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	utils.LogInfo("Processing deposit verification for user ID: %d", user.ID)

	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request body for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	utils.LogDebug("Received verification request - Order ID: %s, Payment ID: %s", req.RazorpayOrderID, req.RazorpayPaymentID)

	var depositOrder models.DepositOrder
	if err := config.DB.Where("razorpay_order_id = ? AND user_id = ?", req.RazorpayOrderID, user.ID).
		First(&depositOrder).Error; err != nil {
		utils.LogError("Deposit order not found - Order ID: %s: %v", req.RazorpayOrderID, err)
		utils.NotFound(c, "Deposit order not found")
		return
	}
	// Early answer for an already-settled order. The authoritative claim is
	// the conditional update inside SettleDeposit.
	if depositOrder.Status == models.TransactionStatusCompleted {
		utils.LogError("Deposit order already completed - Order ID: %s", req.RazorpayOrderID)
		utils.Conflict(c, "Deposit has already been processed", nil)
		return
	}

	keySecret := os.Getenv("RAZORPAY_SECRET")
	data := req.RazorpayOrderID + "|" + req.RazorpayPaymentID
	h := hmac.New(sha256.New, []byte(keySecret))
	h.Write([]byte(data))
	generatedSignature := hex.EncodeToString(h.Sum(nil))
	if !hmac.Equal([]byte(generatedSignature), []byte(req.RazorpaySignature)) {
		utils.LogError("Payment verification failed - Order ID: %s", req.RazorpayOrderID)
		utils.BadRequest(c, "Payment verification failed", gin.H{"retry": true})
		return
	}
	utils.LogDebug("Verified payment signature for order ID: %s", req.RazorpayOrderID)

	transaction, err := utils.SettleDeposit(config.DB, &depositOrder, models.TransactionMetadata{
		"razorpay_order_id":   req.RazorpayOrderID,
		"razorpay_payment_id": req.RazorpayPaymentID,
	})
	if err != nil {
		utils.LogError("Failed to complete deposit for order ID: %s: %v", req.RazorpayOrderID, err)
		utils.RespondWithError(c, err)
		return
	}

	var fresh models.User
	if err := config.DB.First(&fresh, user.ID).Error; err != nil {
		utils.LogError("Failed to reload user %d after deposit: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching wallet", nil)
		return
	}
	utils.LogInfo("Deposit completed for user ID: %d, amount: %s", user.ID, utils.FormatAmount(depositOrder.Amount))

	utils.Success(c, "Deposit completed successfully", gin.H{
		"amount_added":   utils.FormatAmount(depositOrder.Amount),
		"wallet_balance": utils.FormatAmount(fresh.WalletBalance),
		"transaction": gin.H{
			"id":        transaction.ID,
			"reference": transaction.Reference,
		},
	})
}
