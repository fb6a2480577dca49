package controllers

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
)

// CreateTransactionRequest represents the transaction creation request body
type CreateTransactionRequest struct {
	Type          string                     `json:"type" binding:"required"`
	Amount        decimal.Decimal            `json:"amount" binding:"required"`
	Description   string                     `json:"description" binding:"required"`
	PaymentMethod string                     `json:"payment_method" binding:"required"`
	InvestmentID  *uint                      `json:"investment_id"`
	Reference     string                     `json:"reference"`
	Metadata      models.TransactionMetadata `json:"metadata"`
}

// CreateTransaction appends a ledger record for the authenticated user
func CreateTransaction(c *gin.Context) {
	utils.LogInfo("CreateTransaction called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid transaction request body for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request format", "Type, amount, description, and payment method are required")
		return
	}

	if req.InvestmentID != nil {
		var investment models.Investment
		if err := config.DB.First(&investment, *req.InvestmentID).Error; err != nil {
			utils.LogError("Linked investment not found - ID: %d", *req.InvestmentID)
			utils.NotFound(c, "Investment not found")
			return
		}
		if !utils.CanAccessResource(&user, investment.UserID) {
			utils.LogError("User %d attempted to link transaction to investment %d owned by user %d", user.ID, investment.ID, investment.UserID)
			utils.Forbidden(c, "Not authorized to link this investment")
			return
		}
	}

	transaction, err := utils.RecordTransaction(config.DB, utils.LedgerEntry{
		UserID:        user.ID,
		Type:          req.Type,
		Amount:        req.Amount,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		InvestmentID:  req.InvestmentID,
		Reference:     req.Reference,
		Metadata:      req.Metadata,
	})
	if err != nil {
		utils.LogError("Failed to record transaction for user ID: %d: %v", user.ID, err)
		utils.RespondWithError(c, err)
		return
	}
	utils.LogInfo("Transaction recorded - ID: %d, reference: %s", transaction.ID, transaction.Reference)

	utils.Created(c, "Transaction created successfully", gin.H{"transaction": transaction})
}

// ListTransactions returns the authenticated user's ledger entries
func ListTransactions(c *gin.Context) {
	utils.LogInfo("ListTransactions called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Transaction{}).Where("user_id = ?", user.ID)
	if txType := c.Query("type"); txType != "" {
		query = query.Where("type = ?", txType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count transactions for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching transactions", nil)
		return
	}

	var transactions []models.Transaction
	if err := query.Preload("Investment").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Error fetching transactions", nil)
		return
	}
	utils.LogInfo("Retrieved %d transactions for user ID: %d", len(transactions), user.ID)

	utils.SuccessWithPagination(c, "Transactions retrieved successfully", gin.H{"transactions": transactions}, total, page, limit)
}

// GetTransaction returns a single ledger entry owned by the caller (admins
// may read any)
func GetTransaction(c *gin.Context) {
	utils.LogInfo("GetTransaction called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	transactionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid transaction ID: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid transaction ID", nil)
		return
	}

	var transaction models.Transaction
	if err := config.DB.Preload("Investment").First(&transaction, transactionID).Error; err != nil {
		utils.LogError("Transaction not found - ID: %d", transactionID)
		utils.NotFound(c, "Transaction not found")
		return
	}

	if !utils.CanAccessResource(&user, transaction.UserID) {
		utils.LogError("User %d attempted to access transaction %d owned by user %d", user.ID, transaction.ID, transaction.UserID)
		utils.Forbidden(c, "Not authorized to access this transaction")
		return
	}

	utils.Success(c, "Transaction retrieved successfully", gin.H{"transaction": transaction})
}
