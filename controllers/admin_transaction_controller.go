package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

// GetAllTransactions lists ledger entries across all users (admin)
func GetAllTransactions(c *gin.Context) {
	utils.LogInfo("GetAllTransactions called")

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Transaction{})
	if txnType := c.Query("type"); txnType != "" {
		if !models.ValidTransactionType(txnType) {
			utils.LogError("Invalid transaction type filter: %s", txnType)
			utils.BadRequest(c, "Invalid transaction type", nil)
			return
		}
		query = query.Where("type = ?", txnType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count transactions: %v", err)
		utils.InternalServerError(c, "Error fetching transactions", nil)
		return
	}

	var transactions []models.Transaction
	if err := query.Preload("User").Preload("Investment").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions: %v", err)
		utils.InternalServerError(c, "Error fetching transactions", nil)
		return
	}
	utils.LogInfo("Retrieved %d transactions", len(transactions))

	utils.SuccessWithPagination(c, "Transactions retrieved successfully", gin.H{
		"transactions": transactions,
	}, total, page, limit)
}

// ExportTransactionsExcel downloads the ledger for a period as a spreadsheet
// (admin)
func ExportTransactionsExcel(c *gin.Context) {
	utils.LogInfo("ExportTransactionsExcel called")

	period := c.DefaultQuery("period", "day")
	utils.LogDebug("Generating Excel export for period: %s", period)

	now := time.Now()
	var startDate, endDate time.Time
	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	case "week":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		startDate = endDate.AddDate(0, 0, -6)
		startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	case "month":
		startDate = now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		endDate = now.Add(24 * time.Hour)
	default:
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var transactions []models.Transaction
	if err := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("User").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch transactions", nil)
		return
	}
	utils.LogDebug("Retrieved %d transactions for Excel export", len(transactions))

	// Summary totals by direction
	var totalIn, totalOut decimal.Decimal
	userSet := make(map[uint]bool)
	for _, txn := range transactions {
		userSet[txn.UserID] = true
		if txn.Status != models.TransactionStatusCompleted {
			continue
		}
		switch txn.Type {
		case models.TransactionTypeDeposit, models.TransactionTypeInterest, models.TransactionTypeReferralBonus:
			totalIn = totalIn.Add(txn.Amount)
		case models.TransactionTypeWithdrawal, models.TransactionTypeInvestment:
			totalOut = totalOut.Add(txn.Amount)
		}
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(utils.AppName + " - Transaction Report")
	periodRow := sheet.AddRow()
	periodRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow()

	headers := []string{"Reference", "User ID", "Username", "Type", "Amount", "Status", "Payment Method", "Description", "Date"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, txn := range transactions {
		row := sheet.AddRow()
		row.AddCell().SetString(txn.Reference)
		row.AddCell().SetInt(int(txn.UserID))
		row.AddCell().SetString(txn.User.Username)
		row.AddCell().SetString(txn.Type)
		row.AddCell().SetString(utils.FormatAmount(txn.Amount))
		row.AddCell().SetString(txn.Status)
		row.AddCell().SetString(txn.PaymentMethod)
		row.AddCell().SetString(txn.Description)
		row.AddCell().SetString(txn.CreatedAt.Format("2006-01-02 15:04"))
	}

	sheet.AddRow()
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Transactions", fmt.Sprintf("%d", len(transactions))},
		{"Unique Users", fmt.Sprintf("%d", len(userSet))},
		{"Total Inflow", utils.FormatAmount(totalIn)},
		{"Total Outflow", utils.FormatAmount(totalOut)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transactions_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", nil)
		return
	}
	utils.LogInfo("Generated Excel export for period %s", period)
}
