package controllers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/supergidii/Loans/config"
	"github.com/supergidii/Loans/models"
	"github.com/supergidii/Loans/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadInvestmentStatement generates a PDF statement for one investment,
// including its ledger entries.
func DownloadInvestmentStatement(c *gin.Context) {
	utils.LogInfo("DownloadInvestmentStatement called")
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}

	investmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid investment ID format: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid investment ID", nil)
		return
	}
	utils.LogInfo("Generating statement for investment ID: %d", investmentID)

	var investment models.Investment
	if err := config.DB.Preload("User").First(&investment, investmentID).Error; err != nil {
		utils.LogError("Investment not found - ID: %d", investmentID)
		utils.NotFound(c, "Investment not found")
		return
	}
	if !utils.CanAccessResource(&user, investment.UserID) {
		utils.LogError("User %d denied statement for investment %d", user.ID, investment.ID)
		utils.Forbidden(c, utils.ErrForbidden)
		return
	}

	var transactions []models.Transaction
	if err := config.DB.Where("investment_id = ?", investment.ID).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions for investment %d: %v", investment.ID, err)
		utils.InternalServerError(c, "Error generating statement", nil)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, utils.AppName)
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Investment Platform")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVESTMENT STATEMENT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Investment ID: "+strconv.Itoa(int(investment.ID)))
	pdf.Cell(70, 8, "Created: "+investment.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Status: "+investment.Status)
	pdf.Cell(70, 8, "Holder: "+investment.User.Username)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Terms")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, "Amount: "+utils.FormatAmount(investment.Amount))
	pdf.Ln(6)
	pdf.Cell(100, 8, "Duration: "+strconv.Itoa(investment.Duration)+" days")
	pdf.Ln(6)
	pdf.Cell(100, 8, "Expected Return: "+utils.FormatAmount(investment.ExpectedReturn))
	pdf.Ln(6)
	pdf.Cell(100, 8, "Start Date: "+investment.StartDate.Format("2006-01-02"))
	pdf.Ln(6)
	pdf.Cell(100, 8, "End Date: "+investment.EndDate.Format("2006-01-02"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(45, 8, "Reference", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Type", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Status", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Date", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	for _, txn := range transactions {
		pdf.CellFormat(45, 8, txn.Reference, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, txn.Type, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, utils.FormatAmount(txn.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, txn.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, txn.CreatedAt.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	if len(transactions) == 0 {
		pdf.CellFormat(170, 8, "No ledger entries recorded for this investment", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	_ = pdf.Output(&buf)
	utils.LogInfo("Statement generated for investment ID: %d", investment.ID)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=investment_statement.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
