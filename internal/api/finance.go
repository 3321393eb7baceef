package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"larder/internal/models"
)

// Loan handlers

func (b *BackOffice) ListLoans(c *gin.Context) {
	var loans []models.Loan
	if err := b.DB.Order("start_date").Find(&loans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (b *BackOffice) CreateLoan(c *gin.Context) {
	var loan models.Loan
	if err := c.ShouldBindJSON(&loan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if loan.Lender == "" || loan.Principal <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lender and a positive principal are required"})
		return
	}
	if loan.StartDate.IsZero() {
		loan.StartDate = time.Now()
	}

	if err := b.DB.Create(&loan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, loan)
}

func (b *BackOffice) DeleteLoan(c *gin.Context) {
	var loan models.Loan
	if err := b.DB.First(&loan, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
		return
	}
	if err := b.DB.Delete(&loan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Loan deleted"})
}

// Expense handlers

func (b *BackOffice) ListExpenses(c *gin.Context) {
	var expenses []models.Expense
	query := b.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("incurred_at DESC").Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (b *BackOffice) CreateExpense(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if expense.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a positive amount is required"})
		return
	}
	if expense.Category == "" {
		expense.Category = string(models.ExpenseOther)
	}
	if expense.IncurredAt.IsZero() {
		expense.IncurredAt = time.Now()
	}

	if err := b.DB.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (b *BackOffice) DeleteExpense(c *gin.Context) {
	var expense models.Expense
	if err := b.DB.First(&expense, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	if err := b.DB.Delete(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
