package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"larder/internal/models"
)

// Sales handlers

func (b *BackOffice) ListSales(c *gin.Context) {
	var sales []models.Sale
	query := b.DB
	if item := c.Query("item"); item != "" {
		query = query.Where("item_name = ?", item)
	}
	if err := query.Order("sold_at DESC").Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (b *BackOffice) CreateSale(c *gin.Context) {
	var sale models.Sale
	if err := c.ShouldBindJSON(&sale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if sale.ItemName == "" || sale.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_name and a positive quantity are required"})
		return
	}
	if sale.Total == 0 {
		sale.Total = sale.Quantity * sale.UnitPrice
	}
	if sale.SoldAt.IsZero() {
		sale.SoldAt = time.Now()
	}

	if err := b.DB.Create(&sale).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	b.Hub.Broadcast("sale_recorded", sale)
	c.JSON(http.StatusCreated, sale)
}

func (b *BackOffice) DeleteSale(c *gin.Context) {
	var sale models.Sale
	if err := b.DB.First(&sale, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	if err := b.DB.Delete(&sale).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted"})
}

// Labor handlers

func (b *BackOffice) ListShifts(c *gin.Context) {
	var shifts []models.Shift
	query := b.DB
	if employee := c.Query("employee"); employee != "" {
		query = query.Where("employee = ?", employee)
	}
	if err := query.Order("worked_on DESC").Find(&shifts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, shifts)
}

func (b *BackOffice) CreateShift(c *gin.Context) {
	var shift models.Shift
	if err := c.ShouldBindJSON(&shift); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if shift.Employee == "" || shift.Hours <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee and positive hours are required"})
		return
	}
	if shift.WorkedOn.IsZero() {
		shift.WorkedOn = time.Now()
	}

	if err := b.DB.Create(&shift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, shift)
}

func (b *BackOffice) DeleteShift(c *gin.Context) {
	var shift models.Shift
	if err := b.DB.First(&shift, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		return
	}
	if err := b.DB.Delete(&shift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted"})
}
