package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"larder/internal/models"
)

// Inventory handlers

func (b *BackOffice) ListInventory(c *gin.Context) {
	var items []models.InventoryItem
	query := b.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("name").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (b *BackOffice) CreateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if err := b.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (b *BackOffice) UpdateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := b.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}

	// Pointer fields keep absent keys distinct from explicit zeroes, so a
	// partial update never clears the on-hand quantity or min level.
	var updates struct {
		Name     *string
		Category *string
		Unit     *string
		Quantity *float64
		MinLevel *float64
		Notes    *string
	}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if updates.Name != nil {
		item.Name = *updates.Name
	}
	if updates.Category != nil {
		item.Category = *updates.Category
	}
	if updates.Unit != nil {
		item.Unit = *updates.Unit
	}
	if updates.Quantity != nil {
		item.Quantity = *updates.Quantity
	}
	if updates.MinLevel != nil {
		item.MinLevel = *updates.MinLevel
	}
	if updates.Notes != nil {
		item.Notes = *updates.Notes
	}

	if err := b.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (b *BackOffice) DeleteInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := b.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	if err := b.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}

// Purchase history handlers

func (b *BackOffice) ListPurchases(c *gin.Context) {
	var item models.InventoryItem
	if err := b.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}

	var purchases []models.Purchase
	if err := b.DB.Where("item_name = ?", item.Name).Order("purchased_at DESC").Find(&purchases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, purchases)
}

func (b *BackOffice) CreatePurchase(c *gin.Context) {
	var item models.InventoryItem
	if err := b.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}

	var purchase models.Purchase
	if err := c.ShouldBindJSON(&purchase); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	purchase.ItemName = item.Name
	if purchase.PurchasedAt.IsZero() {
		purchase.PurchasedAt = time.Now()
	}

	// The purchase row and the stock bump land together or not at all.
	tx := b.DB.Begin()
	if err := tx.Create(&purchase).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Received stock raises the on-hand quantity.
	item.Quantity += purchase.Quantity
	if err := tx.Save(&item).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	b.Hub.Broadcast("purchase_recorded", purchase)
	c.JSON(http.StatusCreated, purchase)
}
