package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"larder/internal/importer"
)

// CSV import handlers. The body is the raw CSV; see internal/importer
// for the expected columns.

func (b *BackOffice) ImportPurchases(c *gin.Context) {
	purchases, err := importer.ReadPurchases(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// All rows land in one transaction so a mid-file failure inserts nothing.
	tx := b.DB.Begin()
	for i := range purchases {
		if err := tx.Create(&purchases[i]).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	b.Hub.Broadcast("purchases_imported", gin.H{"count": len(purchases)})
	c.JSON(http.StatusCreated, gin.H{"imported": len(purchases)})
}

func (b *BackOffice) ImportSales(c *gin.Context) {
	sales, err := importer.ReadSales(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// All rows land in one transaction so a mid-file failure inserts nothing.
	tx := b.DB.Begin()
	for i := range sales {
		if err := tx.Create(&sales[i]).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	b.Hub.Broadcast("sales_imported", gin.H{"count": len(sales)})
	c.JSON(http.StatusCreated, gin.H{"imported": len(sales)})
}
