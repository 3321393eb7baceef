// Package api exposes the back-office REST surface.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"larder/internal/allocator"
	"larder/internal/insights"
	"larder/internal/monitoring"
	"larder/internal/reports"
)

// BackOffice represents the main API handler for the back office
type BackOffice struct {
	Router   *gin.Engine
	DB       *gorm.DB
	Reports  *reports.Service
	Advisor  *allocator.Advisor
	Insights *insights.Service
	Monitor  *monitoring.Monitor
	Hub      *Hub

	// DefaultTargetFoodCostPct fills in recipe builds that omit a target.
	DefaultTargetFoodCostPct float64
	// ReportWindowDays is the default lookback for reports and insights.
	ReportWindowDays int
}

// NewBackOffice creates a new back-office API instance
func NewBackOffice(db *gorm.DB, advisor *allocator.Advisor, insightSvc *insights.Service, monitor *monitoring.Monitor) *BackOffice {
	router := gin.Default()
	router.Use(monitoring.GinMiddleware())

	b := &BackOffice{
		Router:   router,
		DB:       db,
		Reports:  reports.NewService(db),
		Advisor:  advisor,
		Insights: insightSvc,
		Monitor:  monitor,
		Hub:      NewHub(),

		DefaultTargetFoodCostPct: 30,
		ReportWindowDays:         30,
	}

	b.setupRoutes()
	return b
}

// setupRoutes configures all API endpoints
func (b *BackOffice) setupRoutes() {
	// Health check
	b.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Larder API is running"})
	})

	// Live event feed
	b.Router.GET("/ws", b.handleWebSocket)

	v1 := b.Router.Group("/api/v1")
	{
		// Inventory and purchase history
		v1.GET("/inventory", b.ListInventory)
		v1.POST("/inventory", b.CreateInventoryItem)
		v1.PUT("/inventory/:id", b.UpdateInventoryItem)
		v1.DELETE("/inventory/:id", b.DeleteInventoryItem)
		v1.GET("/inventory/:id/purchases", b.ListPurchases)
		v1.POST("/inventory/:id/purchases", b.CreatePurchase)

		// Sales
		v1.GET("/sales", b.ListSales)
		v1.POST("/sales", b.CreateSale)
		v1.DELETE("/sales/:id", b.DeleteSale)

		// Labor
		v1.GET("/labor", b.ListShifts)
		v1.POST("/labor", b.CreateShift)
		v1.DELETE("/labor/:id", b.DeleteShift)

		// Loans and expenses
		v1.GET("/loans", b.ListLoans)
		v1.POST("/loans", b.CreateLoan)
		v1.DELETE("/loans/:id", b.DeleteLoan)
		v1.GET("/expenses", b.ListExpenses)
		v1.POST("/expenses", b.CreateExpense)
		v1.DELETE("/expenses/:id", b.DeleteExpense)

		// Recipes and budget builds
		v1.GET("/recipes", b.ListRecipes)
		v1.POST("/recipes", b.CreateRecipe)
		v1.GET("/recipes/:id", b.GetRecipe)
		v1.PUT("/recipes/:id", b.UpdateRecipe)
		v1.DELETE("/recipes/:id", b.DeleteRecipe)
		v1.POST("/recipes/build", b.BuildRecipe)

		// Reporting
		v1.GET("/reports/sales", b.GetSalesReport)
		v1.GET("/insights", b.GetInsights)
		v1.GET("/metrics", b.GetMetricsSnapshot)

		// CSV import
		v1.POST("/import/purchases", b.ImportPurchases)
		v1.POST("/import/sales", b.ImportSales)
	}
}
