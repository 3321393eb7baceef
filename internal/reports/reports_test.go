package reports

import (
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larder/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Purchase{},
		&models.Sale{},
		&models.Shift{},
		&models.Loan{},
		&models.Expense{},
	).Error)

	return NewService(db)
}

func TestSummarize(t *testing.T) {
	svc := newTestService(t)
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, svc.db.Create(&models.Sale{ItemName: "Burger", Quantity: 10, UnitPrice: 10, Total: 100, SoldAt: day}).Error)
	require.NoError(t, svc.db.Create(&models.Sale{ItemName: "Fries", Quantity: 5, UnitPrice: 4, Total: 20, SoldAt: day}).Error)
	require.NoError(t, svc.db.Create(&models.Purchase{ItemName: "Beef", Quantity: 10, UnitCost: 3, PurchasedAt: day}).Error)
	require.NoError(t, svc.db.Create(&models.Shift{Employee: "Dana", Hours: 8, HourlyRate: 5, WorkedOn: day}).Error)
	require.NoError(t, svc.db.Create(&models.Expense{Category: "rent", Amount: 15, IncurredAt: day}).Error)
	require.NoError(t, svc.db.Create(&models.Loan{Lender: "Bank", Principal: 1000, MonthlyPayment: 50, StartDate: day.AddDate(0, -6, 0)}).Error)

	// Outside the window; must not count.
	require.NoError(t, svc.db.Create(&models.Sale{ItemName: "Burger", Quantity: 1, UnitPrice: 10, Total: 10, SoldAt: day.AddDate(0, -2, 0)}).Error)

	from := day.AddDate(0, 0, -7)
	to := day.AddDate(0, 0, 1)
	summary, err := svc.Summarize(from, to)
	require.NoError(t, err)

	assert.Equal(t, 120.0, summary.Revenue)
	assert.Equal(t, 30.0, summary.FoodCost)
	assert.Equal(t, 40.0, summary.LaborCost)
	assert.Equal(t, 15.0, summary.Expenses)
	assert.Equal(t, 50.0, summary.LoanPayments)

	assert.InDelta(t, 25.0, summary.FoodCostPct, 1e-9)
	assert.InDelta(t, 33.333333, summary.LaborCostPct, 1e-4)
	assert.InDelta(t, 58.333333, summary.PrimeCostPct, 1e-4)

	require.Len(t, summary.ItemSales, 2)
	assert.Equal(t, "Burger", summary.ItemSales[0].ItemName, "ordered by revenue")
	assert.Equal(t, 100.0, summary.ItemSales[0].Revenue)
}

func TestSummarizeEmptyWindow(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.Summarize(time.Now().AddDate(0, 0, -7), time.Now())
	require.NoError(t, err)

	assert.Zero(t, summary.Revenue)
	assert.Zero(t, summary.PrimeCostPct)
	assert.Empty(t, summary.ItemSales)
}

func TestAverageUnitCost(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.db.Create(&models.Purchase{ItemName: "Chicken", Quantity: 1, UnitCost: 2, PurchasedAt: time.Now()}).Error)
	require.NoError(t, svc.db.Create(&models.Purchase{ItemName: "Chicken", Quantity: 1, UnitCost: 4, PurchasedAt: time.Now()}).Error)

	avg, ok, err := svc.AverageUnitCost("Chicken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3.0, avg)

	_, ok, err = svc.AverageUnitCost("Unknown")
	require.NoError(t, err)
	assert.False(t, ok, "no purchase history")
}
