// Package reports aggregates sales, labor, and cost figures for the
// back-office dashboard and the insights generator.
package reports

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"larder/internal/models"
)

// Service runs reporting queries against the back-office database
type Service struct {
	db *gorm.DB
}

// NewService creates a reporting service over the given database handle
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ItemSale is the sales total for one menu item over a period
type ItemSale struct {
	ItemName     string  `json:"item_name"`
	QuantitySold float64 `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// Summary aggregates one reporting window. LoanPayments is the monthly
// obligation of loans active at the end of the window, not a prorated
// figure.
type Summary struct {
	From         time.Time  `json:"from"`
	To           time.Time  `json:"to"`
	Revenue      float64    `json:"revenue"`
	ItemSales    []ItemSale `json:"item_sales"`
	FoodCost     float64    `json:"food_cost"`
	LaborCost    float64    `json:"labor_cost"`
	Expenses     float64    `json:"expenses"`
	LoanPayments float64    `json:"loan_payments"`
	FoodCostPct  float64    `json:"food_cost_pct"`
	LaborCostPct float64    `json:"labor_cost_pct"`
	PrimeCostPct float64    `json:"prime_cost_pct"`
}

// Summarize builds the sales and cost summary for [from, to]
func (s *Service) Summarize(from, to time.Time) (*Summary, error) {
	summary := &Summary{From: from, To: to}

	var err error
	if summary.Revenue, err = s.sumColumn(&models.Sale{}, "total", "sold_at", from, to); err != nil {
		return nil, fmt.Errorf("revenue query failed: %w", err)
	}
	if summary.FoodCost, err = s.sumExpr(&models.Purchase{}, "quantity * unit_cost", "purchased_at", from, to); err != nil {
		return nil, fmt.Errorf("food cost query failed: %w", err)
	}
	if summary.LaborCost, err = s.sumExpr(&models.Shift{}, "hours * hourly_rate", "worked_on", from, to); err != nil {
		return nil, fmt.Errorf("labor cost query failed: %w", err)
	}
	if summary.Expenses, err = s.sumColumn(&models.Expense{}, "amount", "incurred_at", from, to); err != nil {
		return nil, fmt.Errorf("expense query failed: %w", err)
	}

	row := s.db.Model(&models.Loan{}).
		Where("start_date <= ?", to).
		Select("coalesce(sum(monthly_payment), 0)").Row()
	if err := row.Scan(&summary.LoanPayments); err != nil {
		return nil, fmt.Errorf("loan query failed: %w", err)
	}

	if summary.ItemSales, err = s.itemSales(from, to); err != nil {
		return nil, err
	}

	if summary.Revenue > 0 {
		summary.FoodCostPct = summary.FoodCost / summary.Revenue * 100
		summary.LaborCostPct = summary.LaborCost / summary.Revenue * 100
		summary.PrimeCostPct = summary.FoodCostPct + summary.LaborCostPct
	}

	return summary, nil
}

// AverageUnitCost returns the mean purchase unit cost for an item name.
// ok is false when the item has no purchase history.
func (s *Service) AverageUnitCost(itemName string) (avg float64, ok bool, err error) {
	row := s.db.Model(&models.Purchase{}).
		Where("item_name = ?", itemName).
		Select("avg(unit_cost)").Row()

	var v sql.NullFloat64
	if err := row.Scan(&v); err != nil {
		return 0, false, fmt.Errorf("unit cost query for %q failed: %w", itemName, err)
	}
	return v.Float64, v.Valid, nil
}

func (s *Service) itemSales(from, to time.Time) ([]ItemSale, error) {
	rows, err := s.db.Model(&models.Sale{}).
		Where("sold_at >= ? AND sold_at <= ?", from, to).
		Select("item_name, coalesce(sum(quantity), 0), coalesce(sum(total), 0)").
		Group("item_name").
		Order("sum(total) DESC").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("item sales query failed: %w", err)
	}
	defer rows.Close()

	var sales []ItemSale
	for rows.Next() {
		var sale ItemSale
		if err := rows.Scan(&sale.ItemName, &sale.QuantitySold, &sale.Revenue); err != nil {
			return nil, fmt.Errorf("item sales scan failed: %w", err)
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

func (s *Service) sumColumn(model interface{}, column, tsColumn string, from, to time.Time) (float64, error) {
	return s.sumExpr(model, column, tsColumn, from, to)
}

func (s *Service) sumExpr(model interface{}, expr, tsColumn string, from, to time.Time) (float64, error) {
	row := s.db.Model(model).
		Where(tsColumn+" >= ? AND "+tsColumn+" <= ?", from, to).
		Select("coalesce(sum(" + expr + "), 0)").Row()

	var total float64
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
