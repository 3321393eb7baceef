package insights

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"larder/internal/reports"
)

func sampleSummary() *reports.Summary {
	return &reports.Summary{
		From:         time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:           time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Revenue:      12000,
		FoodCost:     3600,
		LaborCost:    4200,
		Expenses:     1500,
		LoanPayments: 800,
		FoodCostPct:  30,
		LaborCostPct: 35,
		PrimeCostPct: 65,
		ItemSales: []reports.ItemSale{
			{ItemName: "Burger", QuantitySold: 420, Revenue: 5040},
			{ItemName: "Fries", QuantitySold: 380, Revenue: 1520},
		},
	}
}

func TestGenerateWithoutModelUsesFallback(t *testing.T) {
	svc := NewService(nil)

	text := svc.Generate(context.Background(), sampleSummary())

	assert.Contains(t, text, "$12000.00")
	assert.Contains(t, text, "prime cost of 65.0%")
	assert.Contains(t, text, "above the 60% guideline")
	assert.Contains(t, text, "Burger")
	assert.Contains(t, text, "$800.00")
}

func TestFallbackTextHealthyPrimeCost(t *testing.T) {
	summary := sampleSummary()
	summary.LaborCostPct = 25
	summary.PrimeCostPct = 55

	text := fallbackText(summary)

	assert.Contains(t, text, "within the 60% guideline")
}

func TestFallbackTextNoSales(t *testing.T) {
	summary := &reports.Summary{
		From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	text := fallbackText(summary)

	assert.Contains(t, text, "No sales were recorded")
}

func TestBuildPromptListsTopSellers(t *testing.T) {
	prompt := buildPrompt(sampleSummary())

	assert.Contains(t, prompt, "Revenue: $12000.00")
	assert.Contains(t, prompt, "Burger")
	assert.Contains(t, prompt, "Fries")
	assert.True(t, strings.Contains(prompt, "operations analyst"))
}
