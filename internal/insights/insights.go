// Package insights turns reporting aggregates into short, human-readable
// commentary for the back-office dashboard.
package insights

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"larder/internal/reports"
)

// Service writes insight text over a reporting summary. The model handle
// is optional; without one (or when the model call fails) Generate falls
// back to a deterministic local summary.
type Service struct {
	model llms.LLM
}

// NewService creates an insights service. model may be nil.
func NewService(model llms.LLM) *Service {
	return &Service{model: model}
}

// Generate returns narrative insight text for the summary. It never
// returns an error: a failed or unconfigured model yields the local
// fallback text instead.
func (s *Service) Generate(ctx context.Context, summary *reports.Summary) string {
	if s == nil || s.model == nil {
		return fallbackText(summary)
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, s.model, buildPrompt(summary), llms.WithTemperature(0.4))
	if err != nil {
		log.Printf("insight generation unavailable, using local summary: %v", err)
		return fallbackText(summary)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackText(summary)
	}
	return text
}

func buildPrompt(summary *reports.Summary) string {
	var b strings.Builder
	b.WriteString("You are a restaurant operations analyst. Write 3-5 short, concrete observations for the owner based on these figures. Plain text, no markdown.\n")
	fmt.Fprintf(&b, "Period: %s to %s\n", summary.From.Format("2006-01-02"), summary.To.Format("2006-01-02"))
	fmt.Fprintf(&b, "Revenue: $%.2f\n", summary.Revenue)
	fmt.Fprintf(&b, "Food cost: $%.2f (%.1f%% of revenue)\n", summary.FoodCost, summary.FoodCostPct)
	fmt.Fprintf(&b, "Labor cost: $%.2f (%.1f%% of revenue)\n", summary.LaborCost, summary.LaborCostPct)
	fmt.Fprintf(&b, "Other expenses: $%.2f\n", summary.Expenses)
	fmt.Fprintf(&b, "Monthly loan payments: $%.2f\n", summary.LoanPayments)
	if len(summary.ItemSales) > 0 {
		b.WriteString("Top sellers:\n")
		for i, item := range summary.ItemSales {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "- %s: %.0f sold, $%.2f revenue\n", item.ItemName, item.QuantitySold, item.Revenue)
		}
	}
	return b.String()
}

// fallbackText is the deterministic summary used when no model is
// reachable. Thresholds follow the usual back-of-house rules of thumb:
// prime cost healthy below 60% of revenue.
func fallbackText(summary *reports.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Revenue for %s through %s was $%.2f.",
		summary.From.Format("Jan 2"), summary.To.Format("Jan 2"), summary.Revenue)
	fmt.Fprintf(&b, " Food cost ran %.1f%% and labor %.1f%% of revenue, a prime cost of %.1f%%.",
		summary.FoodCostPct, summary.LaborCostPct, summary.PrimeCostPct)

	switch {
	case summary.Revenue == 0:
		b.WriteString(" No sales were recorded in this period.")
	case summary.PrimeCostPct > 60:
		b.WriteString(" Prime cost is above the 60% guideline; review portioning and scheduling.")
	default:
		b.WriteString(" Prime cost is within the 60% guideline.")
	}

	if len(summary.ItemSales) > 0 {
		top := summary.ItemSales[0]
		fmt.Fprintf(&b, " Best seller: %s ($%.2f).", top.ItemName, top.Revenue)
	}
	if summary.LoanPayments > 0 {
		fmt.Fprintf(&b, " Monthly loan obligations total $%.2f.", summary.LoanPayments)
	}
	return b.String()
}
