package allocator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// AdvisorClient is the single capability the advisor needs from an
// external text-generation service: turn a prompt into text. The service
// is treated as untrustworthy; any error or unusable response is handled
// by falling back to Allocate.
type AdvisorClient interface {
	RequestAllocation(ctx context.Context, prompt string) (string, error)
}

// LLMClient adapts a langchaingo model to AdvisorClient.
type LLMClient struct {
	model llms.LLM
}

// NewLLMClient wraps a model handle. A nil model yields a nil client,
// which the Advisor treats as "not configured".
func NewLLMClient(model llms.LLM) AdvisorClient {
	if model == nil {
		return nil
	}
	return &LLMClient{model: model}
}

// RequestAllocation submits the prompt with a low temperature so the
// model stays close to the requested JSON shape.
func (c *LLMClient) RequestAllocation(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, c.model, prompt, llms.WithTemperature(0.2))
}

// Recorder receives the outcome of each allocation: "advised" when the
// external service supplied it, "local" for the deterministic fallback.
type Recorder interface {
	RecordAllocation(outcome string, overBudget bool)
}

// Advisor asks the external service for an allocation and falls back to
// the deterministic allocator when it cannot get a usable one. It is
// constructed once at startup and is safe for concurrent use.
type Advisor struct {
	client   AdvisorClient
	recorder Recorder
}

// NewAdvisor creates an advisor over the given client. Both arguments may
// be nil: a nil client makes every call delegate straight to Allocate,
// and a nil recorder disables outcome reporting.
func NewAdvisor(client AdvisorClient, recorder Recorder) *Advisor {
	return &Advisor{client: client, recorder: recorder}
}

// Allocate returns an allocation for the recipe, preferring the external
// service's suggestion. Exactly one request is made; on any failure
// (unconfigured client, transport error, unparseable or mis-shaped
// response) the result is identical to calling Allocate directly. The
// method never returns an error.
func (a *Advisor) Allocate(ctx context.Context, salesPrice, targetFoodCostPct float64, ingredients []IngredientInput, strategy string) AllocationResult {
	if a == nil || a.client == nil {
		return a.local(salesPrice, targetFoodCostPct, ingredients)
	}

	prompt := buildPrompt(salesPrice, targetFoodCostPct, ingredients, strategy)
	text, err := a.client.RequestAllocation(ctx, prompt)
	if err != nil {
		log.Printf("allocation advice unavailable, using local allocator: %v", err)
		return a.local(salesPrice, targetFoodCostPct, ingredients)
	}

	parsed, err := parseAdvice(text, ingredients)
	if err != nil {
		log.Printf("allocation advice rejected, using local allocator: %v", err)
		return a.local(salesPrice, targetFoodCostPct, ingredients)
	}

	// Derived ratios always come from locally known figures, never from
	// the service's own arithmetic.
	budget := salesPrice * targetFoodCostPct / 100
	parsed.CostPercentage = parsed.TotalCost / salesPrice * 100
	parsed.OverBudget = parsed.TotalCost > budget
	a.record("advised", parsed.OverBudget)
	return *parsed
}

func (a *Advisor) local(salesPrice, targetFoodCostPct float64, ingredients []IngredientInput) AllocationResult {
	result := Allocate(salesPrice, targetFoodCostPct, ingredients)
	a.record("local", result.OverBudget)
	return result
}

func (a *Advisor) record(outcome string, overBudget bool) {
	if a != nil && a.recorder != nil {
		a.recorder.RecordAllocation(outcome, overBudget)
	}
}

func buildPrompt(salesPrice, targetFoodCostPct float64, ingredients []IngredientInput, strategy string) string {
	budget := salesPrice * targetFoodCostPct / 100

	var b strings.Builder
	fmt.Fprintf(&b, "You are a restaurant food-cost planner.\n")
	fmt.Fprintf(&b, "A dish sells for $%.2f with a target food cost of %.1f%%, so the ingredient budget is $%.2f.\n", salesPrice, targetFoodCostPct, budget)
	fmt.Fprintf(&b, "Allocate the budget across these ingredients:\n")
	for _, ing := range ingredients {
		fmt.Fprintf(&b, "- %s: $%.4f per unit", ing.Name, ing.AverageUnitCost)
		if ing.LockedQty != nil {
			fmt.Fprintf(&b, ", quantity locked at %.4f", *ing.LockedQty)
		} else if ing.Weight != nil {
			fmt.Fprintf(&b, ", relative weight %.4f", *ing.Weight)
		}
		b.WriteString("\n")
	}
	if strategy != "" {
		fmt.Fprintf(&b, "Strategy hint: %s\n", strategy)
	}
	b.WriteString(`Respond with ONLY valid JSON, no markdown and no explanations, in this exact schema:
{"ingredients":[{"name":"string","quantity":number,"cost":number}],"totalCost":number}
Include exactly one entry per ingredient listed above, keeping locked quantities unchanged.`)
	return b.String()
}

// parseAdvice extracts and validates the JSON allocation embedded in the
// model's reply. The reply may wrap the JSON in code fences or prose.
func parseAdvice(text string, inputs []IngredientInput) (*AllocationResult, error) {
	raw := extractJSON(text)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var parsed struct {
		Ingredients []IngredientAllocation `json:"ingredients"`
		TotalCost   float64                `json:"totalCost"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON in response: %w", err)
	}

	if len(parsed.Ingredients) != len(inputs) {
		return nil, fmt.Errorf("expected %d ingredients, got %d", len(inputs), len(parsed.Ingredients))
	}
	seen := make(map[string]bool, len(parsed.Ingredients))
	for _, line := range parsed.Ingredients {
		seen[line.Name] = true
	}
	for _, ing := range inputs {
		if !seen[ing.Name] {
			return nil, fmt.Errorf("response is missing ingredient %q", ing.Name)
		}
	}

	return &AllocationResult{
		Ingredients: parsed.Ingredients,
		TotalCost:   parsed.TotalCost,
	}, nil
}

// extractJSON returns the first top-level JSON object in text, tolerating
// markdown fences and surrounding commentary.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
