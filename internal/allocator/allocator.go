// Package allocator distributes a recipe's ingredient cost budget.
//
// Given a menu sale price and a target food-cost percentage, Allocate
// splits the implied budget across the recipe's ingredients: locked
// ingredients are costed at their fixed quantity first, then the rest of
// the budget is divided among the unlocked ingredients in proportion to
// their relative weights.
package allocator

// IngredientInput is one row of an allocation request. Weight and
// LockedQty are pointers because absence carries meaning: a nil Weight
// means "split evenly with the other unweighted ingredients", while an
// explicit 0 means "no discretionary budget at all".
type IngredientInput struct {
	Name            string   `json:"name"`
	AverageUnitCost float64  `json:"averageUnitCost"`
	Weight          *float64 `json:"weight,omitempty"`
	LockedQty       *float64 `json:"lockedQty,omitempty"`
}

// IngredientAllocation is the computed quantity and cost for one ingredient.
type IngredientAllocation struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// AllocationResult is the full per-recipe cost breakdown.
type AllocationResult struct {
	Ingredients    []IngredientAllocation `json:"ingredients"`
	TotalCost      float64                `json:"totalCost"`
	CostPercentage float64                `json:"costPercentage"`
	OverBudget     bool                   `json:"overBudget"`
}

// Allocate computes a deterministic cost allocation. It is pure: no I/O,
// no mutation of its inputs, identical output for identical input.
//
// The function performs no range checks. Callers are expected to hand it
// a positive salesPrice and a targetFoodCostPct in (0, 100]; anything
// else produces undefined numeric results. A negative remaining budget
// (locked costs alone exceed the budget) is not an error: it propagates
// into negative unlocked allocations and the OverBudget flag.
func Allocate(salesPrice, targetFoodCostPct float64, ingredients []IngredientInput) AllocationResult {
	budget := salesPrice * targetFoodCostPct / 100

	var locked, unlocked []IngredientInput
	for _, ing := range ingredients {
		if ing.LockedQty != nil {
			locked = append(locked, ing)
		} else {
			unlocked = append(unlocked, ing)
		}
	}

	lines := make([]IngredientAllocation, 0, len(ingredients))
	totalCost := 0.0
	remaining := budget

	for _, ing := range locked {
		cost := *ing.LockedQty * ing.AverageUnitCost
		lines = append(lines, IngredientAllocation{
			Name:     ing.Name,
			Quantity: *ing.LockedQty,
			Cost:     cost,
		})
		totalCost += cost
		remaining -= cost
	}

	totalWeight := 0.0
	for _, ing := range unlocked {
		if ing.Weight != nil {
			totalWeight += *ing.Weight
		}
	}

	for _, ing := range unlocked {
		var share float64
		if totalWeight > 0 {
			if ing.Weight != nil {
				share = *ing.Weight / totalWeight
			}
		} else {
			share = 1 / float64(len(unlocked))
		}

		cost := remaining * share
		quantity := 0.0
		if ing.AverageUnitCost > 0 {
			quantity = cost / ing.AverageUnitCost
		}

		lines = append(lines, IngredientAllocation{
			Name:     ing.Name,
			Quantity: quantity,
			Cost:     cost,
		})
		totalCost += cost
	}

	return AllocationResult{
		Ingredients:    lines,
		TotalCost:      totalCost,
		CostPercentage: totalCost / salesPrice * 100,
		OverBudget:     totalCost > budget,
	}
}
