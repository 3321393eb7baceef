package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestAllocateWeightedSplit(t *testing.T) {
	// $10 dish at 30% target: $3 budget split 0.5/0.3/0.2.
	ingredients := []IngredientInput{
		{Name: "Chicken", AverageUnitCost: 1, Weight: fp(0.5)},
		{Name: "Cheese", AverageUnitCost: 1, Weight: fp(0.3)},
		{Name: "Lettuce", AverageUnitCost: 1, Weight: fp(0.2)},
	}

	result := Allocate(10, 30, ingredients)

	require.Len(t, result.Ingredients, 3)
	assert.InDelta(t, 1.5, costOf(t, result, "Chicken"), 1e-9)
	assert.InDelta(t, 0.9, costOf(t, result, "Cheese"), 1e-9)
	assert.InDelta(t, 0.6, costOf(t, result, "Lettuce"), 1e-9)
	assert.InDelta(t, 3.0, result.TotalCost, 1e-9)
	assert.InDelta(t, 30.0, result.CostPercentage, 1e-9)
	assert.False(t, result.OverBudget)
}

func TestAllocateLockedIngredient(t *testing.T) {
	// Chicken locked at 2 units ($2): the remaining $1 splits 0.3/0.2.
	ingredients := []IngredientInput{
		{Name: "Chicken", AverageUnitCost: 1, Weight: fp(0.5), LockedQty: fp(2)},
		{Name: "Cheese", AverageUnitCost: 1, Weight: fp(0.3)},
		{Name: "Lettuce", AverageUnitCost: 1, Weight: fp(0.2)},
	}

	result := Allocate(10, 30, ingredients)

	assert.InDelta(t, 2.0, costOf(t, result, "Chicken"), 1e-9)
	assert.Equal(t, 2.0, quantityOf(t, result, "Chicken"))
	assert.InDelta(t, 0.6, costOf(t, result, "Cheese"), 1e-9)
	assert.InDelta(t, 0.4, costOf(t, result, "Lettuce"), 1e-9)
	assert.InDelta(t, 3.0, result.TotalCost, 1e-9)
	assert.False(t, result.OverBudget)
}

func TestAllocateEvenSplitWithoutWeights(t *testing.T) {
	ingredients := []IngredientInput{
		{Name: "Beef", AverageUnitCost: 2},
		{Name: "Bun", AverageUnitCost: 2},
		{Name: "Pickles", AverageUnitCost: 2},
		{Name: "Sauce", AverageUnitCost: 2},
	}

	result := Allocate(12, 25, ingredients)

	for _, line := range result.Ingredients {
		assert.InDelta(t, 0.75, line.Cost, 1e-9, "ingredient %s", line.Name)
		assert.InDelta(t, 0.375, line.Quantity, 1e-9, "ingredient %s", line.Name)
	}
}

func TestAllocateZeroUnitCost(t *testing.T) {
	// An unpriced ingredient still carries its share of the budget in the
	// cost ledger, but no quantity can be derived for it.
	ingredients := []IngredientInput{
		{Name: "Water", AverageUnitCost: 0, Weight: fp(0.5)},
		{Name: "Rice", AverageUnitCost: 0.5, Weight: fp(0.5)},
	}

	result := Allocate(8, 25, ingredients)

	assert.Equal(t, 0.0, quantityOf(t, result, "Water"))
	assert.InDelta(t, 1.0, costOf(t, result, "Water"), 1e-9)
	assert.InDelta(t, 1.0, costOf(t, result, "Rice"), 1e-9)
	assert.InDelta(t, 2.0, quantityOf(t, result, "Rice"), 1e-9)
}

func TestAllocateLockedCostExceedsBudget(t *testing.T) {
	// Locked cost alone blows the $3 budget: the flag trips and the
	// unlocked ingredients absorb the negative remainder.
	ingredients := []IngredientInput{
		{Name: "Truffle", AverageUnitCost: 5, Weight: fp(0.5), LockedQty: fp(1)},
		{Name: "Pasta", AverageUnitCost: 1, Weight: fp(1)},
	}

	result := Allocate(10, 30, ingredients)

	assert.True(t, result.OverBudget)
	assert.Equal(t, 1.0, quantityOf(t, result, "Truffle"))
	assert.InDelta(t, -2.0, costOf(t, result, "Pasta"), 1e-9)
	assert.InDelta(t, -2.0, quantityOf(t, result, "Pasta"), 1e-9)
	assert.InDelta(t, 3.0, result.TotalCost, 1e-9)
}

func TestAllocateZeroWeightGetsNothing(t *testing.T) {
	// Weight 0 is distinct from unset: this ingredient gets no budget.
	ingredients := []IngredientInput{
		{Name: "Garnish", AverageUnitCost: 1, Weight: fp(0)},
		{Name: "Steak", AverageUnitCost: 4, Weight: fp(1)},
	}

	result := Allocate(20, 30, ingredients)

	assert.Equal(t, 0.0, costOf(t, result, "Garnish"))
	assert.InDelta(t, 6.0, costOf(t, result, "Steak"), 1e-9)
}

func TestAllocateAllLocked(t *testing.T) {
	ingredients := []IngredientInput{
		{Name: "Espresso", AverageUnitCost: 0.4, LockedQty: fp(2)},
		{Name: "Milk", AverageUnitCost: 0.1, LockedQty: fp(3)},
	}

	result := Allocate(5, 30, ingredients)

	require.Len(t, result.Ingredients, 2)
	assert.InDelta(t, 1.1, result.TotalCost, 1e-9)
	assert.InDelta(t, 22.0, result.CostPercentage, 1e-9)
	assert.False(t, result.OverBudget)
}

func TestAllocateInvariants(t *testing.T) {
	ingredients := []IngredientInput{
		{Name: "Salmon", AverageUnitCost: 3.2, Weight: fp(0.6)},
		{Name: "Greens", AverageUnitCost: 0.8, Weight: fp(0.25)},
		{Name: "Lemon", AverageUnitCost: 0.3, LockedQty: fp(0.5)},
		{Name: "Oil", AverageUnitCost: 1.1},
	}
	salesPrice, targetPct := 23.5, 28.0

	result := Allocate(salesPrice, targetPct, ingredients)

	// Total cost is accumulated from the per-line costs, so the identity
	// holds exactly, not just within tolerance.
	sum := 0.0
	for _, line := range result.Ingredients {
		sum += line.Cost
	}
	assert.Equal(t, sum, result.TotalCost)
	assert.Equal(t, result.TotalCost/salesPrice*100, result.CostPercentage)
	assert.Equal(t, result.TotalCost > salesPrice*targetPct/100, result.OverBudget)

	// One output line per input name.
	names := make(map[string]int)
	for _, line := range result.Ingredients {
		names[line.Name]++
	}
	require.Len(t, names, len(ingredients))
	for _, ing := range ingredients {
		assert.Equal(t, 1, names[ing.Name])
	}

	// Pure function: a second call is identical.
	assert.Equal(t, result, Allocate(salesPrice, targetPct, ingredients))
}

func costOf(t *testing.T, result AllocationResult, name string) float64 {
	t.Helper()
	for _, line := range result.Ingredients {
		if line.Name == name {
			return line.Cost
		}
	}
	t.Fatalf("no allocation line for %q", name)
	return 0
}

func quantityOf(t *testing.T, result AllocationResult, name string) float64 {
	t.Helper()
	for _, line := range result.Ingredients {
		if line.Name == name {
			return line.Quantity
		}
	}
	t.Fatalf("no allocation line for %q", name)
	return 0
}
