package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"larder/internal/allocator"
	"larder/internal/models"
)

// Recipe handlers

func (b *BackOffice) ListRecipes(c *gin.Context) {
	var recipes []models.Recipe
	if err := b.DB.Order("name").Find(&recipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for i := range recipes {
		recipes[i].GetIngredients()
	}
	c.JSON(http.StatusOK, recipes)
}

func (b *BackOffice) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if recipe.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if len(recipe.Ingredients) > 0 {
		if err := recipe.SetIngredients(recipe.Ingredients); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := b.DB.Create(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (b *BackOffice) GetRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := b.DB.First(&recipe, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if _, err := recipe.GetIngredients(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (b *BackOffice) UpdateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := b.DB.First(&recipe, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	var updates models.Recipe
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if updates.Name != "" {
		recipe.Name = updates.Name
	}
	if updates.Category != "" {
		recipe.Category = updates.Category
	}
	if updates.SalesPrice > 0 {
		recipe.SalesPrice = updates.SalesPrice
	}
	if updates.TargetFoodCostPct > 0 {
		recipe.TargetFoodCostPct = updates.TargetFoodCostPct
	}
	if updates.Notes != "" {
		recipe.Notes = updates.Notes
	}
	if len(updates.Tags) > 0 {
		recipe.Tags = updates.Tags
	}
	if len(updates.Ingredients) > 0 {
		if err := recipe.SetIngredients(updates.Ingredients); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := b.DB.Save(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (b *BackOffice) DeleteRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := b.DB.First(&recipe, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err := b.DB.Delete(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}

// Recipe budget build

// BuildIngredientRequest names an ingredient and how it participates in
// the allocation. Weight and lockedQty stay pointers so that "absent" and
// "zero" remain different values.
type BuildIngredientRequest struct {
	Name      string   `json:"name"`
	Weight    *float64 `json:"weight,omitempty"`
	LockedQty *float64 `json:"lockedQty,omitempty"`
}

// BuildRecipeRequest is the wire shape of a recipe build
type BuildRecipeRequest struct {
	SalesPrice        float64                  `json:"salesPrice"`
	TargetFoodCostPct float64                  `json:"targetFoodCostPct"`
	Ingredients       []BuildIngredientRequest `json:"ingredients"`
	Strategy          string                   `json:"strategy,omitempty"`
}

// BuildRecipe allocates an ingredient budget for a prospective recipe.
// The allocator itself performs no range checks, so every guard lives
// here: positive price, target percentage in (0, 100], non-empty and
// uniquely named ingredient list. Unit costs come from the purchase
// history average; items with no history are costed at zero.
func (b *BackOffice) BuildRecipe(c *gin.Context) {
	var req BuildRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.SalesPrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "salesPrice must be positive"})
		return
	}
	if req.TargetFoodCostPct == 0 {
		req.TargetFoodCostPct = b.DefaultTargetFoodCostPct
	}
	if req.TargetFoodCostPct <= 0 || req.TargetFoodCostPct > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetFoodCostPct must be in (0, 100]"})
		return
	}
	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one ingredient is required"})
		return
	}

	seen := make(map[string]bool, len(req.Ingredients))
	inputs := make([]allocator.IngredientInput, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		if ing.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "every ingredient needs a name"})
			return
		}
		if seen[ing.Name] {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("duplicate ingredient %q", ing.Name)})
			return
		}
		seen[ing.Name] = true

		avgCost, _, err := b.Reports.AverageUnitCost(ing.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		inputs = append(inputs, allocator.IngredientInput{
			Name:            ing.Name,
			AverageUnitCost: avgCost,
			Weight:          ing.Weight,
			LockedQty:       ing.LockedQty,
		})
	}

	result := b.Advisor.Allocate(c.Request.Context(), req.SalesPrice, req.TargetFoodCostPct, inputs, req.Strategy)

	b.Hub.Broadcast("recipe_build", result)
	c.JSON(http.StatusOK, result)
}
