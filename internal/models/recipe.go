package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/jinzhu/gorm"
)

// StringSlice represents a slice of strings that can be stored in the database
type StringSlice []string

// Value converts the slice to a JSON string for storage
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// Recipe represents a menu recipe with its costing targets
type Recipe struct {
	gorm.Model
	Name              string `gorm:"unique_index"`
	Category          string
	SalesPrice        float64
	TargetFoodCostPct float64
	IngredientsJSON   string      `gorm:"type:text"`
	Tags              StringSlice `gorm:"type:text"`
	Notes             string
	// Transient field (ignored by GORM)
	Ingredients []RecipeIngredient `gorm:"-"`
}

// TableName sets the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient is one ingredient line of a recipe build. Weight and
// LockedQty are pointers: an absent weight means "share evenly", which is
// not the same as an explicit zero.
type RecipeIngredient struct {
	Name      string   `json:"name"`
	Quantity  float64  `json:"quantity"`
	Unit      string   `json:"unit,omitempty"`
	Cost      float64  `json:"cost"`
	Weight    *float64 `json:"weight,omitempty"`
	LockedQty *float64 `json:"lockedQty,omitempty"`
}

// GetIngredients returns the deserialized ingredient lines
func (r *Recipe) GetIngredients() ([]RecipeIngredient, error) {
	if len(r.Ingredients) > 0 {
		return r.Ingredients, nil
	}
	var ingredients []RecipeIngredient
	if r.IngredientsJSON == "" {
		return ingredients, nil
	}
	if err := json.Unmarshal([]byte(r.IngredientsJSON), &ingredients); err != nil {
		return nil, err
	}
	r.Ingredients = ingredients
	return ingredients, nil
}

// SetIngredients serializes the ingredient lines for storage
func (r *Recipe) SetIngredients(ingredients []RecipeIngredient) error {
	data, err := json.Marshal(ingredients)
	if err != nil {
		return err
	}
	r.IngredientsJSON = string(data)
	r.Ingredients = ingredients
	return nil
}
