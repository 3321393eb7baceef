package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// InventoryItem represents a stocked ingredient in the back office
type InventoryItem struct {
	gorm.Model
	Name     string `gorm:"unique_index"`
	Category string
	Unit     string
	Quantity float64
	MinLevel float64
	Notes    string
}

// TableName sets the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// Purchase records one delivery of an ingredient at a unit price. The
// recipe builder averages these unit costs per item name.
type Purchase struct {
	gorm.Model
	ItemName    string `gorm:"index"`
	Quantity    float64
	UnitCost    float64
	Supplier    string
	PurchasedAt time.Time
}

// TableName sets the table name for Purchase
func (Purchase) TableName() string {
	return "purchases"
}

// InventoryCategory represents the category of an inventory item
type InventoryCategory string

const (
	// Inventory categories
	CategoryProtein    InventoryCategory = "protein"
	CategoryProduce    InventoryCategory = "produce"
	CategoryDairy      InventoryCategory = "dairy"
	CategoryDryGoods   InventoryCategory = "dry_goods"
	CategorySpices     InventoryCategory = "spices"
	CategoryCondiments InventoryCategory = "condiments"
	CategoryBeverages  InventoryCategory = "beverages"
)

// InventoryUnit represents the unit of measurement for an inventory item
type InventoryUnit string

const (
	// Weight units
	UnitGram     InventoryUnit = "g"
	UnitKilogram InventoryUnit = "kg"
	UnitOunce    InventoryUnit = "oz"
	UnitPound    InventoryUnit = "lb"

	// Volume units
	UnitMilliliter InventoryUnit = "ml"
	UnitLiter      InventoryUnit = "l"

	// Count units
	UnitPiece InventoryUnit = "pc"
	UnitCase  InventoryUnit = "case"
)
