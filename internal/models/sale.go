package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Sale records one sold menu item
type Sale struct {
	gorm.Model
	ItemName  string `gorm:"index"`
	Quantity  float64
	UnitPrice float64
	Total     float64
	SoldAt    time.Time
}

// TableName sets the table name for Sale
func (Sale) TableName() string {
	return "sales"
}
