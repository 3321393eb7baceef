package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Shift records hours worked by one employee on one day
type Shift struct {
	gorm.Model
	Employee   string `gorm:"index"`
	Role       string
	Hours      float64
	HourlyRate float64
	WorkedOn   time.Time
}

// TableName sets the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// Cost returns the labor cost of the shift
func (s *Shift) Cost() float64 {
	return s.Hours * s.HourlyRate
}

// StaffRole represents a back-of-house or front-of-house role
type StaffRole string

const (
	RoleChef       StaffRole = "chef"
	RoleLineCook   StaffRole = "line_cook"
	RolePrepCook   StaffRole = "prep_cook"
	RoleServer     StaffRole = "server"
	RoleDishwasher StaffRole = "dishwasher"
	RoleManager    StaffRole = "manager"
)
