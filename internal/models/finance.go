package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Loan represents an outstanding loan and its repayment schedule
type Loan struct {
	gorm.Model
	Lender         string
	Principal      float64
	AnnualRatePct  float64
	MonthlyPayment float64
	StartDate      time.Time
}

// TableName sets the table name for Loan
func (Loan) TableName() string {
	return "loans"
}

// Expense records a one-off operating expense
type Expense struct {
	gorm.Model
	Category    string `gorm:"index"`
	Description string
	Amount      float64
	IncurredAt  time.Time
}

// TableName sets the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}

// ExpenseCategory represents the category of an operating expense
type ExpenseCategory string

const (
	ExpenseRent        ExpenseCategory = "rent"
	ExpenseUtilities   ExpenseCategory = "utilities"
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseMarketing   ExpenseCategory = "marketing"
	ExpenseSupplies    ExpenseCategory = "supplies"
	ExpenseOther       ExpenseCategory = "other"
)
