package database

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // PostgreSQL dialect
	_ "github.com/jinzhu/gorm/dialects/sqlite"   // SQLite dialect

	"larder/internal/models"
)

var DB *gorm.DB

// InitDB initializes the database connection and migrates the schema
func InitDB(dialect, url string) error {
	var err error
	DB, err = gorm.Open(dialect, url)
	if err != nil {
		return err
	}
	return Migrate(DB)
}

// Migrate creates or updates the back-office tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.InventoryItem{},
		&models.Purchase{},
		&models.Sale{},
		&models.Shift{},
		&models.Loan{},
		&models.Expense{},
		&models.Recipe{},
	).Error
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
