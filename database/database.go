package database

import (
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates or updates every table the storefront uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Supplier{},
		&models.Product{},
		&models.User{},
		&models.CartItem{},
		&models.LibraryEntry{},
		&models.Purchase{},
		&models.PurchaseDetail{},
		&models.PendingPayout{},
	)
}
