package database

import (
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the customers and payments tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{}, &models.Payment{})
}
