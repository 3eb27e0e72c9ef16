package database

import (
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedCustomers inserts the demo customers used for local runs. It is
// idempotent on ID.
func SeedCustomers(db *gorm.DB) error {
	customers := []models.Customer{
		{
			ID:    "c1",
			Name:  "Alice Example",
			Email: "alice@example.com",
		},
		{
			ID:    "c2",
			Name:  "Bob Example",
			Email: "bob@example.com",
		},
		{
			ID:    "c3",
			Name:  "Carol Example",
			Email: "carol@example.com",
		},
	}

	for _, customer := range customers {
		result := db.Where(models.Customer{ID: customer.ID}).FirstOrCreate(&customer)
		if result.Error != nil {
			return result.Error
		}
	}

	logrus.Info("Customers seeded successfully")
	return nil
}
