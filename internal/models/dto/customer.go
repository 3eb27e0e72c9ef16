package dto

import (
	"errors"
	"strings"

	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
)

// Customer is used for both create and update; only name and email are
// ever written from it.
type Customer struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (c *Customer) Sanitize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
}

func (c *Customer) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

func (c *Customer) ToEntity() *models.Customer {
	return &models.Customer{
		Name:  c.Name,
		Email: c.Email,
	}
}
