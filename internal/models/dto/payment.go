package dto

import (
	"errors"
	"strings"

	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
	"github.com/shopspring/decimal"
)

// Payment is the draft a caller submits for a customer. Negative amounts
// are accepted.
type Payment struct {
	Method string           `json:"method" binding:"required"`
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

func (p *Payment) Sanitize() {
	p.Method = strings.TrimSpace(p.Method)
}

func (p *Payment) Validate() error {
	if p.Method == "" {
		return errors.New("payment method is required")
	}
	if p.Amount == nil {
		return errors.New("amount is required")
	}
	return nil
}

func (p *Payment) ToEntity() models.Payment {
	payment := models.Payment{Method: p.Method}
	if p.Amount != nil {
		payment.Amount = *p.Amount
	}
	return payment
}
