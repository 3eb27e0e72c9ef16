package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentCreatedEventTopic  = "payments.created"
	CustomerCreatedEventTopic = "customers.created"
	CustomerUpdatedEventTopic = "customers.updated"
	CustomerDeletedEventTopic = "customers.deleted"
)

type PaymentCreatedEvent struct {
	ID         string          `json:"id"`
	Reference  string          `json:"reference"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	CustomerID string          `json:"customer_id"`
	CreatedAt  time.Time       `json:"created_at"`
}

type CustomerEvent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewPaymentCreatedEvent(p *Payment) PaymentCreatedEvent {
	return PaymentCreatedEvent{
		ID:         p.ID,
		Reference:  p.Reference,
		Amount:     p.Amount,
		Method:     p.Method,
		CustomerID: p.CustomerID,
		CreatedAt:  p.PaymentDate,
	}
}

func NewCustomerEvent(c *Customer) CustomerEvent {
	return CustomerEvent{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		OccurredAt: time.Now().UTC(),
	}
}
