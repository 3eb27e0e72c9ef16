package processor

import (
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
	"github.com/shopspring/decimal"
)

type Operation string

const (
	OperationPayment  Operation = "payment"
	OperationReversal Operation = "reversal"
)

type PaymentRequest struct {
	Reference  string          `json:"reference"`
	CustomerID string          `json:"customerId"`
	Amount     decimal.Decimal `json:"amount"`
}

type ReversalRequest struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
}

// NewPaymentRequest derives the charge request for a payment that already
// carries its reference and customer.
func NewPaymentRequest(p *models.Payment) PaymentRequest {
	return PaymentRequest{
		Reference:  p.Reference,
		CustomerID: p.CustomerID,
		Amount:     p.Amount,
	}
}

// NewReversalRequest derives the request that would undo p.
func NewReversalRequest(p *models.Payment) ReversalRequest {
	return ReversalRequest{
		Reference: p.Reference,
		Amount:    p.Amount,
	}
}

// ErrorBody is the structured error the processor returns on failure.
type ErrorBody struct {
	Message string `json:"message"`
}

// Response is what the processor answered. Error is nil when the body was
// absent or could not be decoded.
type Response struct {
	StatusCode int
	Error      *ErrorBody
}
