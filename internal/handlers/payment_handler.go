package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/messages"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models/dto"
)

type PaymentService interface {
	MakePayment(ctx context.Context, customerID string, draft models.Payment) (*models.Payment, error)
	GetPaymentByID(ctx context.Context, id string) (*models.Payment, error)
	GetPaymentsByCustomerID(ctx context.Context, customerID string) ([]models.Payment, error)
}

type PaymentHandler struct {
	Service  PaymentService
	Messages messages.Formatter
}

// NewPaymentHandler creates the handler for the payment routes.
func NewPaymentHandler(s PaymentService, msgs messages.Formatter) *PaymentHandler {
	return &PaymentHandler{Service: s, Messages: msgs}
}

// POST /customers/:customerId/payments
func (h *PaymentHandler) MakePayment(c *gin.Context) {
	var req dto.Payment
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validationError(h.Messages, err))
		return
	}
	req.Sanitize()
	if err := req.Validate(); err != nil {
		writeError(c, validationError(h.Messages, err))
		return
	}

	payment, err := h.Service.MakePayment(c.Request.Context(), c.Param("customerId"), req.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GET /customers/:customerId/payments
func (h *PaymentHandler) GetCustomerPayments(c *gin.Context) {
	payments, err := h.Service.GetPaymentsByCustomerID(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GET /payments/:paymentId
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.Service.GetPaymentByID(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}
