package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/messages"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models/dto"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch *models.Customer) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	GetCustomerByID(ctx context.Context, id string) (*models.Customer, error)
	GetAllCustomers(ctx context.Context) ([]models.Customer, error)
}

type CustomerHandler struct {
	Service  CustomerService
	Messages messages.Formatter
}

// NewCustomerHandler creates the handler for the customer routes.
func NewCustomerHandler(s CustomerService, msgs messages.Formatter) *CustomerHandler {
	return &CustomerHandler{Service: s, Messages: msgs}
}

// POST /customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	req, ok := h.bindCustomer(c)
	if !ok {
		return
	}

	customer, err := h.Service.CreateCustomer(c.Request.Context(), req.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GET /customers
func (h *CustomerHandler) GetAllCustomers(c *gin.Context) {
	customers, err := h.Service.GetAllCustomers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GET /customers/:customerId
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.Service.GetCustomerByID(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// PUT /customers/:customerId
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	req, ok := h.bindCustomer(c)
	if !ok {
		return
	}

	customer, err := h.Service.UpdateCustomer(c.Request.Context(), c.Param("customerId"), req.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DELETE /customers/:customerId
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.Service.DeleteCustomer(c.Request.Context(), c.Param("customerId")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) bindCustomer(c *gin.Context) (*dto.Customer, bool) {
	var req dto.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validationError(h.Messages, err))
		return nil, false
	}
	req.Sanitize()
	if err := req.Validate(); err != nil {
		writeError(c, validationError(h.Messages, err))
		return nil, false
	}
	return &req, true
}
