package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/apperrors"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/handlers"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/handlers/mocks"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/messages"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type server struct {
	router    *gin.Engine
	customers *mocks.MockCustomerService
	payments  *mocks.MockPaymentService
}

func newServer(t *testing.T) server {
	t.Helper()
	msgs, err := messages.NewCatalog("en")
	require.NoError(t, err)

	s := server{
		router:    gin.New(),
		customers: mocks.NewMockCustomerService(t),
		payments:  mocks.NewMockPaymentService(t),
	}
	ch := handlers.NewCustomerHandler(s.customers, msgs)
	ph := handlers.NewPaymentHandler(s.payments, msgs)

	s.router.POST("/customers", ch.CreateCustomer)
	s.router.GET("/customers", ch.GetAllCustomers)
	s.router.GET("/customers/:customerId", ch.GetCustomer)
	s.router.PUT("/customers/:customerId", ch.UpdateCustomer)
	s.router.DELETE("/customers/:customerId", ch.DeleteCustomer)
	s.router.POST("/customers/:customerId/payments", ph.MakePayment)
	s.router.GET("/customers/:customerId/payments", ph.GetCustomerPayments)
	s.router.GET("/payments/:paymentId", ph.GetPayment)
	return s
}

func (s server) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) handlers.Problem {
	t.Helper()
	var p handlers.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestCreateCustomer_Created(t *testing.T) {
	s := newServer(t)
	s.customers.EXPECT().
		CreateCustomer(mock.Anything, &models.Customer{Name: "John Doe", Email: "john@x.com"}).
		Return(&models.Customer{ID: "customer-1", Name: "John Doe", Email: "john@x.com"}, nil).
		Once()

	w := s.do(http.MethodPost, "/customers", `{"name":"  John Doe ","email":"john@x.com"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body models.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "customer-1", body.ID)
}

func TestCreateCustomer_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"missing email", `{"name":"John Doe"}`},
		{"bad email", `{"name":"John Doe","email":"not-an-email"}`},
		{"blank name", `{"name":"   ","email":"john@x.com"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t)

			w := s.do(http.MethodPost, "/customers", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			p := decodeProblem(t, w)
			assert.Equal(t, "Validation Error", p.Title)
			assert.Equal(t, http.StatusBadRequest, p.Status)
			assert.Equal(t, "/customers", p.Instance)
			assert.Contains(t, p.Detail, "Validation failed")
			s.customers.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateCustomer_Conflict(t *testing.T) {
	s := newServer(t)
	s.customers.EXPECT().
		CreateCustomer(mock.Anything, mock.Anything).
		Return(nil, apperrors.New(apperrors.KindCustomerAlreadyExists, "Customer with email john@x.com already exists")).
		Once()

	w := s.do(http.MethodPost, "/customers", `{"name":"John Doe","email":"john@x.com"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	p := decodeProblem(t, w)
	assert.Equal(t, "Customer Conflict", p.Title)
	assert.Equal(t, "Customer with email john@x.com already exists", p.Detail)
}

func TestGetCustomer_NotFound(t *testing.T) {
	s := newServer(t)
	s.customers.EXPECT().
		GetCustomerByID(mock.Anything, "missing").
		Return(nil, apperrors.New(apperrors.KindCustomerNotFound, "Customer with ID missing not found")).
		Once()

	w := s.do(http.MethodGet, "/customers/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	p := decodeProblem(t, w)
	assert.Equal(t, "about:blank", p.Type)
	assert.Equal(t, "Customer Not Found", p.Title)
	assert.Equal(t, "/customers/missing", p.Instance)
}

func TestGetAllCustomers_Empty(t *testing.T) {
	s := newServer(t)
	s.customers.EXPECT().GetAllCustomers(mock.Anything).Return([]models.Customer{}, nil).Once()

	w := s.do(http.MethodGet, "/customers", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateCustomer(t *testing.T) {
	s := newServer(t)
	s.customers.EXPECT().
		UpdateCustomer(mock.Anything, "customer-1", &models.Customer{Name: "Jane", Email: "jane@x.com"}).
		Return(&models.Customer{ID: "customer-1", Name: "Jane", Email: "jane@x.com"}, nil).
		Once()

	w := s.do(http.MethodPut, "/customers/customer-1", `{"name":"Jane","email":"jane@x.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteCustomer(t *testing.T) {
	s := newServer(t)
	s.customers.EXPECT().DeleteCustomer(mock.Anything, "customer-1").Return(nil).Once()
	s.customers.EXPECT().
		DeleteCustomer(mock.Anything, "missing").
		Return(apperrors.New(apperrors.KindCustomerNotFound, "Customer with ID missing not found")).
		Once()

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/customers/customer-1", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/customers/missing", "").Code)
}

func TestMakePayment_Created(t *testing.T) {
	s := newServer(t)
	s.payments.EXPECT().
		MakePayment(mock.Anything, "customer-1", mock.MatchedBy(func(p models.Payment) bool {
			return p.Method == "VISA" && p.Amount.Equal(decimal.RequireFromString("12000.00"))
		})).
		Return(&models.Payment{
			ID:         "payment-1",
			Method:     "VISA",
			Amount:     decimal.RequireFromString("12000.00"),
			CustomerID: "customer-1",
			Reference:  "ref-1",
		}, nil).
		Once()

	w := s.do(http.MethodPost, "/customers/customer-1/payments", `{"method":"VISA","amount":12000.00}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "payment-1", body["id"])
	assert.Equal(t, "ref-1", body["reference"])
	assert.EqualValues(t, 12000, body["amount"])
}

func TestMakePayment_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing amount", `{"method":"VISA"}`},
		{"missing method", `{"amount":10}`},
		{"blank method", `{"method":"  ","amount":10}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t)

			w := s.do(http.MethodPost, "/customers/customer-1/payments", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			s.payments.AssertNotCalled(t, "MakePayment", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestMakePayment_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		title  string
	}{
		{
			name:   "unknown customer",
			err:    apperrors.New(apperrors.KindCustomerNotFound, "Customer with ID customer-1 not found"),
			status: http.StatusNotFound,
			title:  "Customer Not Found",
		},
		{
			name:   "processor rejected",
			err:    apperrors.New(apperrors.KindPaymentProcessing, "Error processing payment for reference r: insufficient funds"),
			status: http.StatusInternalServerError,
			title:  "Payment Processing Error",
		},
		{
			name:   "store failure",
			err:    apperrors.New(apperrors.KindService, "Service error: disk full"),
			status: http.StatusInternalServerError,
			title:  "Service Error",
		},
		{
			name:   "untyped error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			title:  "General Error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t)
			s.payments.EXPECT().MakePayment(mock.Anything, "customer-1", mock.Anything).Return(nil, tt.err).Once()

			w := s.do(http.MethodPost, "/customers/customer-1/payments", `{"method":"VISA","amount":10}`)

			assert.Equal(t, tt.status, w.Code)
			p := decodeProblem(t, w)
			assert.Equal(t, tt.title, p.Title)
			assert.Equal(t, tt.err.Error(), p.Detail)
		})
	}
}

func TestGetPayment(t *testing.T) {
	s := newServer(t)
	s.payments.EXPECT().
		GetPaymentByID(mock.Anything, "payment-1").
		Return(&models.Payment{ID: "payment-1", Method: "VISA"}, nil).
		Once()
	s.payments.EXPECT().
		GetPaymentByID(mock.Anything, "missing").
		Return(nil, apperrors.New(apperrors.KindPaymentNotFound, "Payment with ID missing not found")).
		Once()

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/payments/payment-1", "").Code)

	w := s.do(http.MethodGet, "/payments/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Payment Not Found", decodeProblem(t, w).Title)
}

func TestGetCustomerPayments_Empty(t *testing.T) {
	s := newServer(t)
	s.payments.EXPECT().GetPaymentsByCustomerID(mock.Anything, "unknown").Return([]models.Payment{}, nil).Once()

	w := s.do(http.MethodGet, "/customers/unknown/payments", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
