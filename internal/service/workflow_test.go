package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jeffleon2/draftea-customer-payment-service/internal/apperrors"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/database/dbtest"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/processor"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/publisher"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stack struct {
	customers *service.CustomerService
	payments  *service.PaymentService
	calls     *atomic.Int32
}

// newStack wires both services to a private SQLite database and a stub
// processor that answers with status and body.
func newStack(t *testing.T, status int, body string) stack {
	t.Helper()

	calls := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req processor.PaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Reference == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	db := dbtest.Open(t)
	msgs := newCatalog(t)
	customerRepo := posgrest.New[models.Customer](db)
	paymentRepo := posgrest.New[models.Payment](db, "Customer")
	events := publisher.NewLogPublisher()

	return stack{
		customers: service.NewCustomerService(customerRepo, events, msgs),
		payments: service.NewPaymentService(
			paymentRepo, customerRepo, processor.NewClient(server.URL), events, msgs,
		),
		calls: calls,
	}
}

func TestWorkflow_PaymentAccepted(t *testing.T) {
	s := newStack(t, http.StatusCreated, "")
	ctx := context.Background()

	customer, err := s.customers.CreateCustomer(ctx, &models.Customer{Name: "John Doe", Email: "john@x.com"})
	require.NoError(t, err)

	paid, err := s.payments.MakePayment(ctx, customer.ID, models.Payment{
		Method: "VISA",
		Amount: decimal.RequireFromString("12000.00"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, paid.ID)
	assert.NotEmpty(t, paid.Reference)
	assert.Equal(t, "VISA", paid.Method)
	assert.Equal(t, customer.ID, paid.CustomerID)
	require.NotNil(t, paid.Customer)
	assert.Equal(t, "john@x.com", paid.Customer.Email)
	assert.EqualValues(t, 1, s.calls.Load())

	stored, err := s.payments.GetPaymentByID(ctx, paid.ID)
	require.NoError(t, err)
	assert.Equal(t, paid.Reference, stored.Reference)
	assert.True(t, stored.Amount.Equal(decimal.RequireFromString("12000")))
	require.NotNil(t, stored.Customer)
	assert.Equal(t, "John Doe", stored.Customer.Name)

	list, err := s.payments.GetPaymentsByCustomerID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWorkflow_PaymentRejectedLeavesNoRows(t *testing.T) {
	s := newStack(t, http.StatusPaymentRequired, `{"message":"insufficient funds"}`)
	ctx := context.Background()

	customer, err := s.customers.CreateCustomer(ctx, &models.Customer{Name: "John Doe", Email: "john@x.com"})
	require.NoError(t, err)

	paid, err := s.payments.MakePayment(ctx, customer.ID, models.Payment{
		Method: "VISA",
		Amount: decimal.RequireFromString("12000.00"),
	})

	assert.Nil(t, paid)
	assert.ErrorIs(t, err, apperrors.ErrPaymentProcessing)
	assert.Contains(t, err.Error(), "insufficient funds")

	list, err := s.payments.GetPaymentsByCustomerID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWorkflow_UnknownCustomerNeverReachesProcessor(t *testing.T) {
	s := newStack(t, http.StatusCreated, "")

	_, err := s.payments.MakePayment(context.Background(), "missing", models.Payment{
		Method: "VISA",
		Amount: decimal.RequireFromString("1.00"),
	})

	assert.ErrorIs(t, err, apperrors.ErrCustomerNotFound)
	assert.Zero(t, s.calls.Load())
}

func TestWorkflow_CustomerRoundTrip(t *testing.T) {
	s := newStack(t, http.StatusCreated, "")
	ctx := context.Background()

	created, err := s.customers.CreateCustomer(ctx, &models.Customer{Name: "Jane Roe", Email: "jane@x.com"})
	require.NoError(t, err)

	found, err := s.customers.GetCustomerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", found.Name)
	assert.Equal(t, "jane@x.com", found.Email)

	_, err = s.customers.UpdateCustomer(ctx, created.ID, &models.Customer{Name: "Jane Doe", Email: "jane.doe@x.com"})
	require.NoError(t, err)

	found, err = s.customers.GetCustomerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", found.Name)
	assert.Equal(t, "jane.doe@x.com", found.Email)

	require.NoError(t, s.customers.DeleteCustomer(ctx, created.ID))
	_, err = s.customers.GetCustomerByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrCustomerNotFound)
}

func TestWorkflow_UpdateToBlankNameIsStored(t *testing.T) {
	s := newStack(t, http.StatusCreated, "")
	ctx := context.Background()

	created, err := s.customers.CreateCustomer(ctx, &models.Customer{Name: "Jane", Email: "j@x.com"})
	require.NoError(t, err)

	updated, err := s.customers.UpdateCustomer(ctx, created.ID, &models.Customer{Name: "", Email: "k@x.com"})
	require.NoError(t, err)

	stored, err := s.customers.GetCustomerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Name, stored.Name)
	assert.Equal(t, "", stored.Name)
	assert.Equal(t, "k@x.com", stored.Email)
}

func TestWorkflow_DeletingCustomerKeepsPayments(t *testing.T) {
	s := newStack(t, http.StatusCreated, "")
	ctx := context.Background()

	customer, err := s.customers.CreateCustomer(ctx, &models.Customer{Name: "John Doe", Email: "john@x.com"})
	require.NoError(t, err)
	_, err = s.payments.MakePayment(ctx, customer.ID, models.Payment{
		Method: "VISA",
		Amount: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	require.NoError(t, s.customers.DeleteCustomer(ctx, customer.ID))

	list, err := s.payments.GetPaymentsByCustomerID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWorkflow_ConcurrentCreatesWithSameEmail(t *testing.T) {
	s := newStack(t, http.StatusCreated, "")
	ctx := context.Background()

	const n = 8
	var (
		wg       sync.WaitGroup
		created  atomic.Int32
		rejected atomic.Int32
		other    atomic.Int32
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.customers.CreateCustomer(ctx, &models.Customer{
				Name:  fmt.Sprintf("Racer %d", i),
				Email: "race@x.com",
			})
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, apperrors.ErrCustomerAlreadyExists):
				rejected.Add(1)
			default:
				other.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, created.Load())
	assert.EqualValues(t, n-1, rejected.Load())
	assert.Zero(t, other.Load())

	all, err := s.customers.GetAllCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
