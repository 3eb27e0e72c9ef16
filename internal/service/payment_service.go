package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/apperrors"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/messages"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/metrics"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/processor"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PaymentRepo defines the interface for payment data persistence operations.
// Payments are never updated or deleted.
type PaymentRepo interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	GetBy(ctx context.Context, condition string, value interface{}) ([]models.Payment, error)
}

// CustomerFinder resolves the customer a payment is made for.
type CustomerFinder interface {
	GetByID(ctx context.Context, id string) (*models.Customer, error)
}

// ProcessorClient is the outbound boundary to the external payment processor.
type ProcessorClient interface {
	ProcessPayment(ctx context.Context, req processor.PaymentRequest) (*processor.Response, error)
	ProcessReversal(ctx context.Context, req processor.ReversalRequest) (*processor.Response, error)
}

// PaymentService runs the payment workflow: resolve the customer, have the
// external processor accept the payment, then persist it.
type PaymentService struct {
	Repo         PaymentRepo
	Customers    CustomerFinder
	Processor    ProcessorClient
	Publisher    Publisher
	Messages     messages.Formatter
	NewReference func() string
}

// NewPaymentService creates a PaymentService that generates references with
// uuid.NewString.
func NewPaymentService(
	repo PaymentRepo,
	customers CustomerFinder,
	client ProcessorClient,
	publisher Publisher,
	msgs messages.Formatter,
) *PaymentService {
	return &PaymentService{
		Repo:         repo,
		Customers:    customers,
		Processor:    client,
		Publisher:    publisher,
		Messages:     msgs,
		NewReference: uuid.NewString,
	}
}

// MakePayment charges draft against the customer identified by customerID.
//
// A fresh reference is generated for every call. Nothing is written unless the
// processor answers 201 Created. If the write fails after the processor has
// accepted the payment, a ServiceError is returned and the processor is not
// told: no reversal is issued.
//
// The processor call and the write are detached from ctx cancellation so a
// caller going away cannot abort them half way; the client timeout bounds
// the call instead.
func (s *PaymentService) MakePayment(ctx context.Context, customerID string, draft models.Payment) (*models.Payment, error) {
	reference := s.NewReference()
	log := logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"reference":   reference,
	})

	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	payment, request := buildPayment(customer, draft, reference)

	ctx = context.WithoutCancel(ctx)
	res, callErr := s.Processor.ProcessPayment(ctx, request)
	if err := processor.Classify(processor.OperationPayment, reference, res, callErr, s.Messages); err != nil {
		metrics.PaymentsTotal.WithLabelValues(metrics.PaymentStatusRejected).Inc()
		log.Warnf("payment not accepted by processor: %s", err.Error())
		return nil, err
	}

	if err := s.commit(ctx, &payment); err != nil {
		metrics.PaymentsTotal.WithLabelValues(metrics.PaymentStatusPersistFailed).Inc()
		log.Errorf("payment accepted by processor but not stored: %s", err.Error())
		return nil, err
	}

	metrics.PaymentsTotal.WithLabelValues(metrics.PaymentStatusProcessed).Inc()
	metrics.PaymentAmounts.WithLabelValues(payment.Method).Observe(payment.Amount.InexactFloat64())
	log.WithField("payment_id", payment.ID).Info("payment processed")

	publish(ctx, s.Publisher, models.PaymentCreatedEventTopic, payment.ID, models.NewPaymentCreatedEvent(&payment))

	return &payment, nil
}

// buildPayment enriches a copy of draft with the customer and reference and
// derives the processor request from it. The caller's draft is not touched.
func buildPayment(customer *models.Customer, draft models.Payment, reference string) (models.Payment, processor.PaymentRequest) {
	payment := models.Payment{
		Method:     draft.Method,
		Amount:     draft.Amount,
		CustomerID: customer.ID,
		Customer:   customer,
		Reference:  reference,
	}
	return payment, processor.NewPaymentRequest(&payment)
}

func (s *PaymentService) commit(ctx context.Context, payment *models.Payment) error {
	if payment.Customer == nil || payment.CustomerID == "" {
		return apperrors.New(apperrors.KindService, s.Messages.Format(messages.ServiceError, "payment has no customer"))
	}
	if err := s.Repo.Create(ctx, payment); err != nil {
		return serviceError(s.Messages, err)
	}
	return nil
}

func (s *PaymentService) findCustomer(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.Customers.GetByID(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, serviceError(s.Messages, err)
	}
	if customer == nil {
		return nil, apperrors.New(apperrors.KindCustomerNotFound, s.Messages.Format(messages.CustomerNotFound, id))
	}
	return customer, nil
}

// GetPaymentByID returns the stored payment with its customer preloaded, or
// PaymentNotFound.
func (s *PaymentService) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.Repo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, serviceError(s.Messages, err)
	}
	if payment == nil {
		return nil, apperrors.New(apperrors.KindPaymentNotFound, s.Messages.Format(messages.PaymentNotFound, id))
	}
	return payment, nil
}

// GetPaymentsByCustomerID returns an empty slice both for a customer without
// payments and for an unknown customer.
func (s *PaymentService) GetPaymentsByCustomerID(ctx context.Context, customerID string) ([]models.Payment, error) {
	payments, err := s.Repo.GetBy(ctx, "customer_id = ?", customerID)
	if err != nil {
		return nil, serviceError(s.Messages, err)
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}
