package service

import (
	"context"
	"errors"

	"github.com/jeffleon2/draftea-customer-payment-service/internal/apperrors"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/messages"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/metrics"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CustomerRepo defines the interface for customer data persistence operations.
type CustomerRepo interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetBy(ctx context.Context, condition string, value interface{}) ([]models.Customer, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, customer *models.Customer, id string) error
	Delete(ctx context.Context, id string) error
}

// CustomerService manages the customer lifecycle.
//
// Email uniqueness is checked before insert. The check and the insert are not
// atomic, so two concurrent creates with the same email can both pass it; the
// unique index on email then rejects the loser, which is reported as
// CustomerAlreadyExists as well.
type CustomerService struct {
	Repo      CustomerRepo
	Publisher Publisher
	Messages  messages.Formatter
}

// NewCustomerService creates a CustomerService.
func NewCustomerService(repo CustomerRepo, publisher Publisher, msgs messages.Formatter) *CustomerService {
	return &CustomerService{
		Repo:      repo,
		Publisher: publisher,
		Messages:  msgs,
	}
}

// CreateCustomer stores customer unless its email is already taken.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	existing, err := s.Repo.GetBy(ctx, "email = ?", customer.Email)
	if err != nil {
		return nil, serviceError(s.Messages, err)
	}
	if len(existing) > 0 {
		return nil, s.alreadyExists(customer.Email)
	}

	if err := s.Repo.Create(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.alreadyExists(customer.Email)
		}
		return nil, serviceError(s.Messages, err)
	}

	logrus.WithField("customer_id", customer.ID).Info("customer created")
	metrics.CustomersTotal.WithLabelValues("created").Inc()
	publish(ctx, s.Publisher, models.CustomerCreatedEventTopic, customer.ID, models.NewCustomerEvent(customer))

	return customer, nil
}

// UpdateCustomer overwrites name and email only.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id string, patch *models.Customer) (*models.Customer, error) {
	existing, err := s.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = patch.Name
	existing.Email = patch.Email

	if err := s.Repo.Update(ctx, existing, id); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.alreadyExists(patch.Email)
		}
		return nil, serviceError(s.Messages, err)
	}

	logrus.WithField("customer_id", id).Info("customer updated")
	metrics.CustomersTotal.WithLabelValues("updated").Inc()
	publish(ctx, s.Publisher, models.CustomerUpdatedEventTopic, id, models.NewCustomerEvent(existing))

	return existing, nil
}

// DeleteCustomer removes the customer. Its payments are left in place.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	exists, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return serviceError(s.Messages, err)
	}
	if !exists {
		return s.notFound(id)
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return serviceError(s.Messages, err)
	}

	logrus.WithField("customer_id", id).Info("customer deleted")
	metrics.CustomersTotal.WithLabelValues("deleted").Inc()
	publish(ctx, s.Publisher, models.CustomerDeletedEventTopic, id, models.NewCustomerEvent(&models.Customer{ID: id}))

	return nil
}

// GetCustomerByID returns the customer or CustomerNotFound.
func (s *CustomerService) GetCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound(id)
		}
		return nil, serviceError(s.Messages, err)
	}
	if customer == nil {
		return nil, s.notFound(id)
	}
	return customer, nil
}

// GetAllCustomers returns every customer, or an empty slice.
func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, serviceError(s.Messages, err)
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	return customers, nil
}

func (s *CustomerService) notFound(id string) error {
	return apperrors.New(apperrors.KindCustomerNotFound, s.Messages.Format(messages.CustomerNotFound, id))
}

func (s *CustomerService) alreadyExists(email string) error {
	return apperrors.New(apperrors.KindCustomerAlreadyExists, s.Messages.Format(messages.CustomerAlreadyExists, email))
}
