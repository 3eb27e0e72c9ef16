package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-customer-payment-service/config"
	handlers "github.com/jeffleon2/draftea-customer-payment-service/internal/handlers"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/handlers/mocks"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/messages"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/publisher"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockCustomerService, *mocks.MockPaymentService) {
	gin.SetMode(gin.TestMode)
	msgs, err := messages.NewCatalog("en")
	require.NoError(t, err)

	customers := mocks.NewMockCustomerService(t)
	payments := mocks.NewMockPaymentService(t)

	router := gin.New()
	registerRoutes(router,
		handlers.NewCustomerHandler(customers, msgs),
		handlers.NewPaymentHandler(payments, msgs),
	)
	return router, customers, payments
}

func TestRoutes_HealthAndMetrics(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, path := range []string{"/health", "/metrics"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRoutes_APIv1(t *testing.T) {
	router, customers, payments := newTestRouter(t)

	customers.EXPECT().GetAllCustomers(mock.Anything).Return([]models.Customer{}, nil).Once()
	payments.EXPECT().GetPaymentsByCustomerID(mock.Anything, "c1").Return([]models.Payment{}, nil).Once()
	payments.EXPECT().GetPaymentByID(mock.Anything, "p1").Return(&models.Payment{ID: "p1"}, nil).Once()

	for _, path := range []string{"/api/v1/customers", "/api/v1/customers/c1/payments", "/api/v1/payments/p1"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestNewPublisher_KafkaDisabledLogsOnly(t *testing.T) {
	p := newPublisher(config.Kafka{Enabled: false})

	assert.IsType(t, &publisher.LogPublisher{}, p)
	assert.NoError(t, p.Close())
}

func TestNewPublisher_KafkaEnabled(t *testing.T) {
	p := newPublisher(config.Kafka{
		Enabled:       true,
		Brokers:       "localhost:9092",
		PublishTopics: models.PaymentCreatedEventTopic,
	})

	kp, ok := p.(*publisher.KafkaPublisher)
	require.True(t, ok)
	assert.Contains(t, kp.Writers, models.PaymentCreatedEventTopic)
	assert.NoError(t, p.Close())
}

func TestSetupLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	setupLogging("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	setupLogging("loud")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
