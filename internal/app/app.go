package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-customer-payment-service/config"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/database"
	handlers "github.com/jeffleon2/draftea-customer-payment-service/internal/handlers"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/messages"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/metrics"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/models"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/processor"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/publisher"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

type eventPublisher interface {
	service.Publisher
	Close() error
}

type App struct {
	config    *config.Config
	publisher eventPublisher
	Router    *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) error {
	a.config = cfg
	setupLogging(cfg.APP.LogLevel)

	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	if os.Getenv("GO_ENV") == "local" {
		if err := database.SeedCustomers(db); err != nil {
			return fmt.Errorf("failed to seed customers: %w", err)
		}
	}

	msgs, err := messages.NewCatalog(cfg.APP.Locale)
	if err != nil {
		return fmt.Errorf("failed to build message catalog: %w", err)
	}

	metrics.RegisterMetrics(prometheus.DefaultRegisterer)

	a.publisher = newPublisher(cfg.Kafka)

	customerRepo := posgrest.New[models.Customer](db)
	paymentRepo := posgrest.New[models.Payment](db, "Customer")
	processorClient := processor.NewClient(cfg.Processor.BaseURL, processor.WithTimeout(cfg.Processor.Timeout))

	customerService := service.NewCustomerService(customerRepo, a.publisher, msgs)
	paymentService := service.NewPaymentService(paymentRepo, customerRepo, processorClient, a.publisher, msgs)

	customerHandler := handlers.NewCustomerHandler(customerService, msgs)
	paymentHandler := handlers.NewPaymentHandler(paymentService, msgs)

	a.Router = gin.Default()
	a.RegisterRoutes(customerHandler, paymentHandler)

	return nil
}

// Run serves until ctx is cancelled, then drains in-flight requests and
// closes the event publisher.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return errors.Join(err, a.publisher.Close())
		}
	case <-ctx.Done():
	}

	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(server.Shutdown(shutdownCtx), a.publisher.Close())
}

func newPublisher(cfg config.Kafka) eventPublisher {
	if !cfg.Enabled {
		logrus.Info("kafka disabled, events are only logged")
		return publisher.NewLogPublisher()
	}
	return publisher.NewKafkaPublisher(cfg.BrokerList(), cfg.TopicList(), cfg.GetRetryConfig())
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
