package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Warn("Error can't get the environment variables by file")
		}
	}

	if err := env.Parse(&Config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Processor
}

type APP struct {
	PORT     string `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info"`
	Locale   string `env:"APP_LOCALE" envDefault:"en"`
}

type DB struct {
	DRIVER     string `env:"DB_DRIVER" envDefault:"postgres"`
	HOST       string `env:"DB_HOST"`
	USER       string `env:"DB_USER"`
	PASSWORD   string `env:"DB_PASSWORD"`
	NAME       string `env:"DB_NAME"`
	PORT       string `env:"DB_PORT"`
	SSLMODE    string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"payments.db"`
}

// Processor points at the external payment processor.
type Processor struct {
	BaseURL string        `env:"PROCESSOR_BASE_URL" envDefault:"https://api.example.com/payments"`
	Timeout time.Duration `env:"PROCESSOR_TIMEOUT" envDefault:"10s"`
}

type Kafka struct {
	Enabled       bool   `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.created,customers.created,customers.updated,customers.deleted"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

func (k Kafka) BrokerList() []string {
	return splitList(k.Brokers)
}

func (k Kafka) TopicList() []string {
	return splitList(k.PublishTopics)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
