package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jeffleon2/draftea-customer-payment-service/config"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	Writers     map[string]messageWriter
	RetryConfig config.RetryConfig
}

// NewKafkaPublisher creates one writer per topic. Publishing to a topic
// outside topics fails.
func NewKafkaPublisher(brokers []string, topics []string, retryConfig config.RetryConfig) *KafkaPublisher {
	writers := make(map[string]messageWriter)
	for _, t := range topics {
		writers[t] = &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    t,
			Balancer: &kafka.LeastBytes{},
		}
	}

	return newPublisher(writers, retryConfig)
}

func newPublisher(writers map[string]messageWriter, retryConfig config.RetryConfig) *KafkaPublisher {
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}

	return &KafkaPublisher{
		Writers:     writers,
		RetryConfig: retryConfig,
	}
}

// Publish writes message as JSON to topic, keyed by key.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key string, message interface{}) error {
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	return p.publishWithRetry(ctx, writer, msg, topic)
}

// Close flushes and closes every writer.
func (p *KafkaPublisher) Close() error {
	var errs []error
	for topic, w := range p.Writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing writer for %s: %w", topic, err))
		}
	}
	return errors.Join(errs...)
}

// publishWithRetry writes msg, backing off between failed attempts. It stops
// early when ctx is done.
func (p *KafkaPublisher) publishWithRetry(ctx context.Context, writer messageWriter, msg kafka.Message, topic string) error {
	log := logrus.WithFields(logrus.Fields{
		"topic": topic,
		"key":   string(msg.Key),
	})

	var err error
	for attempt := 1; attempt <= p.RetryConfig.MaxAttempts; attempt++ {
		if err = writer.WriteMessages(ctx, msg); err == nil {
			if attempt > 1 {
				log.WithField("attempt", attempt).Info("event published after retry")
			}
			return nil
		}
		if attempt == p.RetryConfig.MaxAttempts {
			break
		}

		delay := p.calculateBackoff(attempt - 1)
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"delay":   delay.String(),
		}).Warnf("event not published, retrying: %s", err.Error())

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("publish to %s cancelled: %w", topic, ctx.Err())
		}
	}

	return fmt.Errorf("publish to %s failed after %d attempts: %w", topic, p.RetryConfig.MaxAttempts, err)
}

// calculateBackoff doubles BaseDelay per attempt up to MaxDelay. With jitter
// the result is spread over [0.85, 1.15] of that value.
func (p *KafkaPublisher) calculateBackoff(attempt int) time.Duration {
	delay := p.RetryConfig.MaxDelay
	if attempt < 32 {
		if d := p.RetryConfig.BaseDelay << attempt; d > 0 && d < delay {
			delay = d
		}
	}

	if p.RetryConfig.Jitter {
		spread := 0.85 + 0.3*rand.Float64()
		delay = time.Duration(float64(delay) * spread)
	}

	return delay
}
