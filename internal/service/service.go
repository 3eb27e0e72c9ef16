package service

import (
	"context"

	"github.com/jeffleon2/draftea-customer-payment-service/internal/apperrors"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/messages"
	"github.com/sirupsen/logrus"
)

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

// publish emits an event for a write that already happened. Failures are
// logged only; the write is never undone.
func publish(ctx context.Context, p Publisher, topic, key string, event interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, topic, key, event); err != nil {
		logrus.WithFields(logrus.Fields{
			"topic": topic,
			"key":   key,
		}).Errorf("error publishing event: %s", err.Error())
	}
}

func serviceError(f messages.Formatter, err error) error {
	return apperrors.Wrap(apperrors.KindService, f.Format(messages.ServiceError, err.Error()), err)
}
