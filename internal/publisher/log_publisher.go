package publisher

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogPublisher stands in for Kafka when it is disabled.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(ctx context.Context, topic string, key string, message interface{}) error {
	logrus.WithFields(logrus.Fields{
		"topic": topic,
		"key":   key,
	}).Debugf("event not published, kafka disabled: %+v", message)
	return nil
}

func (LogPublisher) Close() error {
	return nil
}
