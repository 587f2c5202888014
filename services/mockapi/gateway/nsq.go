package gateway

import (
	"context"

	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/retry"
	"github.com/jackmarvels/platform/services/mockapi"
)

// Publisher is satisfied by *nsq.Producer
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// NSQGateway publishes mock backend domain events to NSQ
type NSQGateway struct {
	producer Publisher
	retrier  *retry.Retrier
}

// NewNSQGateway creates a gateway that retries failed publishes
func NewNSQGateway(producer Publisher, retrier *retry.Retrier) *NSQGateway {
	if retrier == nil {
		retrier = retry.NewWithDefaults(nil)
	}
	return &NSQGateway{
		producer: producer,
		retrier:  retrier,
	}
}

// Publish sends payload to topic, retrying with backoff
func (g *NSQGateway) Publish(ctx context.Context, topic string, payload interface{}) error {
	return g.retrier.Execute(ctx, func(context.Context) error {
		return g.producer.Publish(topic, payload)
	})
}

// NoopGateway drops every event. Used when NSQ is disabled.
type NoopGateway struct{}

// Publish implements mockapi.EventGW
func (NoopGateway) Publish(_ context.Context, topic string, _ interface{}) error {
	logger.Debug("Event publishing disabled, dropping event", logger.String("topic", topic))
	return nil
}

var (
	_ mockapi.EventGW = (*NSQGateway)(nil)
	_ mockapi.EventGW = NoopGateway{}
)
