package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// Domain event topics
const (
	TopicUserRegistered        = "user.registered"
	TopicVideoSubmitted        = "video.submitted"
	TopicSubscriptionActivated = "subscription.activated"
	TopicQuizSubmitted         = "quiz.submitted"
)

// publisher is the subset of *nsq.Producer the wrapper uses
type publisher interface {
	Publish(topic string, body []byte) error
	Ping() error
	Stop()
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer publisher
	logger   *logger.ZapLogger
}

// NewProducer creates a new NSQ producer and pings the daemon
func NewProducer(address string, l *logger.ZapLogger) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return newProducer(producer, l), nil
}

func newProducer(p publisher, l *logger.ZapLogger) *Producer {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Producer{producer: p, logger: l}
}

// Publish sends a JSON encoded message to the specified topic
func (p *Producer) Publish(topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.Publish(topic, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("Published message", logger.String("topic", topic), logger.Int("bytes", len(msgBytes)))
	return nil
}

// Ping checks the connection to nsqd
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
