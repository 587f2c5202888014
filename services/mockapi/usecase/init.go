package usecase

import (
	"context"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/utils"
	"github.com/jackmarvels/platform/services/mockapi"
	"github.com/jackmarvels/platform/services/mockapi/gateway"
)

// MockAPIUC implements mockapi.MockAPIUC on top of a DataStore
type MockAPIUC struct {
	store   mockapi.DataStore
	issuer  mockapi.TokenIssuer
	eventGW mockapi.EventGW
	latency time.Duration
	ids     utils.IDGenerator
	now     func() time.Time
}

// NewMockAPIUC creates the mock backend. A nil issuer hands out the static
// development tokens and a nil gateway drops domain events.
func NewMockAPIUC(
	store mockapi.DataStore,
	issuer mockapi.TokenIssuer,
	eventGW mockapi.EventGW,
	latency time.Duration,
) *MockAPIUC {
	if issuer == nil {
		issuer = StaticIssuer{}
	}
	if eventGW == nil {
		eventGW = gateway.NoopGateway{}
	}
	return &MockAPIUC{
		store:   store,
		issuer:  issuer,
		eventGW: eventGW,
		latency: latency,
		ids:     utils.UUIDGenerator{},
		now:     models.Now,
	}
}

var _ mockapi.MockAPIUC = (*MockAPIUC)(nil)

func (u *MockAPIUC) wait(ctx context.Context) error {
	return mockapi.Wait(ctx, u.latency)
}

// publish is best effort; a lost event never fails the operation
func (u *MockAPIUC) publish(ctx context.Context, topic string, payload interface{}) {
	if err := u.eventGW.Publish(ctx, topic, payload); err != nil {
		logger.Warn("Failed to publish event",
			logger.String("topic", topic),
			logger.Err(err))
	}
}
