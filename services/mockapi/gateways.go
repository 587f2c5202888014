package mockapi

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/jackmarvels/platform/services/mockapi EventGW

// EventGW publishes domain events raised by the mock backend
type EventGW interface {
	Publish(ctx context.Context, topic string, payload interface{}) error
}
