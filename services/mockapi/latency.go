package mockapi

import (
	"context"
	"time"
)

// DefaultLatency is the simulated round trip of every mock operation
const DefaultLatency = 500 * time.Millisecond

type latencyKey struct{}

// WithLatency overrides the simulated latency for calls made with ctx.
// A zero duration disables the delay.
func WithLatency(ctx context.Context, d time.Duration) context.Context {
	return context.WithValue(ctx, latencyKey{}, d)
}

// LatencyFrom returns the latency set by WithLatency, or fallback
func LatencyFrom(ctx context.Context, fallback time.Duration) time.Duration {
	if d, ok := ctx.Value(latencyKey{}).(time.Duration); ok {
		return d
	}
	return fallback
}

// Wait blocks for the latency applicable to ctx or until ctx is done
func Wait(ctx context.Context, fallback time.Duration) error {
	d := LatencyFrom(ctx, fallback)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
