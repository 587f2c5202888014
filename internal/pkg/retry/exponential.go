package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/logger"
)

// Operation is a unit of work that may be attempted more than once
type Operation func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries  int              // retries after the first attempt
	BaseDelay   time.Duration    // delay before the first retry
	MaxDelay    time.Duration    // upper bound for any single delay
	Multiplier  float64          // exponential backoff multiplier
	Jitter      bool             // add up to 10% random jitter
	IsRetryable func(error) bool // nil retries every error
}

// DefaultConfig returns a default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier runs operations with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a retrier. A nil logger uses the global logger.
func New(config Config, l *logger.ZapLogger) *Retrier {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 1
	}
	return &Retrier{config: config, logger: l}
}

// NewWithDefaults creates a retrier with DefaultConfig
func NewWithDefaults(l *logger.ZapLogger) *Retrier {
	return New(DefaultConfig(), l)
}

// Execute runs op until it succeeds, returns a non-retryable error, the
// attempts are exhausted or ctx is done.
func (r *Retrier) Execute(ctx context.Context, op Operation) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := op(ctx)
		if err == nil {
			if attempt > 0 {
				r.logger.Info("Operation succeeded after retries",
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if r.config.IsRetryable != nil && !r.config.IsRetryable(err) {
			r.logger.Debug("Error is not retryable, stopping",
				logger.Err(err),
				logger.Int("attempt", attempt+1))
			return err
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		r.logger.Debug("Operation failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	r.logger.Warn("Operation failed after all retries",
		logger.Err(lastErr),
		logger.Int("attempts", r.config.MaxRetries+1))

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	d := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxDelay > 0 && d > float64(r.config.MaxDelay) {
		d = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		d += d * 0.1 * rand.Float64()
	}
	return time.Duration(d)
}

// TransientOnly retries network and timeout failures and nothing else
func TransientOnly(err error) bool {
	switch apperrors.KindOf(err) {
	case apperrors.KindNetwork, apperrors.KindTimeout:
		return true
	default:
		return false
	}
}
