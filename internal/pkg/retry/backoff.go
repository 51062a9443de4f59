package retry

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/hushryd/tracking-service/internal/pkg/logger"
)

// Config controls the backoff schedule
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool
}

// DefaultConfig returns a schedule suited to short-lived transient faults
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier executes functions with exponential backoff between attempts
type Retrier struct {
	cfg Config
}

// New creates a retrier with the given schedule
func New(cfg Config) *Retrier {
	return &Retrier{cfg: cfg}
}

// Do runs fn until it succeeds, the attempts are exhausted, or the context
// is done. The last error is returned when all attempts fail.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}

		if attempt == r.cfg.MaxRetries {
			break
		}

		delay := r.delayFor(attempt)
		logger.Debug("Retrying after failure",
			logger.Int("attempt", attempt+1),
			logger.String("delay", delay.String()),
			logger.Err(lastErr))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}

func (r *Retrier) delayFor(attempt int) time.Duration {
	delay := float64(r.cfg.BaseDelay) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if max := float64(r.cfg.MaxDelay); delay > max {
		delay = max
	}
	if r.cfg.Jitter {
		// Up to 25% randomization keeps synchronized retries apart
		delay += delay * 0.25 * rand.Float64()
	}
	return time.Duration(delay)
}
