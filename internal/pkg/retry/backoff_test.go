package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
	}
}

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	r := New(fastConfig(3))

	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	r := New(fastConfig(2))

	calls := 0
	wantErr := errors.New("still down")
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 3, calls) // initial attempt plus two retries
}

func TestDoStopsOnContextCancel(t *testing.T) {
	r := New(Config{
		MaxRetries: 10,
		BaseDelay:  time.Hour,
		MaxDelay:   time.Hour,
		Multiplier: 2.0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := r.Do(ctx, func(ctx context.Context) error {
		return errors.New("always failing")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDelayIsBounded(t *testing.T) {
	r := New(Config{
		MaxRetries: 5,
		BaseDelay:  time.Second,
		MaxDelay:   2 * time.Second,
		Multiplier: 10.0,
	})

	assert.LessOrEqual(t, r.delayFor(4), 2*time.Second)
}
