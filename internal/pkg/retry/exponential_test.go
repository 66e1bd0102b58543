package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
		Multiplier:  2,
	}
}

func TestRetrier_Execute(t *testing.T) {
	errTransient := errors.New("connection reset")
	errPermanent := errors.New("invalid recipient")

	tests := []struct {
		name          string
		config        Config
		failures      int
		failWith      error
		expectCalls   int
		expectErr     bool
		expectWrapped error
	}{
		{
			name:        "Succeeds first time",
			config:      fastConfig(3),
			expectCalls: 1,
		},
		{
			name:        "Succeeds after retries",
			config:      fastConfig(3),
			failures:    2,
			failWith:    errTransient,
			expectCalls: 3,
		},
		{
			name:          "Gives up after max attempts",
			config:        fastConfig(3),
			failures:      10,
			failWith:      errTransient,
			expectCalls:   3,
			expectErr:     true,
			expectWrapped: errTransient,
		},
		{
			name: "Stops on non retryable error",
			config: func() Config {
				c := fastConfig(5)
				c.RetryableFunc = func(err error) bool { return !errors.Is(err, errPermanent) }
				return c
			}(),
			failures:      10,
			failWith:      errPermanent,
			expectCalls:   1,
			expectErr:     true,
			expectWrapped: errPermanent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.config, logger.NewNopLogger())
			calls := 0

			err := r.Execute(context.Background(), func(ctx context.Context) error {
				calls++
				if calls <= tt.failures {
					return tt.failWith
				}
				return nil
			})

			assert.Equal(t, tt.expectCalls, calls)
			if tt.expectErr {
				assert.ErrorIs(t, err, tt.expectWrapped)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetrier_ContextCancelled(t *testing.T) {
	r := New(Config{MaxAttempts: 5, BaseDelay: time.Hour, Multiplier: 2}, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- r.Execute(ctx, func(ctx context.Context) error {
			calls++
			return errors.New("fail")
		})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	case <-time.After(time.Second):
		t.Fatal("retrier did not observe cancellation")
	}
}

func TestCalculateDelay(t *testing.T) {
	r := New(Config{MaxAttempts: 5, BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2}, logger.NewNopLogger())

	assert.Equal(t, 100*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 200*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, 300*time.Millisecond, r.calculateDelay(2))
}

func TestConfigFromModel(t *testing.T) {
	c := ConfigFromModel(models.RetryConfig{MaxAttempts: 5, BaseDelay: 500 * time.Millisecond})
	assert.Equal(t, 5, c.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, c.BaseDelay)

	c = ConfigFromModel(models.RetryConfig{})
	assert.Equal(t, DefaultConfig().MaxAttempts, c.MaxAttempts)
}
