package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_Wait(t *testing.T) {
	policy := RetryPolicy{Attempts: 3, Backoff: 2.0}

	assert.Equal(t, 2*time.Second, policy.Wait(1))
	assert.Equal(t, 4*time.Second, policy.Wait(2))
	assert.Equal(t, 8*time.Second, policy.Wait(3))
	assert.Equal(t, time.Duration(0), policy.Wait(0))
	assert.Equal(t, time.Duration(0), RetryPolicy{Backoff: 0}.Wait(1))
}

func TestRetryPolicy_Do(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		calls := 0
		err := RetryPolicy{Attempts: 3, Backoff: 0.001}.Do(context.Background(), func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := RetryPolicy{Attempts: 3, Backoff: 0.001}.Do(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("rate limited")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts attempts and wraps last error", func(t *testing.T) {
		lastErr := errors.New("modelo caído")
		calls := 0
		err := RetryPolicy{Attempts: 3, Backoff: 0.001}.Do(context.Background(), func() error {
			calls++
			return lastErr
		})

		require.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.ErrorIs(t, err, lastErr)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		calls := 0
		err := RetryPolicy{Attempts: 5, Backoff: 10}.Do(ctx, func() error {
			calls++
			cancel()
			return errors.New("falla")
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero attempts still runs once", func(t *testing.T) {
		calls := 0
		_ = RetryPolicy{}.Do(context.Background(), func() error {
			calls++
			return errors.New("x")
		})
		assert.Equal(t, 1, calls)
	})
}
