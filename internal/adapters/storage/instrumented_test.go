package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/platform/config"
)

func newTestBreaker(maxFailures int) *Breaker {
	return NewBreaker(&config.CircuitBreakerConfig{
		MaxFailures:   maxFailures,
		Timeout:       time.Minute,
		HalfOpenLimit: 1,
	}, nil, nil)
}

func TestBreaker_PassesThroughResults(t *testing.T) {
	t.Parallel()

	b := newTestBreaker(3)

	err := b.execute(context.Background(), "users", "find_all", func() error { return nil })
	assert.NoError(t, err)

	boom := errors.New("boom")
	err = b.execute(context.Background(), "users", "find_all", func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	b := newTestBreaker(3)
	infra := errors.New("dial tcp: connection refused")

	for range 3 {
		err := b.execute(context.Background(), "users", "find_all", func() error { return infra })
		require.ErrorIs(t, err, infra)
	}

	// Breaker is open now: calls are rejected without reaching the store.
	called := false
	err := b.execute(context.Background(), "users", "find_all", func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.False(t, called)
}

func TestBreaker_DomainErrorsDoNotTrip(t *testing.T) {
	t.Parallel()

	b := newTestBreaker(2)
	notFound := fmt.Errorf("record not found: %w", domain.ErrNotFound)
	conflict := fmt.Errorf("duplicate key: %w", domain.ErrConflict)

	for range 10 {
		err := b.execute(context.Background(), "users", "find_by_id", func() error { return notFound })
		require.ErrorIs(t, err, domain.ErrNotFound)
		err = b.execute(context.Background(), "users", "create", func() error { return conflict })
		require.ErrorIs(t, err, domain.ErrConflict)
	}

	err := b.execute(context.Background(), "users", "find_all", func() error { return nil })
	assert.NoError(t, err)
}

func TestBreaker_HealthCheck(t *testing.T) {
	t.Parallel()

	b := newTestBreaker(1)
	assert.NoError(t, b.HealthCheck(context.Background()))
	assert.Equal(t, "store-breaker", b.Name())

	_ = b.execute(context.Background(), "users", "find_all", func() error {
		return errors.New("down")
	})

	err := b.HealthCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open")
}
