package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/platform/config"
	"github.com/jsamuelsen11/task-manager-service/internal/platform/telemetry"
)

// Breaker guards store access with a shared circuit breaker and records
// per-operation metrics. Both repositories run through the same breaker:
// when the database is down it is down for everyone, so one set of
// consecutive failures should trip all store access at once.
//
// Domain-level outcomes (not found, conflict, validation) are successes
// from the breaker's point of view; only infrastructure failures count
// toward tripping.
type Breaker struct {
	cb      *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewBreaker creates a store-access circuit breaker from configuration.
// If metrics is nil, metric recording is skipped.
func NewBreaker(cfg *config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Breaker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "database",
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, domain.ErrNotFound) ||
				errors.Is(err, domain.ErrConflict)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Breaker{cb: cb, metrics: metrics, logger: logger}
}

// execute runs fn through the circuit breaker and records duration and
// count metrics labeled with the entity and operation.
func (b *Breaker) execute(ctx context.Context, entity, op string, fn func() error) error {
	start := time.Now()

	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})

	rejected := errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
	b.recordMetrics(ctx, entity, op, start, err, rejected)

	if rejected {
		return fmt.Errorf("store access rejected: %w", domain.ErrUnavailable)
	}
	return err
}

func (b *Breaker) recordMetrics(ctx context.Context, entity, op string, start time.Time, err error, rejected bool) {
	if b.metrics == nil {
		return
	}

	result := "success"
	switch {
	case rejected:
		result = "circuit_open"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBEntity.String(entity),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	b.metrics.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	b.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

// State exposes the breaker state for health reporting.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// Name identifies this component in health check results.
func (b *Breaker) Name() string {
	return "store-breaker"
}

// HealthCheck reports store availability based on the breaker state alone;
// no database round trip is made.
func (b *Breaker) HealthCheck(_ context.Context) error {
	switch state := b.cb.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return errors.New("store-breaker: degraded (circuit breaker half-open)")
	case gobreaker.StateOpen:
		return errors.New("store-breaker: failing (circuit breaker open)")
	default:
		return fmt.Errorf("store-breaker: unknown circuit breaker state %v", state)
	}
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
