package pubsub

import (
	"context"
	"log/slog"
	"time"

	"sommelier/config"
	"sommelier/internal/domain/service"

	"github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen is returned while the breaker rejects publishes.
var ErrCircuitOpen = gobreaker.ErrOpenState

// breakerPublisher guards a publisher with a circuit breaker so an unavailable broker
// fails repair publishing fast instead of stalling every request that needs a repair.
type breakerPublisher struct {
	next    service.EventPublisher
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func defaultBreakerConfig() *config.BreakerConfig {
	return &config.BreakerConfig{
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

// NewBreakerPublisher wraps next with a circuit breaker named name.
func NewBreakerPublisher(name string, next service.EventPublisher, cfg *config.BreakerConfig, logger *slog.Logger) service.EventPublisher {
	if cfg == nil {
		cfg = defaultBreakerConfig()
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &breakerPublisher{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
	}
}

// PublishCounterRepairEvent publishes through the breaker
func (p *breakerPublisher) PublishCounterRepairEvent(ctx context.Context, event *service.CounterRepairEvent) error {
	_, err := p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.next.PublishCounterRepairEvent(ctx, event)
	})

	return err
}

// Close closes the wrapped publisher
func (p *breakerPublisher) Close() error {
	return p.next.Close()
}
