// Package pubsub publishes counter repair events for drink updates that could not be applied inline.
package pubsub

import (
	"context"
	"log/slog"

	"sommelier/config"
	"sommelier/internal/domain/constants"
	"sommelier/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishCounterRepairEvent(ctx context.Context, event *service.CounterRepairEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("update_id", event.UpdateID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// eventAttributes are the message attributes shared by every transport, used for filtering and tracing.
func eventAttributes(event *service.CounterRepairEvent) map[string]string {
	attributes := map[string]string{
		"update_id": event.UpdateID,
		"drink_id":  event.DrinkID,
		"op":        event.Op,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	psCfg := cfg.PubSub
	disabled := cfg.Saga != nil && !cfg.Saga.PublishRepairEvents

	// If PubSub is not configured, return a no-op publisher
	if psCfg == nil || psCfg.Provider == "" || disabled {
		logger.Info("Repair events disabled, using no-op publisher")

		return NewNoopPublisher(logger), nil
	}

	var publisher service.EventPublisher
	var err error

	switch psCfg.Provider {
	case constants.PubSubProviderLocal:
		if psCfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", psCfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(psCfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if psCfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if psCfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		publisher, err = NewGooglePubSubPublisher(ctx, psCfg.ProjectID, psCfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderKafka:
		if len(psCfg.Brokers) == 0 {
			return nil, errors.New("brokers are required for kafka provider")
		}
		if psCfg.TopicID == "" {
			return nil, errors.New("topic ID is required for kafka provider")
		}

		publisher = NewKafkaPublisher(psCfg.Brokers, psCfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", psCfg.Provider)
	}

	return NewBreakerPublisher("repair-events-"+psCfg.Provider, publisher, psCfg.Breaker, logger), nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
