package impl

import (
	"context"
	"log/slog"
	"time"

	"sommelier/config"
	deliverycontext "sommelier/internal/delivery/context"
	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/service"
	"sommelier/internal/usecase"

	"go.uber.org/fx"
)

const defaultDrinkUpdateTimeout = 3 * time.Second

// CounterSync runs phase 2 of a review or wish change: it asks the drink service to apply the
// pending counter update written in phase 1. Phase 1 is never undone; a failure here leaves the
// update pending, asks the repair worker to retry it and is reported as a PendingSyncError.
type CounterSync struct {
	drinks    usecase.DrinkUsecase
	publisher service.EventPublisher
	timeout   time.Duration
	publish   bool
	metrics   service.SyncMetrics
	logger    *slog.Logger
}

// CounterSyncParams holds dependencies for CounterSync, injected by Fx.
type CounterSyncParams struct {
	fx.In

	DrinkUsecase usecase.DrinkUsecase
	Publisher    service.EventPublisher
	Metrics      service.SyncMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCounterSync is the constructor for CounterSync.
func NewCounterSync(params CounterSyncParams) *CounterSync {
	timeout := defaultDrinkUpdateTimeout
	publish := true
	if saga := params.Config.Saga; saga != nil {
		if saga.DrinkUpdateTimeout > 0 {
			timeout = saga.DrinkUpdateTimeout
		}
		publish = saga.PublishRepairEvents
	}

	return &CounterSync{
		drinks:    params.DrinkUsecase,
		publisher: params.Publisher,
		timeout:   timeout,
		publish:   publish,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (s *CounterSync) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// apply runs phase 2 for update. The returned error is nil or a *PendingSyncError.
func (s *CounterSync) apply(ctx context.Context, update *entity.CounterUpdate) error {
	drinkCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.drinks.ApplyCounterUpdate(drinkCtx, update.ID)
	if err == nil {
		return nil
	}

	s.log(ctx).Warn("Drink counters left pending",
		slog.String("drink_id", update.DrinkID.String()),
		slog.String("update_id", update.ID.String()),
		slog.String("op", update.Op.String()),
		slog.Any("error", err),
	)

	s.requestRepair(ctx, update, err)

	return domainerrors.NewPendingSyncError(update.ID, update.DrinkID, err)
}

// requestRepair publishes a repair event. Failures are logged; the pending row is still swept by the worker.
func (s *CounterSync) requestRepair(ctx context.Context, update *entity.CounterUpdate, cause error) {
	if !s.publish {
		return
	}

	event := &service.CounterRepairEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UpdateID:  update.ID.String(),
		DrinkID:   update.DrinkID.String(),
		Op:        update.Op.String(),
		Reason:    cause.Error(),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	err := s.publisher.PublishCounterRepairEvent(publishCtx, event)
	s.metrics.ObserveRepairEvent(err == nil)
	if err != nil {
		s.log(ctx).Error("Failed to publish counter repair event",
			slog.String("update_id", event.UpdateID),
			slog.Any("error", err),
		)
	}
}
