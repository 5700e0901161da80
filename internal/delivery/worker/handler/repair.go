package handler

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "sommelier/internal/delivery/context"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/service"
	"sommelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// retryableError wraps an error to indicate the message should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether redelivering the message could succeed.
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// RepairProcessor applies the counter update named by a repair event. It is shared by the push
// endpoint and the Kafka consumer.
type RepairProcessor struct {
	logger    *slog.Logger
	reconcile usecase.ReconcileUsecase
}

// NewRepairProcessor is the constructor for RepairProcessor, injected by Fx.
func NewRepairProcessor(logger *slog.Logger, reconcile usecase.ReconcileUsecase) *RepairProcessor {
	return &RepairProcessor{logger: logger, reconcile: reconcile}
}

// Process replays the update. Missing updates, missing drinks and malformed events are reported
// as non-retryable; anything else is retryable.
func (p *RepairProcessor) Process(ctx context.Context, event *service.CounterRepairEvent) error {
	log := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	updateID, err := uuid.Parse(event.UpdateID)
	if err != nil {
		return domainerrors.Invalid("repair event has a malformed update_id")
	}

	log.Info("[Worker] Replaying counter update",
		slog.String("update_id", event.UpdateID),
		slog.String("drink_id", event.DrinkID),
		slog.String("op", event.Op),
	)

	if err := p.reconcile.ReplayUpdate(ctx, updateID); err != nil {
		switch domainerrors.KindOf(err) {
		case domainerrors.KindNotFound, domainerrors.KindInvalid:
			return err
		default:
			return newRetryableError(err)
		}
	}

	log.Info("[Worker] Counter update applied", slog.String("update_id", event.UpdateID))

	return nil
}

// ProcessWithTracing is Process with the event's request id attached to ctx and its logger.
func (p *RepairProcessor) ProcessWithTracing(ctx context.Context, event *service.CounterRepairEvent, requestID string) error {
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, p.logger.With(slog.String("request_id", requestID)))

	return p.Process(ctx, event)
}
