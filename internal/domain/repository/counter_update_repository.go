package repository

import (
	"context"

	"sommelier/internal/domain/entity"
	"sommelier/internal/errors"

	"github.com/google/uuid"
)

// ErrCounterUpdateNotFound is returned when a counter update is not found.
var ErrCounterUpdateNotFound = errors.New("counter update not found")

// CounterUpdateRepository stores the drink counter changes owed by reviews and wishes.
type CounterUpdateRepository interface {
	// Create persists a new pending update.
	Create(ctx context.Context, update *entity.CounterUpdate) error

	// FindByID retrieves an update by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CounterUpdate, error)

	// FindByIDForUpdate retrieves an update and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.CounterUpdate, error)

	// MarkApplied records that the drink reflects the update.
	MarkApplied(ctx context.Context, update *entity.CounterUpdate) error

	// MarkFailed records a failed attempt on a still pending update.
	MarkFailed(ctx context.Context, update *entity.CounterUpdate) error

	// FindPending lists pending updates, oldest first, at most limit rows.
	FindPending(ctx context.Context, limit int) ([]*entity.CounterUpdate, error)

	// FindPendingByDrink lists the pending updates of one drink, oldest first.
	FindPendingByDrink(ctx context.Context, drinkID uuid.UUID) ([]*entity.CounterUpdate, error)
}
