package usecase

import (
	"context"

	"sommelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ReplayResult summarizes a replay of pending counter updates.
type ReplayResult struct {
	Scanned int
	Applied int
	Failed  int
}

// ReconcileUsecase repairs drinks whose counters lag behind their reviews and wishes.
type ReconcileUsecase interface {
	// ReplayPending applies up to limit pending updates, oldest first.
	ReplayPending(ctx context.Context, limit int) (*ReplayResult, error)

	// ReplayUpdate applies one pending update. An already applied update is a no-op.
	ReplayUpdate(ctx context.Context, updateID uuid.UUID) error

	// PendingForDrink lists the updates a drink is still missing.
	PendingForDrink(ctx context.Context, drinkID uuid.UUID) ([]*entity.CounterUpdate, error)

	// RecountDrink rebuilds a drink's counters from the stored reviews and wishes.
	RecountDrink(ctx context.Context, drinkID uuid.UUID) (*entity.Drink, error)
}
