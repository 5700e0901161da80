package memory

import (
	"context"
	"slices"

	"sommelier/internal/domain/entity"
	"sommelier/internal/domain/repository"

	"github.com/google/uuid"
)

type counterUpdateRepository struct {
	store *Store
	inTx  bool
}

// Create persists a new pending update.
func (repo *counterUpdateRepository) Create(ctx context.Context, update *entity.CounterUpdate) error {
	return repo.store.access(repo.inTx, func() error {
		repo.store.updates[update.ID] = *update

		return nil
	})
}

// FindByID retrieves an update by its unique ID.
func (repo *counterUpdateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CounterUpdate, error) {
	var found *entity.CounterUpdate
	err := repo.store.access(repo.inTx, func() error {
		update, ok := repo.store.updates[id]
		if !ok {
			return repository.ErrCounterUpdateNotFound
		}
		found = &update

		return nil
	})

	return found, err
}

// FindByIDForUpdate is FindByID; the store lock already serializes writers.
func (repo *counterUpdateRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.CounterUpdate, error) {
	return repo.FindByID(ctx, id)
}

// MarkApplied records that the drink reflects the update.
func (repo *counterUpdateRepository) MarkApplied(ctx context.Context, update *entity.CounterUpdate) error {
	return repo.save(update)
}

// MarkFailed records a failed attempt on a still pending update.
func (repo *counterUpdateRepository) MarkFailed(ctx context.Context, update *entity.CounterUpdate) error {
	return repo.save(update)
}

func (repo *counterUpdateRepository) save(update *entity.CounterUpdate) error {
	return repo.store.access(repo.inTx, func() error {
		existing, ok := repo.store.updates[update.ID]
		if !ok {
			return repository.ErrCounterUpdateNotFound
		}
		existing.Status = update.Status
		existing.Attempts = update.Attempts
		existing.LastError = update.LastError
		existing.AppliedAt = update.AppliedAt
		repo.store.updates[update.ID] = existing

		return nil
	})
}

// FindPending lists pending updates, oldest first.
func (repo *counterUpdateRepository) FindPending(ctx context.Context, limit int) ([]*entity.CounterUpdate, error) {
	pending := repo.filter(func(u *entity.CounterUpdate) bool {
		return !u.IsApplied()
	})
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}

	return pending, nil
}

// FindPendingByDrink lists the pending updates of one drink, oldest first.
func (repo *counterUpdateRepository) FindPendingByDrink(ctx context.Context, drinkID uuid.UUID) ([]*entity.CounterUpdate, error) {
	return repo.filter(func(u *entity.CounterUpdate) bool {
		return !u.IsApplied() && u.DrinkID == drinkID
	}), nil
}

func (repo *counterUpdateRepository) filter(keep func(*entity.CounterUpdate) bool) []*entity.CounterUpdate {
	var updates []*entity.CounterUpdate
	_ = repo.store.access(repo.inTx, func() error {
		for _, update := range repo.store.updates {
			u := update
			if keep(&u) {
				updates = append(updates, &u)
			}
		}

		return nil
	})

	slices.SortFunc(updates, func(a, b *entity.CounterUpdate) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return updates
}
