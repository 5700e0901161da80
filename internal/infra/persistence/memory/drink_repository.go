package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"sommelier/internal/domain/entity"
	"sommelier/internal/domain/repository"

	"github.com/google/uuid"
)

type drinkRepository struct {
	store *Store
	inTx  bool
}

// FindByID retrieves a single drink by its unique ID.
func (repo *drinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Drink, error) {
	var found *entity.Drink
	err := repo.store.access(repo.inTx, func() error {
		drink, ok := repo.store.drinks[id]
		if !ok {
			return repository.ErrDrinkNotFound
		}
		found = &drink

		return nil
	})

	return found, err
}

// FindByIDForUpdate is FindByID; the store lock already serializes writers.
func (repo *drinkRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Drink, error) {
	return repo.FindByID(ctx, id)
}

// FindByIDForShare is FindByID for the same reason.
func (repo *drinkRepository) FindByIDForShare(ctx context.Context, id uuid.UUID) (*entity.Drink, error) {
	return repo.FindByID(ctx, id)
}

// FindAll lists drinks filtered by type and ordered by the requested counter.
func (repo *drinkRepository) FindAll(ctx context.Context, query entity.DrinkQuery) ([]*entity.Drink, error) {
	query = query.Normalize()

	var drinks []*entity.Drink
	err := repo.store.access(repo.inTx, func() error {
		drinks = make([]*entity.Drink, 0, len(repo.store.drinks))
		for _, drink := range repo.store.drinks {
			if query.Type != entity.DrinkTypeAll && drink.Type != query.Type {
				continue
			}
			d := drink
			drinks = append(drinks, &d)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(drinks, func(a, b *entity.Drink) int {
		c := compareDrinks(a, b, query.Filter)
		if query.Order == entity.OrderDesc {
			c = -c
		}
		if c != 0 {
			return c
		}
		if c = b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return drinks, nil
}

func compareDrinks(a, b *entity.Drink, filter entity.FilterType) int {
	switch filter {
	case entity.FilterRating:
		return cmp.Compare(a.AvgRating, b.AvgRating)
	case entity.FilterWishCount:
		return cmp.Compare(a.NumOfWish, b.NumOfWish)
	default:
		return cmp.Compare(a.NumOfReviews, b.NumOfReviews)
	}
}

// Create persists a new drink.
func (repo *drinkRepository) Create(ctx context.Context, drink *entity.Drink) error {
	return repo.store.access(repo.inTx, func() error {
		if _, exists := repo.store.drinks[drink.ID]; exists {
			return repository.ErrDuplicateDrink
		}
		now := time.Now()
		if drink.CreatedAt.IsZero() {
			drink.CreatedAt = now
		}
		drink.UpdatedAt = now
		repo.store.drinks[drink.ID] = *drink

		return nil
	})
}

// Update overwrites an existing drink, counters included.
func (repo *drinkRepository) Update(ctx context.Context, drink *entity.Drink) error {
	return repo.store.access(repo.inTx, func() error {
		existing, ok := repo.store.drinks[drink.ID]
		if !ok {
			return repository.ErrDrinkNotFound
		}
		drink.CreatedAt = existing.CreatedAt
		drink.UpdatedAt = time.Now()
		repo.store.drinks[drink.ID] = *drink

		return nil
	})
}

// DeleteByID removes a drink.
func (repo *drinkRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return repo.store.access(repo.inTx, func() error {
		if _, ok := repo.store.drinks[id]; !ok {
			return repository.ErrDrinkNotFound
		}
		delete(repo.store.drinks, id)

		return nil
	})
}
