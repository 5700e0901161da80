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

type wishRepository struct {
	store *Store
	inTx  bool
}

// FindByID retrieves a single wish by its unique ID.
func (repo *wishRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wish, error) {
	var found *entity.Wish
	err := repo.store.access(repo.inTx, func() error {
		wish, ok := repo.store.wishes[id]
		if !ok {
			return repository.ErrWishNotFound
		}
		found = &wish

		return nil
	})

	return found, err
}

// FindByUserAndDrink retrieves the wish a user made for a drink.
func (repo *wishRepository) FindByUserAndDrink(ctx context.Context, userID entity.UserID, drinkID uuid.UUID) (*entity.Wish, error) {
	var found *entity.Wish
	err := repo.store.access(repo.inTx, func() error {
		for _, wish := range repo.store.wishes {
			if wish.UserID == userID && wish.DrinkID == drinkID {
				w := wish
				found = &w

				return nil
			}
		}

		return repository.ErrWishNotFound
	})

	return found, err
}

// FindAll lists wishes matching the query, newest first.
func (repo *wishRepository) FindAll(ctx context.Context, query entity.WishQuery) ([]*entity.Wish, error) {
	var wishes []*entity.Wish
	_ = repo.store.access(repo.inTx, func() error {
		for _, wish := range repo.store.wishes {
			if query.UserID != "" && wish.UserID != query.UserID {
				continue
			}
			if query.DrinkID != uuid.Nil && wish.DrinkID != query.DrinkID {
				continue
			}
			w := wish
			wishes = append(wishes, &w)
		}

		return nil
	})

	slices.SortFunc(wishes, func(a, b *entity.Wish) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return wishes, nil
}

// CountByDrink returns the number of wishes stored for a drink.
func (repo *wishRepository) CountByDrink(ctx context.Context, drinkID uuid.UUID) (int, error) {
	count := 0
	_ = repo.store.access(repo.inTx, func() error {
		for _, wish := range repo.store.wishes {
			if wish.DrinkID == drinkID {
				count++
			}
		}

		return nil
	})

	return count, nil
}

// Create persists a new wish. A second wish for the same user and drink is a duplicate.
func (repo *wishRepository) Create(ctx context.Context, wish *entity.Wish) error {
	return repo.store.access(repo.inTx, func() error {
		if _, exists := repo.store.wishes[wish.ID]; exists {
			return repository.ErrDuplicateWish
		}
		for _, existing := range repo.store.wishes {
			if existing.UserID == wish.UserID && existing.DrinkID == wish.DrinkID {
				return repository.ErrDuplicateWish
			}
		}
		if wish.CreatedAt.IsZero() {
			wish.CreatedAt = time.Now()
		}
		repo.store.wishes[wish.ID] = *wish

		return nil
	})
}

// DeleteByID removes a wish.
func (repo *wishRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return repo.store.access(repo.inTx, func() error {
		if _, ok := repo.store.wishes[id]; !ok {
			return repository.ErrWishNotFound
		}
		delete(repo.store.wishes, id)

		return nil
	})
}
