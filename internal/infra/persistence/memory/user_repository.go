package memory

import (
	"context"
	"time"

	"sommelier/internal/domain/entity"
	"sommelier/internal/domain/repository"
)

type userRepository struct {
	store *Store
	inTx  bool
}

// FindByID retrieves a single user by their login handle.
func (repo *userRepository) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	var found *entity.User
	err := repo.store.access(repo.inTx, func() error {
		user, ok := repo.store.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = &user

		return nil
	})

	return found, err
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	return repo.store.access(repo.inTx, func() error {
		if _, exists := repo.store.users[user.ID]; exists {
			return repository.ErrDuplicateUser
		}
		now := time.Now()
		if user.CreatedAt.IsZero() {
			user.CreatedAt = now
		}
		user.UpdatedAt = now
		repo.store.users[user.ID] = *user

		return nil
	})
}

// Update modifies an existing user's profile fields.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	return repo.store.access(repo.inTx, func() error {
		existing, ok := repo.store.users[user.ID]
		if !ok {
			return repository.ErrUserNotFound
		}
		user.CreatedAt = existing.CreatedAt
		repo.store.users[user.ID] = *user

		return nil
	})
}

// DeleteByID removes a user.
func (repo *userRepository) DeleteByID(ctx context.Context, id entity.UserID) error {
	return repo.store.access(repo.inTx, func() error {
		if _, ok := repo.store.users[id]; !ok {
			return repository.ErrUserNotFound
		}
		delete(repo.store.users, id)

		return nil
	})
}
