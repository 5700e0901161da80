package repository

import (
	"context"

	"sommelier/internal/domain/entity"
	"sommelier/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the user id is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their login handle.
	FindByID(ctx context.Context, id entity.UserID) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// DeleteByID removes a user.
	DeleteByID(ctx context.Context, id entity.UserID) error
}
