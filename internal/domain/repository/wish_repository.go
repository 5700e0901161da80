package repository

import (
	"context"

	"sommelier/internal/domain/entity"
	"sommelier/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for wish persistence.
var (
	// ErrWishNotFound is returned when a wish is not found.
	ErrWishNotFound = errors.New("wish not found")
	// ErrDuplicateWish is returned when the user already wishes for the drink.
	ErrDuplicateWish = errors.New("wish already exists")
)

// WishRepository defines the standard operations for wish persistence.
type WishRepository interface {
	// FindByID retrieves a single wish by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Wish, error)

	// FindByUserAndDrink retrieves the wish a user made for a drink.
	FindByUserAndDrink(ctx context.Context, userID entity.UserID, drinkID uuid.UUID) (*entity.Wish, error)

	// FindAll lists wishes matching the query, newest first.
	FindAll(ctx context.Context, query entity.WishQuery) ([]*entity.Wish, error)

	// CountByDrink returns the number of wishes stored for a drink.
	CountByDrink(ctx context.Context, drinkID uuid.UUID) (int, error)

	// Create persists a new wish.
	Create(ctx context.Context, wish *entity.Wish) error

	// DeleteByID removes a wish.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
