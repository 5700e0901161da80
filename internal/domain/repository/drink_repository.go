// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"sommelier/internal/domain/entity"
	"sommelier/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for drink persistence.
var (
	// ErrDrinkNotFound is returned when a drink is not found.
	ErrDrinkNotFound = errors.New("drink not found")
	// ErrDuplicateDrink is returned when trying to create a drink whose id already exists.
	ErrDuplicateDrink = errors.New("drink already exists")
)

// DrinkRepository defines the standard operations for drink persistence.
type DrinkRepository interface {
	// FindByID retrieves a single drink by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Drink, error)

	// FindByIDForUpdate retrieves a drink and locks its row until the surrounding transaction ends.
	// Counter updates must load the drink through this method.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Drink, error)

	// FindByIDForShare retrieves a drink and takes a shared row lock until the surrounding transaction ends.
	// Writes that record a pending counter update load the drink through this method, so they cannot
	// commit while a recount or delete holds the row.
	FindByIDForShare(ctx context.Context, id uuid.UUID) (*entity.Drink, error)

	// FindAll lists drinks filtered by type and ordered as the query asks.
	FindAll(ctx context.Context, query entity.DrinkQuery) ([]*entity.Drink, error)

	// Create persists a new drink.
	Create(ctx context.Context, drink *entity.Drink) error

	// Update overwrites an existing drink, counters included.
	Update(ctx context.Context, drink *entity.Drink) error

	// DeleteByID removes a drink.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
