package usecase

import (
	"context"

	"sommelier/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDrinkInput defines the data required to add a drink to the catalog.
type CreateDrinkInput struct {
	Name     string
	ImageURL string
	Type     entity.DrinkType
}

// UpdateDrinkInput defines the catalog fields a drink update may change.
// Counters are never writable through this input.
type UpdateDrinkInput struct {
	DrinkID  uuid.UUID
	Name     string
	ImageURL string
	Type     entity.DrinkType
}

// DrinkUsecase defines the catalog operations and the drink side of counter synchronization.
type DrinkUsecase interface {
	FindDrink(ctx context.Context, drinkID uuid.UUID) (*entity.Drink, error)
	FindDrinks(ctx context.Context, query entity.DrinkQuery) ([]*entity.Drink, error)
	CreateDrink(ctx context.Context, input *CreateDrinkInput) (*entity.Drink, error)
	UpdateDrink(ctx context.Context, input *UpdateDrinkInput) (*entity.Drink, error)
	DeleteDrink(ctx context.Context, drinkID uuid.UUID) error

	// ApplyCounterUpdate applies a pending counter update to its drink under a row lock and
	// marks the update applied in the same transaction. Applied updates are a no-op.
	ApplyCounterUpdate(ctx context.Context, updateID uuid.UUID) (*entity.Drink, error)

	// GenerateShareQR returns a PNG QR code linking to the drink.
	GenerateShareQR(ctx context.Context, drinkID uuid.UUID) ([]byte, error)
}
