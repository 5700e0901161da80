package usecase

import (
	"context"

	"sommelier/internal/domain/entity"

	"github.com/google/uuid"
)

// WishUsecase defines wishlist operations. Like reviews, a wish is stored before the drink's
// wish counter changes, and a failed counter update surfaces as *errors.PendingSyncError.
type WishUsecase interface {
	FindWishes(ctx context.Context, query entity.WishQuery) ([]*entity.Wish, error)
	CreateWish(ctx context.Context, userID entity.UserID, drinkID uuid.UUID) (*entity.Wish, error)
	DeleteWish(ctx context.Context, userID entity.UserID, drinkID uuid.UUID) (*entity.Wish, error)
}
