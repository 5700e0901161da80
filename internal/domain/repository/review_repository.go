package repository

import (
	"context"

	"sommelier/internal/domain/entity"
	"sommelier/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the user already reviewed the drink.
	ErrDuplicateReview = errors.New("review already exists")
)

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByUserAndDrink retrieves the review a user wrote for a drink.
	FindByUserAndDrink(ctx context.Context, userID entity.UserID, drinkID uuid.UUID) (*entity.Review, error)

	// FindAll lists reviews matching the query, newest first.
	FindAll(ctx context.Context, query entity.ReviewQuery) ([]*entity.Review, error)

	// Summarize returns the number and sum of ratings stored for a drink.
	Summarize(ctx context.Context, drinkID uuid.UUID) (entity.RatingSummary, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// Update overwrites an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// DeleteByID removes a review.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
