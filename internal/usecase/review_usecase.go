package usecase

import (
	"context"

	"sommelier/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to review a drink.
type CreateReviewInput struct {
	UserID  entity.UserID
	DrinkID uuid.UUID
	Rating  int
	Comment string
}

// UpdateReviewInput defines the data required to edit a review.
type UpdateReviewInput struct {
	ReviewID uuid.UUID
	UserID   entity.UserID
	Rating   int
	Comment  string
}

// DeleteReviewInput identifies the review to delete and who asks for it.
type DeleteReviewInput struct {
	ReviewID uuid.UUID
	UserID   entity.UserID
}

// ReviewUsecase defines review operations. Mutations store the review first and then update the
// drink counters. When the drink update fails the review stays stored and the returned error is a
// *errors.PendingSyncError; the stored review is returned alongside it.
type ReviewUsecase interface {
	FindReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)
	FindReviews(ctx context.Context, query entity.ReviewQuery) ([]*entity.Review, error)
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, input *UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, input *DeleteReviewInput) (*entity.Review, error)
}
