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

type reviewRepository struct {
	store *Store
	inTx  bool
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var found *entity.Review
	err := repo.store.access(repo.inTx, func() error {
		review, ok := repo.store.reviews[id]
		if !ok {
			return repository.ErrReviewNotFound
		}
		found = &review

		return nil
	})

	return found, err
}

// FindByUserAndDrink retrieves the review a user wrote for a drink.
func (repo *reviewRepository) FindByUserAndDrink(ctx context.Context, userID entity.UserID, drinkID uuid.UUID) (*entity.Review, error) {
	var found *entity.Review
	err := repo.store.access(repo.inTx, func() error {
		for _, review := range repo.store.reviews {
			if review.UserID == userID && review.DrinkID == drinkID {
				r := review
				found = &r

				return nil
			}
		}

		return repository.ErrReviewNotFound
	})

	return found, err
}

// FindAll lists reviews matching the query, newest first.
func (repo *reviewRepository) FindAll(ctx context.Context, query entity.ReviewQuery) ([]*entity.Review, error) {
	var reviews []*entity.Review
	_ = repo.store.access(repo.inTx, func() error {
		for _, review := range repo.store.reviews {
			if query.UserID != "" && review.UserID != query.UserID {
				continue
			}
			if query.DrinkID != uuid.Nil && review.DrinkID != query.DrinkID {
				continue
			}
			r := review
			reviews = append(reviews, &r)
		}

		return nil
	})

	slices.SortFunc(reviews, func(a, b *entity.Review) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return reviews, nil
}

// Summarize returns the number and sum of ratings stored for a drink.
func (repo *reviewRepository) Summarize(ctx context.Context, drinkID uuid.UUID) (entity.RatingSummary, error) {
	var summary entity.RatingSummary
	_ = repo.store.access(repo.inTx, func() error {
		for _, review := range repo.store.reviews {
			if review.DrinkID == drinkID {
				summary.Count++
				summary.Sum += int(review.Rating)
			}
		}

		return nil
	})

	return summary, nil
}

// Create persists a new review. A second review for the same user and drink is a duplicate.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return repo.store.access(repo.inTx, func() error {
		if _, exists := repo.store.reviews[review.ID]; exists {
			return repository.ErrDuplicateReview
		}
		for _, existing := range repo.store.reviews {
			if existing.UserID == review.UserID && existing.DrinkID == review.DrinkID {
				return repository.ErrDuplicateReview
			}
		}
		now := time.Now()
		if review.CreatedAt.IsZero() {
			review.CreatedAt = now
		}
		if review.UpdatedAt.IsZero() {
			review.UpdatedAt = review.CreatedAt
		}
		repo.store.reviews[review.ID] = *review

		return nil
	})
}

// Update overwrites an existing review's rating and comment.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return repo.store.access(repo.inTx, func() error {
		existing, ok := repo.store.reviews[review.ID]
		if !ok {
			return repository.ErrReviewNotFound
		}
		existing.Rating = review.Rating
		existing.Comment = review.Comment
		existing.UpdatedAt = review.UpdatedAt
		repo.store.reviews[review.ID] = existing

		return nil
	})
}

// DeleteByID removes a review.
func (repo *reviewRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return repo.store.access(repo.inTx, func() error {
		if _, ok := repo.store.reviews[id]; !ok {
			return repository.ErrReviewNotFound
		}
		delete(repo.store.reviews, id)

		return nil
	})
}
