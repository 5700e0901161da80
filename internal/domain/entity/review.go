package entity

import (
	"time"
	"unicode/utf8"

	domainerrors "sommelier/internal/domain/errors"

	"github.com/google/uuid"
)

// Review is one user's rating and comment for one drink. A user has at most one review per drink.
type Review struct {
	ID        uuid.UUID    // The Global Unique Identifier (GUID) for the review.
	DrinkID   uuid.UUID    // The drink being reviewed.
	UserID    UserID       // The author.
	Rating    ReviewRating // Star rating.
	Comment   string       // Free text, at most 300 characters.
	CreatedAt time.Time    // Timestamp of when the review was written.
	UpdatedAt time.Time    // Timestamp of the last edit.
}

// ValidateComment checks the comment length limit.
func ValidateComment(comment string) error {
	if utf8.RuneCountInString(comment) > MaxReviewCommentLen {
		return domainerrors.Invalid("comment must be at most 300 characters")
	}

	return nil
}

// IsOwnedBy reports whether userID wrote the review.
func (r *Review) IsOwnedBy(userID UserID) bool {
	return r.UserID == userID
}

// Edit replaces rating and comment and bumps UpdatedAt. CreatedAt is kept.
// It returns the rating that was replaced.
func (r *Review) Edit(rating ReviewRating, comment string, now time.Time) ReviewRating {
	old := r.Rating
	r.Rating = rating
	r.Comment = comment
	r.UpdatedAt = now

	return old
}
