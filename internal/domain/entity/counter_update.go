package entity

import (
	"time"

	"github.com/google/uuid"
)

// CounterOp names the drink counter operation a review or wish change requires.
type CounterOp string

const (
	CounterOpAddRating    CounterOp = "add_rating"
	CounterOpUpdateRating CounterOp = "update_rating"
	CounterOpDeleteRating CounterOp = "delete_rating"
	CounterOpAddWish      CounterOp = "add_wish"
	CounterOpDeleteWish   CounterOp = "delete_wish"
)

// String returns the string representation of the CounterOp.
func (o CounterOp) String() string {
	return string(o)
}

// IsValid checks if the CounterOp is a known operation.
func (o CounterOp) IsValid() bool {
	switch o {
	case CounterOpAddRating, CounterOpUpdateRating, CounterOpDeleteRating, CounterOpAddWish, CounterOpDeleteWish:
		return true
	default:
		return false
	}
}

// CounterUpdateStatus tracks whether a counter update reached the drink.
type CounterUpdateStatus string

const (
	CounterUpdatePending CounterUpdateStatus = "pending"
	CounterUpdateApplied CounterUpdateStatus = "applied"
)

// CounterUpdate records a drink counter change owed by a stored review or wish.
// It is written in the same transaction as the review or wish and marked applied in the
// same transaction that changes the drink, so a pending row means the drink is stale.
type CounterUpdate struct {
	ID        uuid.UUID           // The Global Unique Identifier (GUID) for the update.
	DrinkID   uuid.UUID           // Drink whose counters must change.
	SourceID  uuid.UUID           // Review or wish that caused the change.
	Op        CounterOp           // Counter operation to run.
	OldRating ReviewRating        // Rating being replaced or removed (update_rating, delete_rating).
	NewRating ReviewRating        // Rating being added (add_rating, update_rating).
	Status    CounterUpdateStatus // pending until the drink is written.
	Attempts  int                 // Number of failed attempts to apply the update.
	LastError string              // Message of the last failed attempt.
	CreatedAt time.Time           // Timestamp of when the owning write happened.
	AppliedAt *time.Time          // Timestamp of when the drink was updated.
}

// NewCounterUpdate builds a pending update for drinkID caused by sourceID.
func NewCounterUpdate(drinkID, sourceID uuid.UUID, op CounterOp, oldRating, newRating ReviewRating, now time.Time) *CounterUpdate {
	return &CounterUpdate{
		ID:        uuid.New(),
		DrinkID:   drinkID,
		SourceID:  sourceID,
		Op:        op,
		OldRating: oldRating,
		NewRating: newRating,
		Status:    CounterUpdatePending,
		CreatedAt: now,
	}
}

// IsApplied reports whether the drink already reflects this update.
func (u *CounterUpdate) IsApplied() bool {
	return u.Status == CounterUpdateApplied
}

// MarkApplied records that the drink was written.
func (u *CounterUpdate) MarkApplied(at time.Time) {
	u.Status = CounterUpdateApplied
	u.AppliedAt = &at
	u.LastError = ""
}

// MarkFailed records a failed attempt. The update stays pending.
func (u *CounterUpdate) MarkFailed(cause error) {
	u.Attempts++
	if cause != nil {
		u.LastError = cause.Error()
	}
}
