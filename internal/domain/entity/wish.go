package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wish is a user's bookmark of a drink. It is created and deleted, never edited.
type Wish struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the wish.
	UserID    UserID    // The user who made the wish.
	DrinkID   uuid.UUID // The wished-for drink.
	CreatedAt time.Time // Timestamp of when the wish was made.
}
