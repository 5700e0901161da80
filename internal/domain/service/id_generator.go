package service

import (
	"time"

	"sommelier/internal/domain/entity"

	"github.com/google/uuid"
)

// IDGenerator assigns identifiers to new aggregates. Depending on configuration an id is either
// derived from the aggregate's natural key, so a retried create maps onto the same row, or random.
type IDGenerator interface {
	// DrinkID returns the id for a new drink.
	DrinkID(name string, createdAt time.Time) uuid.UUID

	// ReviewID returns the id for a user's review of a drink.
	ReviewID(userID entity.UserID, drinkID uuid.UUID) uuid.UUID

	// WishID returns the id for a user's wish for a drink.
	WishID(userID entity.UserID, drinkID uuid.UUID) uuid.UUID
}
