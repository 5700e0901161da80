package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. (user_id, drink_id) is unique.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	DrinkID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_drink,priority:2;index"`
	UserID    string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_reviews_user_drink,priority:1"`
	Rating    int       `gorm:"not null;check:rating >= 0 AND rating <= 5"`
	Comment   string    `gorm:"type:varchar(300)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
