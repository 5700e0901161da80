package model

import (
	"time"

	"github.com/google/uuid"
)

// WishModel mirrors the 'wishes' table. (user_id, drink_id) is unique.
type WishModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_wishes_user_drink,priority:1"`
	DrinkID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishes_user_drink,priority:2;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WishModel) TableName() string {
	return "wishes"
}
