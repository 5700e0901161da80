package model

import (
	"time"

	"github.com/google/uuid"
)

// CounterUpdateModel mirrors the 'drink_counter_updates' outbox table.
type CounterUpdateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	DrinkID   uuid.UUID `gorm:"type:uuid;not null;index:idx_counter_updates_drink_status,priority:1"`
	SourceID  uuid.UUID `gorm:"type:uuid;not null"`
	Op        string    `gorm:"type:varchar(20);not null"`
	OldRating int       `gorm:"not null;default:0"`
	NewRating int       `gorm:"not null;default:0"`
	Status    string    `gorm:"type:varchar(10);not null;index:idx_counter_updates_status_created,priority:1;index:idx_counter_updates_drink_status,priority:2"`
	Attempts  int       `gorm:"not null;default:0"`
	LastError string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index:idx_counter_updates_status_created,priority:2"`
	AppliedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (CounterUpdateModel) TableName() string {
	return "drink_counter_updates"
}
