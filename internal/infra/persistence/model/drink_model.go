// Package model contains the GORM structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DrinkModel mirrors the 'drinks' table. The id is assigned by the application's identity policy.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type DrinkModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	ImageURL     string    `gorm:"type:text"`
	Type         string    `gorm:"type:varchar(20);not null;index"`
	AvgRating    float64   `gorm:"type:double precision;not null;default:0;check:avg_rating >= 0 AND avg_rating <= 5"`
	NumOfReviews int       `gorm:"not null;default:0;check:num_of_reviews >= 0"`
	NumOfWish    int       `gorm:"not null;default:0;check:num_of_wish >= 0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DrinkModel) TableName() string {
	return "drinks"
}
