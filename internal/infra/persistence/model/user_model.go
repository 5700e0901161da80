package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The primary key is the user's login handle.
type UserModel struct {
	ID           string `gorm:"type:varchar(30);primary_key"`
	Name         string `gorm:"type:varchar(30)"`
	Description  string `gorm:"type:text"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	ImageURL     string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
