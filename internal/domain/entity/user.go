package entity

import (
	"time"
	"unicode/utf8"

	domainerrors "sommelier/internal/domain/errors"
)

// User is a registered account. Its ID is the login handle.
type User struct {
	ID           UserID    // The user's chosen login handle.
	Name         string    // The user's display name.
	Description  string    // A short self introduction.
	PasswordHash string    // bcrypt hash of the user's password.
	ImageURL     string    // URL of the user's avatar.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// ValidateUserName checks the display name length limit.
func ValidateUserName(name string) error {
	if utf8.RuneCountInString(name) > MaxUserNameLength {
		return domainerrors.Invalid("name must be at most 30 characters")
	}

	return nil
}
