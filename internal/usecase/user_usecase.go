// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sommelier/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	UserID      string
	Password    string
	Name        string
	Description string
	ImageURL    string
}

// UpdateUserInput defines the profile fields a user may change. Empty password keeps the old one.
type UpdateUserInput struct {
	UserID      entity.UserID
	Password    string
	Name        string
	Description string
	ImageURL    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	UserID   string
	Password string
}

// --- Output DTOs ---

// TokenOutput returns the generated access token after a successful login.
type TokenOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	UserID      entity.UserID
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	FindUser(ctx context.Context, userID entity.UserID) (*entity.User, error)
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, userID entity.UserID) error
}

// AuthUsecase issues and validates access tokens.
type AuthUsecase interface {
	IssueToken(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	ValidateToken(ctx context.Context, token string) (entity.UserID, error)
}
