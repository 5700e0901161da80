// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "sommelier/internal/delivery/context"
	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/repository"
	"sommelier/internal/domain/service"
	"sommelier/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates an account whose id is the chosen login handle.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	userID, err := entity.NewUserID(strings.TrimSpace(input.UserID))
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateUserName(input.Name); err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, domainerrors.Invalid("password is required")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := time.Now()
	user := &entity.User{
		ID:           userID,
		Name:         input.Name,
		Description:  input.Description,
		PasswordHash: hash,
		ImageURL:     input.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, mapRepoError(err, "failed to create user")
	}
	srv.log(ctx).Info("User registered", slog.String("user_id", userID.String()))

	return user, nil
}

// FindUser retrieves a user's public profile.
func (srv *userService) FindUser(ctx context.Context, userID entity.UserID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser replaces the caller's profile fields. An empty password keeps the current one.
func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*entity.User, error) {
	if err := entity.ValidateUserName(input.Name); err != nil {
		return nil, err
	}

	var hash string
	if input.Password != "" {
		h, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		hash = h
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return mapRepoError(err, "failed to find user")
		}

		user.Name = input.Name
		user.Description = input.Description
		user.ImageURL = input.ImageURL
		if hash != "" {
			user.PasswordHash = hash
		}
		user.UpdatedAt = time.Now()

		if err := userRepo.Update(ctx, user); err != nil {
			return mapRepoError(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteUser removes the caller's account. Reviews and wishes the user wrote are kept.
func (srv *userService) DeleteUser(ctx context.Context, userID entity.UserID) error {
	if err := srv.userRepo.DeleteByID(ctx, userID); err != nil {
		return mapRepoError(err, "failed to delete user")
	}
	srv.log(ctx).Info("User deleted", slog.String("user_id", userID.String()))

	return nil
}
