package impl

import (
	"context"
	"log/slog"

	deliverycontext "sommelier/internal/delivery/context"
	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/repository"
	"sommelier/internal/domain/service"
	"sommelier/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueToken verifies the user's password and returns a signed access token.
// Unknown users and wrong passwords fail the same way.
func (srv *authService) IssueToken(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	userID, err := entity.NewUserID(input.UserID)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login for unknown user", slog.String("user_id", userID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, mapRepoError(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login with wrong password", slog.String("user_id", userID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate access token")
	}

	return &usecase.TokenOutput{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
		UserID:      user.ID,
	}, nil
}

// ValidateToken returns the user an access token was issued to.
func (srv *authService) ValidateToken(ctx context.Context, token string) (entity.UserID, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected access token", slog.Any("error", err))

		return "", domainerrors.ErrTokenInvalid
	}

	return claims.UserID, nil
}
