package middleware

import (
	"strings"

	deliverycontext "sommelier/internal/delivery/context"
	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests carrying a Bearer access token.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate validates the access token and stores the user id on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header is missing")
		}

		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || token == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header must be a Bearer token")
		}

		userID, err := m.auth.ValidateToken(c.Request().Context(), token)
		if err != nil {
			return err
		}
		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// CurrentUser returns the user set by Authenticate.
func CurrentUser(c echo.Context) (entity.UserID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return "", domainerrors.ErrTokenInvalid
	}

	return userID, nil
}
