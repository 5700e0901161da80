package handler

import (
	"net/http"

	"sommelier/internal/delivery/api/response"
	"sommelier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TokenRequest is the body of POST /auth/token.
type TokenRequest struct {
	UserID   string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a freshly issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      string `json:"user_id"`
}

// AuthHandler issues access tokens.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// IssueToken exchanges a user id and password for an access token.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.uc.IssueToken(c.Request().Context(), &usecase.LoginInput{UserID: req.UserID, Password: req.Password})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &TokenResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		ExpiresIn:   out.ExpiresIn,
		UserID:      out.UserID.String(),
	})
}
