// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"sommelier/internal/delivery/api/middleware"
	"sommelier/internal/delivery/api/response"
	"sommelier/internal/domain/entity"
	"sommelier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	UserID      string `json:"id" validate:"required"`
	Password    string `json:"password" validate:"required,max=72"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

// UpdateUserRequest is the body of PUT /api/v1/users/me. An empty password keeps the current one.
type UpdateUserRequest struct {
	Password    string `json:"password" validate:"omitempty,max=72"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		UserID:      req.UserID,
		Password:    req.Password,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// GetUser returns a user's public profile.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := entity.NewUserID(c.Param("id"))
	if err != nil {
		return err
	}

	user, err := h.uc.FindUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateMe replaces the authenticated user's profile.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), &usecase.UpdateUserInput{
		UserID:      userID,
		Password:    req.Password,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// DeleteMe removes the authenticated user's account.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), userID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
