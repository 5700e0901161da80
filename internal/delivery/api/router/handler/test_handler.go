package handler

import (
	"net/http"

	"sommelier/internal/delivery/api/middleware"
	"sommelier/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware echoes the user the auth middleware resolved from the Bearer token.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"user_id": userID,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
