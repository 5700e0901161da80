package handler

import (
	"net/http"
	"strconv"

	"sommelier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReplayResponse reports the outcome of POST /replay.
type ReplayResponse struct {
	Scanned int `json:"scanned"`
	Applied int `json:"applied"`
	Failed  int `json:"failed"`
}

// ReplayHandler triggers a replay of pending counter updates on demand.
type ReplayHandler struct {
	reconcile usecase.ReconcileUsecase
}

// NewReplayHandler is the constructor for ReplayHandler, injected by Fx.
func NewReplayHandler(reconcile usecase.ReconcileUsecase) *ReplayHandler {
	return &ReplayHandler{reconcile: reconcile}
}

// Replay applies up to ?limit= pending updates. Without a limit the configured batch size is used.
func (h *ReplayHandler) Replay(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a non-negative integer"})
		}
		limit = n
	}

	result, err := h.reconcile.ReplayPending(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, &ReplayResponse{
		Scanned: result.Scanned,
		Applied: result.Applied,
		Failed:  result.Failed,
	})
}
