package middleware

import (
	"log/slog"
	"net/http"

	"sommelier/internal/delivery/api/response"
	deliverycontext "sommelier/internal/delivery/context"
	domainerrors "sommelier/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is echo's HTTPErrorHandler. Domain errors keep their kind, everything
// unrecognized becomes a SystemError with a generic message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var pendingErr *domainerrors.PendingSyncError
	if errors.As(err, &pendingErr) {
		log.Warn("Request stored but drink counters are pending",
			slog.String("update_id", pendingErr.UpdateID.String()),
			slog.String("drink_id", pendingErr.DrinkID.String()),
			slog.Any("error", err),
		)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind() == domainerrors.KindSystem && pendingErr == nil {
			log.Error("Request failed", slog.Any("error", err), slog.String("path", c.Path()))
		}
		_ = response.AppError(c, appErr, nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message)

		return
	}

	log.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
