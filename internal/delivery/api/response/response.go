// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "sommelier/internal/delivery/context"
	domainerrors "sommelier/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// AppError renders a domain error with its kind and status code.
func AppError(c echo.Context, err domainerrors.AppError, details any) error {
	return c.JSON(err.HTTPCode(), domainerrors.ErrorResponse{
		Error: domainerrors.NewErrorInfo(err, details),
		Meta:  meta(c),
	})
}

// Error renders an error that carries no domain kind, e.g. echo routing errors.
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	kind := domainerrors.KindSystem
	switch statusCode {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		kind = domainerrors.KindInvalid
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		kind = domainerrors.KindNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = domainerrors.KindUnauthorized
	case http.StatusConflict:
		kind = domainerrors.KindConflict
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Kind:    kind,
			Message: message,
		},
		Meta: meta(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}
