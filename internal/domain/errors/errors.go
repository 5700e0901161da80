package errors

import (
	"net/http"

	"sommelier/internal/errors"

	"github.com/google/uuid"
)

// Kind is the stable failure category returned to API consumers.
type Kind string

const (
	KindNotFound     Kind = "ResourceNotFound"
	KindConflict     Kind = "ResourceConflict"
	KindInvalid      Kind = "ParametersInvalid"
	KindUnauthorized Kind = "Unauthorized"
	KindSystem       Kind = "SystemError"
)

// HTTPCode maps a kind onto the status code used by the HTTP boundary.
func (k Kind) HTTPCode() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInvalid:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure category
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Drink-related errors
	ErrDrinkNotFound = NewBaseError(
		KindNotFound,
		"DRINK_NOT_FOUND",
		"drink not found",
		"",
	)

	ErrDrinkAlreadyExists = NewBaseError(
		KindConflict,
		"DRINK_ALREADY_EXISTS",
		"drink already exists",
		"",
	)

	ErrDrinkHasReviews = NewBaseError(
		KindConflict,
		"DRINK_HAS_REVIEWS",
		"drink still has reviews and cannot be deleted",
		"",
	)

	ErrDrinkCounterDrift = NewBaseError(
		KindSystem,
		"DRINK_COUNTER_DRIFT",
		"drink has no ratings to update",
		"",
	)

	// Review-related errors
	ErrReviewNotFound = NewBaseError(
		KindNotFound,
		"REVIEW_NOT_FOUND",
		"review not found",
		"",
	)

	ErrReviewAlreadyExists = NewBaseError(
		KindConflict,
		"REVIEW_ALREADY_EXISTS",
		"a review for this drink already exists",
		"",
	)

	ErrReviewOwnership = NewBaseError(
		KindUnauthorized,
		"REVIEW_OWNERSHIP_VIOLATION",
		"you can only change your own reviews",
		"",
	)

	// Wish-related errors
	ErrWishNotFound = NewBaseError(
		KindNotFound,
		"WISH_NOT_FOUND",
		"wish not found",
		"",
	)

	ErrWishAlreadyExists = NewBaseError(
		KindConflict,
		"WISH_ALREADY_EXISTS",
		"drink is already on the wishlist",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindConflict,
		"USER_ALREADY_EXISTS",
		"user id is already taken",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		KindUnauthorized,
		"INVALID_CREDENTIALS",
		"wrong user id or password",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		KindUnauthorized,
		"TOKEN_INVALID",
		"access token is invalid or expired",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindSystem,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindInvalid,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Counter update errors
	ErrCounterUpdateNotFound = NewBaseError(
		KindNotFound,
		"COUNTER_UPDATE_NOT_FOUND",
		"pending counter update not found",
		"",
	)

	ErrUnknownCounterOp = NewBaseError(
		KindInvalid,
		"UNKNOWN_COUNTER_OP",
		"unknown counter update operation",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		KindSystem,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindSystem,
		"INTERNAL_ERROR",
		"internal system error",
		"",
	)
)

// Invalid builds a ParametersInvalid error carrying a user-facing message.
func Invalid(message string) *BaseError {
	return NewBaseError(KindInvalid, ErrValidationFailed.ErrorCode(), message, "")
}

// KindOf reports the failure category of err. Errors that carry no kind are system errors.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindSystem
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the failure category
func (e *DatabaseExecuteError) Kind() Kind {
	return KindSystem
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// PendingSyncError reports that the owning aggregate (review or wish) was stored but the
// drink counters could not be updated. The owning write is NOT rolled back; the counter
// update stays pending until the repair worker or a recount applies it.
type PendingSyncError struct {
	UpdateID uuid.UUID
	DrinkID  uuid.UUID
	cause    error
}

// NewPendingSyncError wraps the drink-side failure of a two-phase update.
func NewPendingSyncError(updateID, drinkID uuid.UUID, cause error) *PendingSyncError {
	return &PendingSyncError{
		UpdateID: updateID,
		DrinkID:  drinkID,
		cause:    cause,
	}
}

// Error implements the error interface
func (e *PendingSyncError) Error() string {
	return "drink counters pending: " + e.cause.Error()
}

// Unwrap returns the drink-side failure.
func (e *PendingSyncError) Unwrap() error {
	return e.cause
}

// Kind is the kind of the drink-side failure.
func (e *PendingSyncError) Kind() Kind {
	return KindOf(e.cause)
}

// HTTPCode returns the HTTP status code of the drink-side failure.
func (e *PendingSyncError) HTTPCode() int {
	return e.Kind().HTTPCode()
}

// ErrorCode returns the business error code
func (e *PendingSyncError) ErrorCode() string {
	return "DRINK_SYNC_PENDING"
}

// Message tells the caller that their change was kept while the drink statistics lag.
func (e *PendingSyncError) Message() string {
	base := ErrInternalError.Message()
	var appErr AppError
	if errors.As(e.cause, &appErr) {
		base = appErr.Message()
	}

	return base + "; your change was saved but drink statistics are not updated yet"
}

// Details returns detailed error information
func (e *PendingSyncError) Details() string {
	return ""
}
