package errors

// ErrorInfo is the error body every transport renders.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "DRINK_NOT_FOUND"
	Kind    Kind   `json:"kind"`              // Failure category, e.g., "ResourceNotFound"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional, 4xx only)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// NewErrorInfo builds the error body for err. Details are dropped for system and auth failures.
func NewErrorInfo(err AppError, details any) *ErrorInfo {
	kind := err.Kind()
	if kind == KindSystem || kind == KindUnauthorized {
		details = nil
	}

	return &ErrorInfo{
		Code:    err.ErrorCode(),
		Kind:    kind,
		Message: err.Message(),
		Details: details,
	}
}
