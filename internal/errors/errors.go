package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized is returned when a token is missing, invalid or expired.
	ErrUnauthorized = errors.New("invalid or missing token")
	// ErrInvalidCredentials is returned when login fails, whatever the reason.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConflict is returned when a username or email is already registered.
	ErrConflict = errors.New("username or email already exists")
	// ErrNotFound is returned when a record does not exist or belongs to another user.
	ErrNotFound = errors.New("record not found")
	// ErrStore is returned when the backing store fails.
	ErrStore = errors.New("store error")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// Validation wraps ErrValidation with a client-facing detail.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Store wraps ErrStore with the failed operation and its cause.
// The cause is kept for logs only and never reaches the response body.
func Store(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrStore, op, cause)
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthorized.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusConflict, ErrConflict.Error(), "CONFLICT")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
