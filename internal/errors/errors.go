package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUserNotFound is returned when an account lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrUlamNotFound is returned when a reservation references an unknown menu item.
	ErrUlamNotFound = errors.New("ulam not found")
	// ErrInvalidCredentials is returned when no user matches the presented email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnknownUser is returned when a reservation is placed for an email with no account.
	ErrUnknownUser = errors.New("user not found")
	// ErrEmailTaken is returned when signing up with an email that already has an account.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrNoPriceConfigured is returned when a menu item carries neither price field.
	ErrNoPriceConfigured = errors.New("ulam has no price configured")
)

// ValidationError marks missing or malformed input. It maps to HTTP 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// HTTPError pairs a response body with a status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string { return e.Message }

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Duplicate signups map to
// 400 rather than 409 to keep the historical response contract.
func MapErrorToHTTP(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return NewHTTPError(http.StatusBadRequest, ve.Reason)
	}
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnknownUser):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrUlamNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNoPriceConfigured):
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("internal server error: %v", err))
	}
}
