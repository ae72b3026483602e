package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents an application error with HTTP status and error code
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *Error) Unwrap() error {
	return e.Internal
}

// Is matches errors by code so copies made with WithInternal still match
// the sentinel they came from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   err,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    message,
		Internal:   e.Internal,
	}
}

// New creates a new application error
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

var (
	ErrBadRequest      = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrSessionNotFound = New(http.StatusNotFound, "session_not_found", "Live session not found")
	ErrTargetNotFound  = New(http.StatusNotFound, "target_not_found", "Reveal target not found")
	ErrSessionConflict = New(http.StatusConflict, "session_conflict", "Live session already mounted")
	ErrTooManyRequests = New(http.StatusTooManyRequests, "too_many_requests", "Too many requests, slow down")
	ErrInternal        = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// ToHTTPError converts an error to a status code and response body.
// Unknown errors become internal errors.
func ToHTTPError(err error) (int, map[string]any) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, map[string]any{
			"error": map[string]any{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		}
	}

	return http.StatusInternalServerError, map[string]any{
		"error": map[string]any{
			"code":    ErrInternal.Code,
			"message": ErrInternal.Message,
		},
	}
}

// NewBadRequest creates a bad request error with a custom message
func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewSessionNotFound creates a not found error for a live session ID
func NewSessionNotFound(id string) *Error {
	return ErrSessionNotFound.WithMessage(fmt.Sprintf("live session '%s' not found", id))
}
