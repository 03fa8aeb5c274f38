// Package apperror defines the domain error taxonomy shared by handlers
// and repositories, and its mapping onto HTTP status codes.
package apperror

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when no valid credential is present.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned on a role or ownership mismatch.
	ErrForbidden = errors.New("not authorized")
	// ErrNotFound is returned when an identifier does not resolve.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation is returned on missing or malformed required fields.
	ErrValidation = errors.New("validation failed")
	// ErrConflict is returned on a duplicate join or duplicate email.
	ErrConflict = errors.New("conflict")
	// ErrUpstream is returned when the classification service fails.
	ErrUpstream = errors.New("upstream service unavailable")
)

// StatusCode maps a domain error to its HTTP status. Unknown errors map to
// 500 so unexpected persistence faults never leak details to the caller.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-facing message for an error. Internal faults
// get a generic message.
func Message(err error) string {
	if StatusCode(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
