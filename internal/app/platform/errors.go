package platform

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnreachable wraps transport failures: connection refused, DNS, timeouts.
var ErrUnreachable = errors.New("platform unreachable")

// ErrInvalidID is returned before any call is made when an id would not form
// a single path segment.
var ErrInvalidID = errors.New("platform: invalid id")

// Error is a non-2xx answer from the platform. Message is taken from the
// {"error": "..."} body the platform sends and may be empty.
type Error struct {
	Status  int
	Method  string
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("platform: %s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("platform: %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Status
	}
	return 0
}

// IsUnauthorized reports whether the platform rejected the admin's session.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// IsForbidden reports a 403 from the platform.
func IsForbidden(err error) bool {
	return StatusOf(err) == http.StatusForbidden
}

// IsNotFound reports a 404 from the platform.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// Message turns err into the text shown in a page's alert region.
// The platform's own message wins; fallback is used when it sent none.
func Message(err error, fallback string) string {
	var pe *Error
	switch {
	case err == nil:
		return ""
	case errors.As(err, &pe) && pe.Message != "":
		return pe.Message
	case errors.As(err, &pe):
		return fallback
	case errors.Is(err, context.DeadlineExceeded):
		return "The platform API did not respond in time."
	case errors.Is(err, ErrUnreachable):
		return "Unable to reach the platform API."
	default:
		return fallback
	}
}
