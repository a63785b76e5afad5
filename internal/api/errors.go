package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned for 401/403 responses: the caller is not
	// allowed to see or change the resource.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned for 404 responses. For owner lookups this
	// means "nothing exists yet", not a failure.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable covers network failures and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")

	// ErrTimeout is returned when a request exceeds the configured bound.
	ErrTimeout = errors.New("request timed out")
)

// APIError carries the HTTP status and, when the server supplied one, its
// error message. It unwraps to the matching sentinel so callers can branch
// with errors.Is without inspecting status codes themselves.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.Status == 401 || e.Status == 403:
		return ErrUnauthorized
	case e.Status == 404:
		return ErrNotFound
	case e.Status >= 500:
		return ErrUnavailable
	default:
		return nil
	}
}
