// Package transport performs the HTTP exchanges with forge APIs.
package transport

import (
	"errors"
	"fmt"
)

// Error definitions for transport package.
var (
	ErrInvalidBaseURL = errors.New("invalid API base URL")
	ErrRequest        = errors.New("request failed")
	ErrHTTPStatus     = errors.New("unexpected HTTP status")
)

// HTTPError is returned when the forge answers with a non-2xx status.
// Body holds the raw error envelope sent by the forge, if any.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Error implements error.
func (e *HTTPError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s: %s", ErrHTTPStatus, e.Status)
	}
	return fmt.Sprintf("%s: %d", ErrHTTPStatus, e.StatusCode)
}

// Unwrap makes errors.Is(err, ErrHTTPStatus) hold.
func (e *HTTPError) Unwrap() error {
	return ErrHTTPStatus
}
