package forge

import (
	"errors"
	"fmt"
)

// Error definitions for forge package.
var (
	ErrUnsupported  = errors.New("not supported by this forge")
	ErrAPI          = errors.New("forge API error")
	ErrUnknownForge = errors.New("unknown forge")
)

// NoMessage is reported when a failed request carried no readable error body.
const NoMessage = "no message"

// APIError is a failed request translated through the forge's error envelope.
type APIError struct {
	Forge      string
	Op         Op
	StatusCode int
	Message    string
}

// Error implements error.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s failed with status %d: %s", e.Forge, e.Op, e.StatusCode, e.Message)
}

// Unwrap makes errors.Is(err, ErrAPI) hold.
func (e *APIError) Unwrap() error {
	return ErrAPI
}
