// Package jsonstream provides a pull-based JSON token stream and the typed
// extractors that consume exactly one value from it.
package jsonstream

import "errors"

// Error definitions for jsonstream package.
var (
	// Grammar errors.
	ErrSyntax          = errors.New("malformed json")
	ErrUnexpectedEOF   = errors.New("unexpected end of json input")
	ErrUnexpectedToken = errors.New("unexpected json token")

	// Conversion errors.
	ErrTypeMismatch  = errors.New("json type mismatch")
	ErrInvalidNumber = errors.New("invalid json number")
	ErrInvalidColour = errors.New("invalid colour value")
)
