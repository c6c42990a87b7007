// Package jsongen builds JSON request payloads incrementally while enforcing
// well-formed nesting.
package jsongen

import "errors"

// Error definitions for jsongen package.
var (
	ErrScopeMismatch    = errors.New("closing a scope that is not the innermost one")
	ErrNotInObject      = errors.New("object member outside of an object")
	ErrAwaitingValue    = errors.New("object member is still waiting for its value")
	ErrMissingMember    = errors.New("value inside an object without a member key")
	ErrRootWritten      = errors.New("document already has a root value")
	ErrUnterminated     = errors.New("unterminated object or array")
	ErrEmptyDocument    = errors.New("empty document")
	ErrUnsupportedValue = errors.New("unsupported value type")
)
