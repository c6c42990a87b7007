// Package issue parses the ways users point at an issue or pull request.
package issue

import "errors"

// Issue-specific error types.
var (
	ErrInvalidIssueReference = errors.New("invalid issue reference format")
)
