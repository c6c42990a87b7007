package gitea

import "errors"

// Error definitions for gitea package.
var (
	ErrLabelNotFound = errors.New("label not found")
)
