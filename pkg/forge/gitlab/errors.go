package gitlab

import "errors"

// Error definitions for gitlab package.
var (
	ErrUserNotFound = errors.New("user not found")
)
