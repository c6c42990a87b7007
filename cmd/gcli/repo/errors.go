package repo

import "errors"

// Error definitions for the repo commands.
var (
	ErrInvalidVisibility = errors.New("invalid visibility")
	ErrNotConfirmed      = errors.New("refusing to delete without --yes")
)
