package git

import "errors"

var (
	// ErrCommand is returned when a git invocation fails.
	ErrCommand = errors.New("git command failed")
	// ErrInvalidRemote is returned for remote URLs that do not name a
	// repository.
	ErrInvalidRemote = errors.New("invalid remote URL")
)
