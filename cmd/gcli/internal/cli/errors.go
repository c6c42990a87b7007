package cli

import "errors"

// Error definitions for the cli package.
var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrNoBranch      = errors.New("cannot determine the branch to open the pull from")
)
