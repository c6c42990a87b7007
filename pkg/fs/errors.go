package fs

import "errors"

// ErrHomeDir is returned when the home directory cannot be determined.
var ErrHomeDir = errors.New("cannot determine home directory")
