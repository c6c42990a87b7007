package account

import "errors"

// ErrConfigExists is returned when init would overwrite a configuration.
var ErrConfigExists = errors.New("configuration already exists, use --force to overwrite")
