package gcli

import "errors"

var (
	// ErrNoAPIBase is returned for accounts of forges without a public
	// instance when api_base is not set.
	ErrNoAPIBase = errors.New("api_base is required for this forge")
	// ErrNoRepository is returned when neither flags, the git remote nor the
	// account name a repository.
	ErrNoRepository = errors.New("no repository given and none could be detected")
)
