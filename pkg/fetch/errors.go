// Package fetch drives single and paginated forge requests through a
// transport and the schema parsers.
package fetch

import "errors"

// Error definitions for fetch package.
var (
	ErrFetch = errors.New("fetch failed")
	ErrParse = errors.New("failed to parse response")
)
