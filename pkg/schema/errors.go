// Package schema turns declarative descriptions of JSON objects into parsers
// that populate Go records straight from a jsonstream.Stream.
package schema

import (
	"errors"
	"fmt"
)

// ErrStructural is matched by every StructuralError.
var ErrStructural = errors.New("structural json error")

// StructuralError reports a parse failure with the record and field in which it
// happened. Field is empty when the failure is about the record itself.
type StructuralError struct {
	Record string
	Field  string
	Err    error
}

// Error implements error.
func (e *StructuralError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s: %v", ErrStructural, e.Record, e.Err)
	}
	return fmt.Sprintf("%s: %s.%s: %v", ErrStructural, e.Record, e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StructuralError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrStructural) hold for any StructuralError.
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}
