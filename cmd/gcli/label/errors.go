package label

import "errors"

// ErrInvalidColour is returned for colours that are not rrggbb.
var ErrInvalidColour = errors.New("invalid colour")
