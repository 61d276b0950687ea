package pointfield

import "errors"

var (
	// ErrInvalidParameter reports a non-positive count/radius, fewer than one
	// branch, a negative randomness, a non-positive randomness power, or a
	// non-finite float.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidColor reports a malformed color string or a channel outside [0, 1].
	ErrInvalidColor = errors.New("invalid color")
)
