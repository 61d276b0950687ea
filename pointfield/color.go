package pointfield

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a "#rrggbb" or "#rgb" hex color.
func ParseColor(s string) (colorful.Color, error) {
	if !isHexColor(s) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return c, nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) colorful.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// colorful.Hex scans with Sscanf, which tolerates short and trailing input.
func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// lerpColor interpolates per channel in whatever space a and b are encoded in.
// The result is clamped to [0, 1].
func lerpColor(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t).Clamped()
}

func validColor(name string, c colorful.Color) error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %s color %v has a channel outside [0, 1]", ErrInvalidColor, name, c)
	}
	return nil
}
