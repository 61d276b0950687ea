package pointfield

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Params is the full parameter record for one galaxy generation.
type Params struct {
	Count           int     // number of points, >= 1
	Branches        int     // spiral arms, >= 1
	Radius          float64 // maximum radial extent, > 0
	Spin            float64 // extra rotation in radians per unit radius
	Randomness      float64 // jitter scale, >= 0
	RandomnessPower float64 // jitter exponent, > 0 (higher = sharper arms)

	InsideColor  colorful.Color // color at the center
	OutsideColor colorful.Color // color at Radius

	// PointSize is a rendering hint; the generator ignores it.
	PointSize float64
}

// DefaultParams returns the classic three-armed orange and blue galaxy.
func DefaultParams() Params {
	return Params{
		Count:           100000,
		Branches:        3,
		Radius:          5,
		Spin:            1,
		Randomness:      0.2,
		RandomnessPower: 3,
		InsideColor:     MustParseColor("#ff6030"),
		OutsideColor:    MustParseColor("#1b3984"),
		PointSize:       0.01,
	}
}

// Validate checks every constraint Generate relies on.
func (p Params) Validate() error {
	switch {
	case p.Count < 1:
		return fmt.Errorf("%w: count must be >= 1, got %d", ErrInvalidParameter, p.Count)
	case p.Branches < 1:
		return fmt.Errorf("%w: branches must be >= 1, got %d", ErrInvalidParameter, p.Branches)
	case !finite(p.Radius) || p.Radius <= 0:
		return fmt.Errorf("%w: radius must be > 0, got %v", ErrInvalidParameter, p.Radius)
	case !finite(p.Spin):
		return fmt.Errorf("%w: spin must be finite, got %v", ErrInvalidParameter, p.Spin)
	case !finite(p.Randomness) || p.Randomness < 0:
		return fmt.Errorf("%w: randomness must be >= 0, got %v", ErrInvalidParameter, p.Randomness)
	case !finite(p.RandomnessPower) || p.RandomnessPower <= 0:
		return fmt.Errorf("%w: randomness power must be > 0, got %v", ErrInvalidParameter, p.RandomnessPower)
	}
	if err := validColor("inside", p.InsideColor); err != nil {
		return err
	}
	return validColor("outside", p.OutsideColor)
}

// Settings is the serializable form of Params, with colors as hex strings.
// It is what config files and the parameter panel edit.
type Settings struct {
	Count           int     `yaml:"count"`
	Size            float64 `yaml:"size"`
	Radius          float64 `yaml:"radius"`
	Branches        int     `yaml:"branches"`
	Spin            float64 `yaml:"spin"`
	Randomness      float64 `yaml:"randomness"`
	RandomnessPower float64 `yaml:"randomness_power"`
	InsideColor     string  `yaml:"inside_color"`
	OutsideColor    string  `yaml:"outside_color"`
}

// Resolve parses the colors and validates the result.
func (s Settings) Resolve() (Params, error) {
	inside, err := ParseColor(s.InsideColor)
	if err != nil {
		return Params{}, fmt.Errorf("inside color: %w", err)
	}
	outside, err := ParseColor(s.OutsideColor)
	if err != nil {
		return Params{}, fmt.Errorf("outside color: %w", err)
	}
	if !finite(s.Size) || s.Size <= 0 {
		return Params{}, fmt.Errorf("%w: size must be > 0, got %v", ErrInvalidParameter, s.Size)
	}
	p := Params{
		Count:           s.Count,
		Branches:        s.Branches,
		Radius:          s.Radius,
		Spin:            s.Spin,
		Randomness:      s.Randomness,
		RandomnessPower: s.RandomnessPower,
		InsideColor:     inside,
		OutsideColor:    outside,
		PointSize:       s.Size,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Settings converts p back to its serializable form.
func (p Params) Settings() Settings {
	return Settings{
		Count:           p.Count,
		Size:            p.PointSize,
		Radius:          p.Radius,
		Branches:        p.Branches,
		Spin:            p.Spin,
		Randomness:      p.Randomness,
		RandomnessPower: p.RandomnessPower,
		InsideColor:     p.InsideColor.Hex(),
		OutsideColor:    p.OutsideColor.Hex(),
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
