package ui

import (
	"math"

	"github.com/pthm-cable/galaxy/pointfield"
)

// GalaxySliders returns the slider layout for the galaxy parameters.
func GalaxySliders() []SliderDescriptor {
	return []SliderDescriptor{
		{
			ID: "count", Label: "Count", Min: 100, Max: 1000000, Step: 100, Format: "%.0f",
			Get: func(s *pointfield.Settings) float64 { return float64(s.Count) },
			Set: func(s *pointfield.Settings, v float64) { s.Count = int(math.Round(v)) },
		},
		{
			ID: "size", Label: "Size", Min: 0.001, Max: 0.1, Step: 0.001, Format: "%.3f",
			Get: func(s *pointfield.Settings) float64 { return s.Size },
			Set: func(s *pointfield.Settings, v float64) { s.Size = v },
		},
		{
			ID: "radius", Label: "Radius", Min: 0.01, Max: 20, Step: 0.01, Format: "%.2f",
			Get: func(s *pointfield.Settings) float64 { return s.Radius },
			Set: func(s *pointfield.Settings, v float64) { s.Radius = v },
		},
		{
			ID: "branches", Label: "Branches", Min: 2, Max: 20, Step: 1, Format: "%.0f",
			Get: func(s *pointfield.Settings) float64 { return float64(s.Branches) },
			Set: func(s *pointfield.Settings, v float64) { s.Branches = int(math.Round(v)) },
		},
		{
			ID: "spin", Label: "Spin", Min: -5, Max: 5, Step: 0.001, Format: "%.3f",
			Get: func(s *pointfield.Settings) float64 { return s.Spin },
			Set: func(s *pointfield.Settings, v float64) { s.Spin = v },
		},
		{
			ID: "randomness", Label: "Randomness", Min: 0, Max: 2, Step: 0.001, Format: "%.3f",
			Get: func(s *pointfield.Settings) float64 { return s.Randomness },
			Set: func(s *pointfield.Settings, v float64) { s.Randomness = v },
		},
		{
			// power must stay positive
			ID: "randomness_power", Label: "Randomness power", Min: 0.001, Max: 10, Step: 0.001, Format: "%.3f",
			Get: func(s *pointfield.Settings) float64 { return s.RandomnessPower },
			Set: func(s *pointfield.Settings, v float64) { s.RandomnessPower = v },
		},
	}
}

// Quantize clamps v to [d.Min, d.Max] and snaps it to the slider step.
func (d SliderDescriptor) Quantize(v float64) float64 {
	if math.IsNaN(v) {
		return d.Min
	}
	if d.Step > 0 {
		v = d.Min + math.Round((v-d.Min)/d.Step)*d.Step
		// strip float noise from the step multiplication
		v = math.Round(v*1e9) / 1e9
	}
	return math.Max(d.Min, math.Min(d.Max, v))
}

// Apply sets the quantized value on s and reports whether it changed.
func (d SliderDescriptor) Apply(s *pointfield.Settings, v float64) bool {
	q := d.Quantize(v)
	if q == d.Get(s) {
		return false
	}
	d.Set(s, q)
	return true
}
