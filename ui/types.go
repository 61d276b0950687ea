// Package ui provides a descriptor-driven parameter panel and HUD.
// Sliders are defined through metadata (range, step, accessors) so the
// panel layout follows the parameter record rather than hard-coded fields.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/galaxy/pointfield"
)

// SliderDescriptor defines one numeric parameter control.
type SliderDescriptor struct {
	ID     string  // Unique identifier (matches the yaml key)
	Label  string  // Display label
	Min    float64 // Lowest value the slider offers
	Max    float64 // Highest value the slider offers
	Step   float64 // Values snap to Min + k*Step
	Format string  // Printf format for the value

	Get func(*pointfield.Settings) float64
	Set func(*pointfield.Settings, float64)
}

// Palette is a pair of gradient endpoints as hex strings.
type Palette struct {
	Inside  string
	Outside string
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	PendingColor   rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	SliderHeight   int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		PendingColor:   rl.Orange,
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     110,
		SliderHeight:   14,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
