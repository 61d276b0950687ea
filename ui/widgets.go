package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pthm-cable/galaxy/pointfield"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight + 4
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawColorSwatch draws a labelled color swatch with its hex value.
func (r *Renderer) DrawColorSwatch(x, y int32, label, hex string) int32 {
	swatchSize := int32(12)

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)

	c, err := pointfield.ParseColor(hex)
	if err != nil {
		rl.DrawText("invalid", x+r.Theme.LabelWidth, y, r.Theme.FontSize, rl.Red)
		return y + r.Theme.LineHeight
	}
	rl.DrawRectangle(x+r.Theme.LabelWidth, y+1, swatchSize, swatchSize, ToRaylib(c))
	rl.DrawText(hex, x+r.Theme.LabelWidth+swatchSize+6, y, r.Theme.FontSize, r.Theme.ValueColor)

	return y + r.Theme.LineHeight
}

// DrawSpacer adds vertical space and returns new Y.
func (r *Renderer) DrawSpacer(y int32, height int32) int32 {
	return y + height
}

// ToRaylib converts a color to an opaque raylib color.
func ToRaylib(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.Color{R: r, G: g, B: b, A: 255}
}
