package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/galaxy/pointfield"
)

// PanelStatus is read-only state shown under the sliders.
type PanelStatus struct {
	Pending bool   // a committed regeneration has not been applied yet
	Error   string // last rejected commit, if any
}

// Panel is the parameter panel. Sliders edit a draft; the full settings
// record is committed when the mouse is released after a change, or
// immediately for buttons.
type Panel struct {
	renderer *Renderer
	sliders  []SliderDescriptor
	palettes []Palette
	defaults pointfield.Settings
	draft    *Draft
	palette  int

	X, Y, Width int32
	height      int32
}

// NewPanel creates a panel showing s. defaults is what the reset button restores.
func NewPanel(s, defaults pointfield.Settings, palettes []Palette) *Panel {
	return &Panel{
		renderer: NewRenderer(),
		sliders:  GalaxySliders(),
		palettes: palettes,
		defaults: defaults,
		draft:    NewDraft(s),
		X:        10,
		Y:        10,
		Width:    330,
	}
}

// Draft exposes the panel's edit state.
func (p *Panel) Draft() *Draft {
	return p.draft
}

// Contains reports whether the screen point lies over the panel, so camera
// input can ignore it.
func (p *Panel) Contains(x, y float32) bool {
	return x >= float32(p.X) && x < float32(p.X+p.Width) &&
		y >= float32(p.Y) && y < float32(p.Y+p.height)
}

// NextPalette switches the working colors to the next preset.
func (p *Panel) NextPalette() {
	if len(p.palettes) == 0 {
		return
	}
	p.palette = (p.palette + 1) % len(p.palettes)
	w := p.draft.Working()
	w.InsideColor = p.palettes[p.palette].Inside
	w.OutsideColor = p.palettes[p.palette].Outside
}

// Draw renders the panel and handles its input. It returns the settings
// record and true when a change was committed this frame.
func (p *Panel) Draw(status PanelStatus) (pointfield.Settings, bool) {
	th := p.renderer.Theme
	x := p.X + th.Padding
	y := p.Y + th.Padding
	inner := p.Width - 2*th.Padding

	p.renderer.DrawPanel(p.X, p.Y, p.Width, p.height)
	y = p.renderer.DrawSectionHeader(x, y, "Galaxy")

	w := p.draft.Working()
	sliderX := float32(x + th.LabelWidth)
	sliderW := float32(inner - th.LabelWidth - 50)
	for _, d := range p.sliders {
		cur := d.Get(w)
		rl.DrawText(d.Label, x, y, th.FontSize, th.LabelColor)
		v := gui.SliderBar(
			rl.Rectangle{X: sliderX, Y: float32(y), Width: sliderW, Height: float32(th.SliderHeight)},
			"", "",
			float32(cur), float32(d.Min), float32(d.Max),
		)
		if v != float32(cur) && d.Apply(w, float64(v)) {
			p.draft.Edit()
		}
		rl.DrawText(fmt.Sprintf(d.Format, d.Get(w)), int32(sliderX+sliderW)+6, y, th.FontSize, th.ValueColor)
		y += th.LineHeight + 4
	}

	y = p.renderer.DrawSpacer(y, 4)
	y = p.renderer.DrawColorSwatch(x, y, "Inside color", w.InsideColor)
	y = p.renderer.DrawColorSwatch(x, y, "Outside color", w.OutsideColor)
	y = p.renderer.DrawSpacer(y, 6)

	commitNow := false
	half := float32(inner-10) / 2
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: half, Height: 24}, "Next palette") {
		p.NextPalette()
		commitNow = true
	}
	if gui.Button(rl.Rectangle{X: float32(x) + half + 10, Y: float32(y), Width: half, Height: 24}, "Reset") {
		*w = p.defaults
		p.palette = 0
		commitNow = true
	}
	y += 30

	switch {
	case status.Error != "":
		rl.DrawText(status.Error, x, y, th.FontSize, rl.Red)
		y += th.LineHeight
	case status.Pending:
		rl.DrawText("Generating...", x, y, th.FontSize, th.PendingColor)
		y += th.LineHeight
	}

	p.height = y + th.Padding - p.Y

	if commitNow || (p.draft.Editing() && rl.IsMouseButtonReleased(rl.MouseLeftButton)) {
		return p.draft.Finish()
	}
	return pointfield.Settings{}, false
}
