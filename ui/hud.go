package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/galaxy/telemetry"
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Points       int
	Drawn        int
	Seed         int64
	LastRegenMS  float64
	Pending      bool
	FPS          int32
	Perf         telemetry.PerfStats
	ShowPerf     bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the heads-up display in the top right corner.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	const width = 220
	x := data.ScreenWidth - width - 10
	y := int32(10)

	rl.DrawText(fmt.Sprintf("FPS: %d", data.FPS), x, y, 16, rl.LightGray)
	y += 20
	y = h.renderer.DrawLabelValue(x, y, "Points", fmt.Sprintf("%d", data.Points))
	y = h.renderer.DrawLabelValue(x, y, "Drawn", fmt.Sprintf("%d", data.Drawn))
	y = h.renderer.DrawLabelValue(x, y, "Seed", fmt.Sprintf("%d", data.Seed))
	y = h.renderer.DrawLabelValue(x, y, "Generated in", fmt.Sprintf("%.1f ms", data.LastRegenMS))
	if data.Pending {
		rl.DrawText("regenerating", x, y, h.renderer.Theme.FontSize, h.renderer.Theme.PendingColor)
		y += h.renderer.Theme.LineHeight
	}

	if !data.ShowPerf {
		return
	}
	y += 6
	y = h.renderer.DrawSectionHeader(x, y, "Frame")
	y = h.renderer.DrawLabelValue(x, y, "avg", fmt.Sprintf("%d us", data.Perf.AvgFrame.Microseconds()))
	for _, phase := range telemetry.Phases {
		y = h.renderer.DrawLabelValue(x, y, phase, fmt.Sprintf("%.1f%%", data.Perf.PhasePct[phase]))
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
