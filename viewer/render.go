package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/galaxy/telemetry"
	"github.com/pthm-cable/galaxy/ui"
)

const controlsText = "Drag: orbit | Wheel: zoom | Home: frame | R: reseed | Space: pause | P: perf"

// Update advances one frame: applies finished regenerations, handles
// input and moves the scene and camera.
func (v *Viewer) Update() {
	dt := rl.GetFrameTime()

	v.perf.StartFrame()

	v.perf.StartPhase(telemetry.PhaseApply)
	v.galaxy.Apply()

	v.perf.StartPhase(telemetry.PhaseInput)
	v.handleInput()

	v.perf.StartPhase(telemetry.PhaseUpdate)
	if !v.paused {
		v.scene.Update(float64(dt))
	}
	v.camera.Update(dt)
	v.tickPerf(float64(dt))
}

// Draw renders the frame and ends the frame timing started by Update.
// Panel commits are handled here since the panel is immediate mode.
func (v *Viewer) Draw() {
	v.perf.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(ui.ToRaylib(v.cfg.Derived.Background))

	v.points.Draw(v.scene, v.camera)

	settings, committed := v.panel.Draw(ui.PanelStatus{
		Pending: v.galaxy.Pending(),
		Error:   v.lastError,
	})

	v.hud.Draw(ui.HUDData{
		Points:       v.galaxy.Current().Len(),
		Drawn:        v.points.Drawn(),
		Seed:         v.galaxy.Seed(),
		LastRegenMS:  float64(v.lastRegen.Duration.Microseconds()) / 1000,
		Pending:      v.galaxy.Pending(),
		FPS:          rl.GetFPS(),
		Perf:         v.perf.Stats(),
		ShowPerf:     v.showPerf,
		ScreenWidth:  int32(v.screenWidth),
		ScreenHeight: int32(v.screenHeight),
	})
	v.hud.DrawControls(int32(v.screenHeight), controlsText)

	rl.EndDrawing()
	v.perf.EndFrame()

	if committed {
		v.commit(settings)
	}
}
