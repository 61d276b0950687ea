package viewer

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard and mouse input.
func (v *Viewer) handleInput() {
	v.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		v.paused = !v.paused
	}
	if rl.IsKeyPressed(rl.KeyP) {
		v.showPerf = !v.showPerf
	}
	if rl.IsKeyPressed(rl.KeyR) {
		v.reseed()
	}

	v.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (v *Viewer) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == v.screenWidth && h == v.screenHeight {
		return
	}
	v.screenWidth = w
	v.screenHeight = h
	v.camera.Resize(w, h)
}

// handleCameraInput processes orbit and zoom controls. Drags that start
// over the panel belong to the panel.
func (v *Viewer) handleCameraInput() {
	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		v.dragging = !v.panel.Contains(mouse.X, mouse.Y)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		v.dragging = false
	}
	if v.dragging {
		d := rl.GetMouseDelta()
		v.camera.Rotate(d.X, d.Y)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !v.panel.Contains(mouse.X, mouse.Y) {
		v.camera.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		v.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		v.camera.ZoomBy(0.8)
	}

	// Home frames the current galaxy
	if rl.IsKeyPressed(rl.KeyHome) {
		if extent := v.scene.Extent(v.galaxyEnt); extent > 0 {
			v.camera.Frame(float32(extent))
		} else {
			v.camera.Reset(float32(v.cfg.Camera.Distance))
		}
	}
}
