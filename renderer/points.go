// Package renderer draws scene point clouds with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/galaxy/camera"
	"github.com/pthm-cable/galaxy/pointfield"
	"github.com/pthm-cable/galaxy/scene"
)

// PointRenderer draws every cloud in a scene as colored points.
type PointRenderer struct {
	// MaxPoints caps the points drawn per cloud; larger clouds are drawn
	// with a stride. 0 draws everything.
	MaxPoints int

	drawn int
}

// NewPointRenderer creates a renderer with the given per-cloud cap.
func NewPointRenderer(maxPoints int) *PointRenderer {
	return &PointRenderer{MaxPoints: maxPoints}
}

// Drawn returns the number of points drawn in the last frame.
func (r *PointRenderer) Drawn() int {
	return r.drawn
}

// Camera3D converts the orbit camera into a raylib perspective camera.
func Camera3D(c *camera.Camera) rl.Camera3D {
	x, y, z := c.Position()
	return rl.Camera3D{
		Position:   rl.Vector3{X: x, Y: y, Z: z},
		Target:     rl.Vector3{X: c.TargetX, Y: c.TargetY, Z: c.TargetZ},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}

// Draw renders all clouds from the camera's point of view. It must be
// called between BeginDrawing and EndDrawing.
func (r *PointRenderer) Draw(sc *scene.Scene, cam *camera.Camera) {
	r.drawn = 0
	t := float32(sc.Elapsed())

	rl.BeginMode3D(Camera3D(cam))
	sc.Each(func(trans *scene.Transform, cloud *scene.Cloud, wave *scene.Wave) {
		if cloud.Additive {
			rl.BeginBlendMode(rl.BlendAdditive)
			rl.DrawRenderBatchActive()
			rl.DisableDepthMask()
		}

		f := cloud.Field
		n := f.Len()
		step := Stride(n, r.MaxPoints)
		dims, sized := PointDims(cloud.Size)
		for i := 0; i < n; i += step {
			x, y, z := WorldPoint(trans, wave, f, i, t)
			cr, cg, cb := f.Color(i)
			pos := rl.Vector3{X: x, Y: y, Z: z}
			if sized {
				rl.DrawCubeV(pos, dims, colorOf(cr, cg, cb))
			} else {
				rl.DrawPoint3D(pos, colorOf(cr, cg, cb))
			}
			r.drawn++
		}

		if cloud.Additive {
			rl.DrawRenderBatchActive()
			rl.EnableDepthMask()
			rl.EndBlendMode()
		}
	})
	rl.EndMode3D()
}

// Stride returns the index step that keeps n points under max.
func Stride(n, max int) int {
	if max <= 0 || n <= max {
		return 1
	}
	return (n + max - 1) / max
}

// PointDims returns the world-space box drawn for each point of a cloud
// with the given size. sized is false for a non-positive or NaN size, in
// which case points are drawn one pixel wide.
func PointDims(size float32) (dims rl.Vector3, sized bool) {
	if !(size > 0) {
		return rl.Vector3{}, false
	}
	return rl.Vector3{X: size, Y: size, Z: size}, true
}

// WorldPoint returns the displayed world position of point i at time t.
// The field itself is never modified.
func WorldPoint(trans *scene.Transform, wave *scene.Wave, f *pointfield.Field, i int, t float32) (float32, float32, float32) {
	x, y, z := f.Point(i)
	y = wave.Displace(x, y, t)
	return trans.Apply(x, y, z)
}

func colorOf(r, g, b float32) rl.Color {
	return rl.Color{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
