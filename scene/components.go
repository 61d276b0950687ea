package scene

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/galaxy/pointfield"
)

// Transform places a cloud in the world: translated by Position and
// rotated by Yaw radians around the vertical axis.
type Transform struct {
	Position r3.Vec
	Yaw      float64
}

// Apply maps a local point into world space.
func (t *Transform) Apply(x, y, z float32) (float32, float32, float32) {
	sin := math32.Sin(float32(t.Yaw))
	cos := math32.Cos(float32(t.Yaw))
	rx := x*cos + z*sin
	rz := -x*sin + z*cos
	return rx + float32(t.Position.X), y + float32(t.Position.Y), rz + float32(t.Position.Z)
}

// Cloud is the renderable point cloud of an entity.
type Cloud struct {
	Field    *pointfield.Field // nil until the first install
	Size     float32           // point size hint
	Additive bool              // additive blending without depth writes
	Version  uint64            // bumped on every install
}

// Spin rotates a cloud at a constant rate.
type Spin struct {
	Speed float64 // radians per second, 0 = static
}

// Wave displaces a cloud vertically: y = Amplitude * sin(t + x).
type Wave struct {
	Amplitude float32 // 0 = no wave
}

// Displace returns the displayed height of a point at local x and height y.
func (w *Wave) Displace(x, y, t float32) float32 {
	if w.Amplitude == 0 {
		return y
	}
	return w.Amplitude * math32.Sin(t+x)
}
