// Package camera provides an orbiting 3D camera for viewing point clouds.
package camera

import "github.com/chewxy/math32"

// Camera orbits a fixed target on a sphere. Input moves the goal angles and
// distance; Update eases the current values toward them (damping). There is
// no panning: the target never moves.
type Camera struct {
	// Current orientation in radians and distance from the target
	Yaw, Pitch, Distance float32

	// Values Update eases toward
	GoalYaw, GoalPitch, GoalDistance float32

	// Target is the point the camera looks at
	TargetX, TargetY, TargetZ float32

	// Damping is the easing rate per second (0 = snap to goal)
	Damping float32

	// RotateSpeed is radians per screen pixel dragged
	RotateSpeed float32

	// Vertical field of view in degrees
	FOV float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Constraints
	MinDistance, MaxDistance float32
	MinPitch, MaxPitch       float32
}

// New creates a camera looking at the origin from distance along +Z.
func New(distance, viewportW, viewportH float32) *Camera {
	c := &Camera{
		Damping:     10,
		RotateSpeed: 0.005,
		FOV:         75,
		ViewportW:   viewportW,
		ViewportH:   viewportH,
		MinDistance: 0.5,
		MaxDistance: 50,
		MinPitch:    -1.5,
		MaxPitch:    1.5,
	}
	c.Distance = clamp(distance, c.MinDistance, c.MaxDistance)
	c.GoalDistance = c.Distance
	return c
}

// Rotate turns the goal orientation by a screen-space drag in pixels.
func (c *Camera) Rotate(dx, dy float32) {
	c.GoalYaw -= dx * c.RotateSpeed
	c.GoalPitch = clamp(c.GoalPitch+dy*c.RotateSpeed, c.MinPitch, c.MaxPitch)
}

// ZoomBy scales the goal distance; factors above 1 move closer.
func (c *Camera) ZoomBy(factor float32) {
	if factor <= 0 {
		return
	}
	c.GoalDistance = clamp(c.GoalDistance/factor, c.MinDistance, c.MaxDistance)
}

// Update eases the current orientation and distance toward the goals.
func (c *Camera) Update(dt float32) {
	k := float32(1)
	if c.Damping > 0 {
		k = 1 - math32.Exp(-c.Damping*dt)
	}
	c.Yaw += (c.GoalYaw - c.Yaw) * k
	c.Pitch += (c.GoalPitch - c.Pitch) * k
	c.Distance += (c.GoalDistance - c.Distance) * k
}

// Position returns the camera position in world coordinates.
func (c *Camera) Position() (x, y, z float32) {
	cp := math32.Cos(c.Pitch)
	x = c.TargetX + c.Distance*cp*math32.Sin(c.Yaw)
	y = c.TargetY + c.Distance*math32.Sin(c.Pitch)
	z = c.TargetZ + c.Distance*cp*math32.Cos(c.Yaw)
	return x, y, z
}

// Aspect returns the viewport aspect ratio.
func (c *Camera) Aspect() float32 {
	if c.ViewportH == 0 {
		return 1
	}
	return c.ViewportW / c.ViewportH
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Frame sets the goal distance so a sphere of the given radius fits the view.
func (c *Camera) Frame(radius float32) {
	if radius <= 0 {
		return
	}
	halfFOV := c.FOV * math32.Pi / 360
	c.GoalDistance = clamp(radius/math32.Sin(halfFOV), c.MinDistance, c.MaxDistance)
}

// Reset returns the camera to the front view at the given distance.
func (c *Camera) Reset(distance float32) {
	c.Yaw, c.Pitch = 0, 0
	c.GoalYaw, c.GoalPitch = 0, 0
	c.Distance = clamp(distance, c.MinDistance, c.MaxDistance)
	c.GoalDistance = c.Distance
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
