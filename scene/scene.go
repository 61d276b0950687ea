// Package scene stores the point clouds on display in an ECS world.
//
// Each cloud is an entity with Transform, Cloud, Spin and Wave components.
// A cloud entity doubles as an install target: Sink returns a value that
// swaps fields into the entity's Cloud component.
package scene

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/galaxy/pointfield"
)

// Scene holds the cloud entities and the scene clock.
type Scene struct {
	world *ecs.World

	cloudMapper *ecs.Map4[Transform, Cloud, Spin, Wave]
	cloudFilter *ecs.Filter4[Transform, Cloud, Spin, Wave]
	cloudMap    *ecs.Map1[Cloud]
	transMap    *ecs.Map1[Transform]

	elapsed   float64
	installs  int
	disposals int
}

// New creates an empty scene.
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:       world,
		cloudMapper: ecs.NewMap4[Transform, Cloud, Spin, Wave](world),
		cloudFilter: ecs.NewFilter4[Transform, Cloud, Spin, Wave](world),
		cloudMap:    ecs.NewMap1[Cloud](world),
		transMap:    ecs.NewMap1[Transform](world),
	}
}

// CloudOptions describes a new cloud entity.
type CloudOptions struct {
	Position  r3.Vec
	Size      float32
	Additive  bool
	SpinSpeed float64
	Wave      float32
}

// AddCloud creates an empty cloud entity.
func (s *Scene) AddCloud(opts CloudOptions) ecs.Entity {
	trans := Transform{Position: opts.Position}
	cloud := Cloud{Size: opts.Size, Additive: opts.Additive}
	spin := Spin{Speed: opts.SpinSpeed}
	wave := Wave{Amplitude: opts.Wave}
	return s.cloudMapper.NewEntity(&trans, &cloud, &spin, &wave)
}

// Cloud returns the cloud component of e.
func (s *Scene) Cloud(e ecs.Entity) *Cloud {
	return s.cloudMap.Get(e)
}

// Transform returns the transform component of e.
func (s *Scene) Transform(e ecs.Entity) *Transform {
	return s.transMap.Get(e)
}

// Update advances the scene clock and spins clouds.
func (s *Scene) Update(dt float64) {
	s.elapsed += dt

	query := s.cloudFilter.Query()
	for query.Next() {
		trans, _, spin, _ := query.Get()
		if spin.Speed == 0 {
			continue
		}
		trans.Yaw = math.Mod(trans.Yaw+spin.Speed*dt, 2*math.Pi)
	}
}

// Elapsed returns the scene clock in seconds.
func (s *Scene) Elapsed() float64 {
	return s.elapsed
}

// Each calls fn for every cloud entity with a live field.
func (s *Scene) Each(fn func(trans *Transform, cloud *Cloud, wave *Wave)) {
	query := s.cloudFilter.Query()
	for query.Next() {
		trans, cloud, _, wave := query.Get()
		if cloud.Field == nil || cloud.Field.Released() {
			continue
		}
		fn(trans, cloud, wave)
	}
}

// Counts returns the number of installs and disposals performed through sinks.
func (s *Scene) Counts() (installs, disposals int) {
	return s.installs, s.disposals
}

// Bounds returns the axis-aligned bounds of e's field in local space.
// ok is false when the entity has no field.
func (s *Scene) Bounds(e ecs.Entity) (min, max r3.Vec, ok bool) {
	cloud := s.cloudMap.Get(e)
	if cloud == nil || cloud.Field == nil || cloud.Field.Len() == 0 {
		return r3.Vec{}, r3.Vec{}, false
	}

	f := cloud.Field
	x, y, z := f.Point(0)
	min = r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}
	max = min
	for i := 1; i < f.Len(); i++ {
		x, y, z := f.Point(i)
		p := r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}
		min = r3.Vec{X: math.Min(min.X, p.X), Y: math.Min(min.Y, p.Y), Z: math.Min(min.Z, p.Z)}
		max = r3.Vec{X: math.Max(max.X, p.X), Y: math.Max(max.Y, p.Y), Z: math.Max(max.Z, p.Z)}
	}
	return min, max, true
}

// Extent returns the largest distance from the cloud center to a corner of its bounds.
func (s *Scene) Extent(e ecs.Entity) float64 {
	min, max, ok := s.Bounds(e)
	if !ok {
		return 0
	}
	return r3.Norm(r3.Scale(0.5, r3.Sub(max, min)))
}

// Sink returns an install target that swaps fields into e's Cloud.
func (s *Scene) Sink(e ecs.Entity) *CloudSink {
	return &CloudSink{scene: s, entity: e}
}

// CloudSink installs fields into one cloud entity.
type CloudSink struct {
	scene  *Scene
	entity ecs.Entity
}

// Install makes f the displayed field.
func (c *CloudSink) Install(f *pointfield.Field) {
	cloud := c.scene.cloudMap.Get(c.entity)
	cloud.Field = f
	cloud.Version++
	c.scene.installs++
}

// Dispose releases f. The cloud stops drawing it if it is still attached.
func (c *CloudSink) Dispose(f *pointfield.Field) {
	cloud := c.scene.cloudMap.Get(c.entity)
	if cloud.Field == f {
		cloud.Field = nil
	}
	f.Release()
	c.scene.disposals++
}
