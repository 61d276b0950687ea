package pointfield

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// recordingSource replays a fixed sequence and counts draws.
type recordingSource struct {
	values []float64
	n      int
}

func (s *recordingSource) Float64() float64 {
	v := s.values[s.n%len(s.values)]
	s.n++
	return v
}

func testParams() Params {
	p := DefaultParams()
	p.Count = 5000
	return p
}

func TestGenerateBufferLengths(t *testing.T) {
	for _, count := range []int{1, 2, 3, 100, 4097} {
		p := testParams()
		p.Count = count

		f, err := Generate(p, NewSource(1))
		if err != nil {
			t.Fatalf("count=%d: unexpected error: %v", count, err)
		}
		if len(f.Positions()) != 3*count {
			t.Errorf("count=%d: expected %d positions, got %d", count, 3*count, len(f.Positions()))
		}
		if len(f.Colors()) != 3*count {
			t.Errorf("count=%d: expected %d colors, got %d", count, 3*count, len(f.Colors()))
		}
		if f.Len() != count {
			t.Errorf("count=%d: Len() = %d", count, f.Len())
		}
	}
}

func TestGenerateReferencePoint(t *testing.T) {
	p := Params{
		Count:           1,
		Branches:        1,
		Radius:          5,
		Spin:            0,
		Randomness:      0,
		RandomnessPower: 3,
		InsideColor:     MustParseColor("#ff0000"),
		OutsideColor:    MustParseColor("#0000ff"),
		PointSize:       0.01,
	}

	f, err := Generate(p, ConstantSource(0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x, y, z := f.Point(0)
	if math.Abs(float64(x)-2.5) > 1e-6 || y != 0 || z != 0 {
		t.Errorf("expected position (2.5, 0, 0), got (%f, %f, %f)", x, y, z)
	}

	r, g, b := f.Color(0)
	if r != 0.5 || g != 0 || b != 0.5 {
		t.Errorf("expected color (0.5, 0, 0.5), got (%f, %f, %f)", r, g, b)
	}
}

func TestGenerateDrawsSevenPerPoint(t *testing.T) {
	p := testParams()
	p.Count = 10
	src := &recordingSource{values: []float64{0.1, 0.7, 0.3, 0.9, 0.2, 0.6, 0.4}}

	if _, err := Generate(p, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.n != 70 {
		t.Errorf("expected 70 draws, got %d", src.n)
	}
}

func TestGenerateJitterSign(t *testing.T) {
	p := Params{
		Count:           1,
		Branches:        1,
		Radius:          2,
		Randomness:      1,
		RandomnessPower: 1,
		InsideColor:     MustParseColor("#000000"),
		OutsideColor:    MustParseColor("#ffffff"),
	}

	// radius draw 0.5 -> r = 1; each axis: magnitude 0.5 then coin.
	// x coin 0.2 (negative), y coin 0.5 (positive), z coin 0.9 (positive).
	src := &recordingSource{values: []float64{0.5, 0.5, 0.2, 0.5, 0.5, 0.5, 0.9}}
	f, err := Generate(p, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x, y, z := f.Point(0)
	if math.Abs(float64(x)-0.5) > 1e-6 {
		t.Errorf("expected x = 1 - 0.5 = 0.5, got %f", x)
	}
	if math.Abs(float64(y)-0.5) > 1e-6 {
		t.Errorf("expected y = +0.5, got %f", y)
	}
	if math.Abs(float64(z)-0.5) > 1e-6 {
		t.Errorf("expected z = 0 + 0.5 = 0.5, got %f", z)
	}
}

func TestGenerateReproducible(t *testing.T) {
	p := testParams()

	a, err := Generate(p, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Generate(p, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a.Positions() {
		if math.Float32bits(a.Positions()[i]) != math.Float32bits(b.Positions()[i]) {
			t.Fatalf("position %d differs: %v vs %v", i, a.Positions()[i], b.Positions()[i])
		}
		if math.Float32bits(a.Colors()[i]) != math.Float32bits(b.Colors()[i]) {
			t.Fatalf("color %d differs: %v vs %v", i, a.Colors()[i], b.Colors()[i])
		}
	}
}

func TestGenerateRadiusWithinBounds(t *testing.T) {
	p := testParams()
	p.Randomness = 0 // no jitter: planar distance is the sampled radius

	f, err := Generate(p, NewSource(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const eps = 1e-4
	for i := 0; i < f.Len(); i++ {
		x, y, z := f.Point(i)
		r := math.Hypot(float64(x), float64(z))
		if r < 0 || r > p.Radius+eps {
			t.Fatalf("point %d radius %f outside [0, %f]", i, r, p.Radius)
		}
		if y != 0 {
			t.Fatalf("point %d: expected y = 0 without jitter, got %f", i, y)
		}
	}
}

func TestGenerateRadiusFromDraw(t *testing.T) {
	p := testParams()
	p.Count = 1
	p.Randomness = 0
	p.Spin = 0

	for _, u := range []float64{0, 0.25, 0.999} {
		f, err := Generate(p, ConstantSource(u))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		x, _, z := f.Point(0)
		r := math.Hypot(float64(x), float64(z))
		if math.Abs(r-u*p.Radius) > 1e-5 {
			t.Errorf("u=%v: expected radius %f, got %f", u, u*p.Radius, r)
		}
	}
}

func TestGenerateColorChannelsInRange(t *testing.T) {
	p := testParams()
	p.InsideColor = MustParseColor("#ffffff")
	p.OutsideColor = MustParseColor("#000000")

	f, err := Generate(p, NewSource(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range f.Colors() {
		if c < 0 || c > 1 {
			t.Fatalf("color channel %d = %f outside [0, 1]", i, c)
		}
	}
}

func TestGenerateBranchPeriodic(t *testing.T) {
	p := testParams()
	p.Count = 12
	p.Branches = 4
	p.Spin = 0
	p.Randomness = 0

	// Same radius draw for every point: only the arm angle differs.
	f, err := Generate(p, ConstantSource(0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i+p.Branches < p.Count; i++ {
		x0, _, z0 := f.Point(i)
		x1, _, z1 := f.Point(i + p.Branches)
		if x0 != x1 || z0 != z1 {
			t.Errorf("points %d and %d should share an arm: (%f,%f) vs (%f,%f)",
				i, i+p.Branches, x0, z0, x1, z1)
		}
		if BranchAngle(i, p.Branches) != BranchAngle(i+p.Branches, p.Branches) {
			t.Errorf("branch angle of %d and %d differ", i, i+p.Branches)
		}
	}

	// Consecutive indices cycle through arms.
	x0, _, z0 := f.Point(0)
	x1, _, z1 := f.Point(1)
	if x0 == x1 && z0 == z1 {
		t.Error("consecutive points should be on different arms")
	}
}

func TestGenerateCenterWeighted(t *testing.T) {
	p := testParams()
	p.Count = 20000
	p.Randomness = 0

	f, err := Generate(p, NewSource(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Uniform in radius puts about half the points inside R/2.
	// Area-uniform sampling would put only a quarter there.
	inner := 0
	for i := 0; i < f.Len(); i++ {
		x, _, z := f.Point(i)
		if math.Hypot(float64(x), float64(z)) < p.Radius/2 {
			inner++
		}
	}
	frac := float64(inner) / float64(f.Len())
	if frac < 0.45 || frac > 0.55 {
		t.Errorf("expected ~50%% of points inside half radius, got %.1f%%", frac*100)
	}
}

func TestGenerateInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
		want   error
	}{
		{"zero count", func(p *Params) { p.Count = 0 }, ErrInvalidParameter},
		{"negative count", func(p *Params) { p.Count = -3 }, ErrInvalidParameter},
		{"zero radius", func(p *Params) { p.Radius = 0 }, ErrInvalidParameter},
		{"nan radius", func(p *Params) { p.Radius = math.NaN() }, ErrInvalidParameter},
		{"zero branches", func(p *Params) { p.Branches = 0 }, ErrInvalidParameter},
		{"negative randomness", func(p *Params) { p.Randomness = -0.1 }, ErrInvalidParameter},
		{"zero power", func(p *Params) { p.RandomnessPower = 0 }, ErrInvalidParameter},
		{"infinite spin", func(p *Params) { p.Spin = math.Inf(1) }, ErrInvalidParameter},
		{"inside color out of range", func(p *Params) { p.InsideColor.R = 1.5 }, ErrInvalidColor},
		{"outside color out of range", func(p *Params) { p.OutsideColor.B = -0.1 }, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.modify(&p)

			src := &recordingSource{values: []float64{0.5}}
			f, err := Generate(p, src)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if f != nil {
				t.Error("expected no field on error")
			}
			if src.n != 0 {
				t.Errorf("expected no draws before validation failure, got %d", src.n)
			}
		})
	}
}

func TestFieldRelease(t *testing.T) {
	f, err := Generate(testParams(), NewSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Released() {
		t.Fatal("fresh field reports released")
	}

	f.Release()
	f.Release()

	if !f.Released() {
		t.Error("expected field to be released")
	}
	if f.Len() != 0 || f.Positions() != nil || f.Colors() != nil {
		t.Error("expected buffers to be dropped")
	}
}

func TestScatter(t *testing.T) {
	f, err := Scatter(2000, 10, NewSource(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Len() != 2000 {
		t.Fatalf("expected 2000 points, got %d", f.Len())
	}
	for i, v := range f.Positions() {
		if v < -5 || v > 5 {
			t.Fatalf("position component %d = %f outside cube", i, v)
		}
	}
	for i, c := range f.Colors() {
		if c < 0 || c > 1 {
			t.Fatalf("color channel %d = %f outside [0, 1]", i, c)
		}
	}

	if _, err := Scatter(0, 10, NewSource(5)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for zero count, got %v", err)
	}
	if _, err := Scatter(10, 0, NewSource(5)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for zero extent, got %v", err)
	}
}
