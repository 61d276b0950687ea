package pointfield

import "math"

// Generate builds a galaxy field from p, drawing seven values per point
// from src: the radius, then for each of x, y, z a jitter magnitude and a
// sign. Parameters are validated before anything is allocated.
func Generate(p Params, src RandomSource) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	f := newField(p.Count)
	fill(p, src, f.positions, f.colors, 0, p.Count)
	return f, nil
}

// fill writes points [i0, i1) into pos and col, which hold exactly those
// points starting at offset 0.
func fill(p Params, src RandomSource, pos, col []float32, i0, i1 int) {
	for i := i0; i < i1; i++ {
		i3 := (i - i0) * 3

		// Uniform in radius, not in area: density peaks at the center.
		r := src.Float64() * p.Radius
		branchAngle := BranchAngle(i, p.Branches)
		spinAngle := r * p.Spin

		jx := jitter(p, src, r)
		jy := jitter(p, src, r)
		jz := jitter(p, src, r)

		angle := branchAngle + spinAngle
		pos[i3] = float32(math.Cos(angle)*r + jx)
		pos[i3+1] = float32(jy)
		pos[i3+2] = float32(math.Sin(angle)*r + jz)

		c := lerpColor(p.InsideColor, p.OutsideColor, clamp01(r/p.Radius))
		col[i3] = float32(c.R)
		col[i3+1] = float32(c.G)
		col[i3+2] = float32(c.B)
	}
}

// jitter draws a magnitude, then a sign (< 0.5 is negative).
func jitter(p Params, src RandomSource, r float64) float64 {
	mag := math.Pow(src.Float64(), p.RandomnessPower)
	if src.Float64() < 0.5 {
		mag = -mag
	}
	return mag * p.Randomness * r
}

// BranchAngle returns the arm angle of point i before spin and jitter.
func BranchAngle(i, branches int) float64 {
	return float64(i%branches) / float64(branches) * 2 * math.Pi
}
