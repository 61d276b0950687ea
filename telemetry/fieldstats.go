package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"github.com/pthm-cable/galaxy/pointfield"
	"gonum.org/v1/gonum/stat"
)

// FieldStats summarizes the shape and color of a generated field.
type FieldStats struct {
	Points int `csv:"points"`

	// Planar radius sqrt(x^2 + z^2), jitter included
	RadiusMean float64 `csv:"radius_mean"`
	RadiusStd  float64 `csv:"radius_std"`
	RadiusP10  float64 `csv:"radius_p10"`
	RadiusP50  float64 `csv:"radius_p50"`
	RadiusP90  float64 `csv:"radius_p90"`
	RadiusMax  float64 `csv:"radius_max"`

	// Disc thickness
	HeightStd float64 `csv:"height_std"`
	MaxAbsY   float64 `csv:"max_abs_y"`

	// Fraction of points within half the configured radius
	InnerFraction float64 `csv:"inner_fraction"`

	// Arm concentration: share of points in the most populated angular sector
	ArmPeak float64 `csv:"arm_peak"`

	MeanR float64 `csv:"mean_r"`
	MeanG float64 `csv:"mean_g"`
	MeanB float64 `csv:"mean_b"`
}

// armSectors is the angular resolution of the ArmPeak histogram.
const armSectors = 36

// ComputeFieldStats summarizes f. radius is the configured galaxy radius,
// used for InnerFraction. A released or empty field yields zero stats.
func ComputeFieldStats(f *pointfield.Field, radius float64) FieldStats {
	n := f.Len()
	if n == 0 {
		return FieldStats{}
	}

	radii := make([]float64, n)
	heights := make([]float64, n)
	var sumR, sumG, sumB float64
	var inner int
	var maxY float64
	sectors := make([]int, armSectors)

	for i := 0; i < n; i++ {
		x, y, z := f.Point(i)
		pr := math.Hypot(float64(x), float64(z))
		radii[i] = pr
		heights[i] = float64(y)
		if ay := math.Abs(float64(y)); ay > maxY {
			maxY = ay
		}
		if pr < radius/2 {
			inner++
		}

		angle := math.Atan2(float64(z), float64(x)) + math.Pi
		s := int(angle / (2 * math.Pi) * armSectors)
		if s >= armSectors {
			s = armSectors - 1
		}
		sectors[s]++

		r, g, b := f.Color(i)
		sumR += float64(r)
		sumG += float64(g)
		sumB += float64(b)
	}

	sort.Float64s(radii)
	peak := 0
	for _, c := range sectors {
		if c > peak {
			peak = c
		}
	}

	s := FieldStats{
		Points:        n,
		RadiusMean:    stat.Mean(radii, nil),
		RadiusP10:     stat.Quantile(0.1, stat.Empirical, radii, nil),
		RadiusP50:     stat.Quantile(0.5, stat.Empirical, radii, nil),
		RadiusP90:     stat.Quantile(0.9, stat.Empirical, radii, nil),
		RadiusMax:     radii[n-1],
		MaxAbsY:       maxY,
		InnerFraction: float64(inner) / float64(n),
		ArmPeak:       float64(peak) / float64(n),
		MeanR:         sumR / float64(n),
		MeanG:         sumG / float64(n),
		MeanB:         sumB / float64(n),
	}
	if n > 1 {
		s.RadiusStd = stat.StdDev(radii, nil)
		s.HeightStd = stat.StdDev(heights, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s FieldStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("points", s.Points),
		slog.Float64("radius_mean", s.RadiusMean),
		slog.Float64("radius_p50", s.RadiusP50),
		slog.Float64("radius_p90", s.RadiusP90),
		slog.Float64("height_std", s.HeightStd),
		slog.Float64("inner_fraction", s.InnerFraction),
		slog.Float64("arm_peak", s.ArmPeak),
	)
}
