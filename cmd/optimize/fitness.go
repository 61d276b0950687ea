package main

import (
	"context"
	"math"

	"github.com/pthm-cable/galaxy/pointfield"
	"github.com/pthm-cable/galaxy/telemetry"
)

// invalidPenalty is the fitness of parameters that fail validation.
const invalidPenalty = 1e6

// FitnessEvaluator generates galaxies and scores how far their statistics
// are from a target profile. Lower is better.
type FitnessEvaluator struct {
	params *ParamVector
	base   pointfield.Settings
	seeds  []int64
	target telemetry.FieldStats
	gen    *pointfield.Generator
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, base pointfield.Settings, seeds []int64, target telemetry.FieldStats, gen *pointfield.Generator) *FitnessEvaluator {
	return &FitnessEvaluator{
		params: params,
		base:   base,
		seeds:  seeds,
		target: target,
		gen:    gen,
	}
}

// ProfileOf averages the field statistics of s over seeds.
func ProfileOf(gen *pointfield.Generator, s pointfield.Settings, seeds []int64) (telemetry.FieldStats, error) {
	p, err := s.Resolve()
	if err != nil {
		return telemetry.FieldStats{}, err
	}

	var sum telemetry.FieldStats
	for _, seed := range seeds {
		f, err := gen.Generate(context.Background(), p, seed)
		if err != nil {
			return telemetry.FieldStats{}, err
		}
		st := telemetry.ComputeFieldStats(f, p.Radius)
		f.Release()

		sum.ArmPeak += st.ArmPeak
		sum.HeightStd += st.HeightStd
		sum.RadiusP90 += st.RadiusP90
		sum.InnerFraction += st.InnerFraction
	}
	n := float64(len(seeds))
	sum.ArmPeak /= n
	sum.HeightStd /= n
	sum.RadiusP90 /= n
	sum.InnerFraction /= n
	return sum, nil
}

// Evaluate scores raw parameter values.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	s := fe.params.Apply(fe.base, raw)
	got, err := ProfileOf(fe.gen, s, fe.seeds)
	if err != nil {
		return invalidPenalty
	}
	return Distance(got, fe.target, fe.base.Radius)
}

// Distance is the squared error between two profiles. Lengths are scaled
// by radius so the terms are comparable.
func Distance(got, target telemetry.FieldStats, radius float64) float64 {
	sq := func(x float64) float64 { return x * x }
	d := sq((got.ArmPeak-target.ArmPeak)*10) +
		sq((got.HeightStd-target.HeightStd)/radius*10) +
		sq((got.RadiusP90-target.RadiusP90)/radius) +
		sq(got.InnerFraction-target.InnerFraction)
	if math.IsNaN(d) {
		return invalidPenalty
	}
	return d
}
