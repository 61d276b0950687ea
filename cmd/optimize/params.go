package main

import "github.com/pthm-cable/galaxy/pointfield"

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name string  // Human-readable name (matches the yaml key)
	Min  float64 // Lower bound
	Max  float64 // Upper bound
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the shape parameters of a galaxy. Count, radius,
// branches and colors stay fixed at the base settings.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "spin", Min: -5, Max: 5},
			{Name: "randomness", Min: 0, Max: 2},
			{Name: "randomness_power", Min: 0.1, Max: 10},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// Apply writes clamped values into a copy of s.
// Order must match Specs order.
func (pv *ParamVector) Apply(s pointfield.Settings, values []float64) pointfield.Settings {
	clamped := pv.Clamp(values)
	s.Spin = clamped[0]
	s.Randomness = clamped[1]
	s.RandomnessPower = clamped[2]
	return s
}

// Extract reads the current parameter values from s.
func (pv *ParamVector) Extract(s pointfield.Settings) []float64 {
	return []float64{s.Spin, s.Randomness, s.RandomnessPower}
}
