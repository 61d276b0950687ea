package pointfield

import "math/rand"

// RandomSource yields uniform values in [0, 1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewSource returns a math/rand source seeded with seed.
func NewSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// ConstantSource always returns the same value.
type ConstantSource float64

// Float64 implements RandomSource.
func (c ConstantSource) Float64() float64 {
	return float64(c)
}

// chunkSeed derives the seed for chunk k from a base seed (splitmix64 finalizer).
func chunkSeed(seed int64, k int) int64 {
	z := uint64(seed) + uint64(k+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
