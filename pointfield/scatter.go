package pointfield

import "fmt"

// Scatter fills a cube of side extent centered on the origin with count
// points of uniformly random color. Each coordinate draws a position value
// then a color value.
func Scatter(count int, extent float64, src RandomSource) (*Field, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be >= 1, got %d", ErrInvalidParameter, count)
	}
	if !finite(extent) || extent <= 0 {
		return nil, fmt.Errorf("%w: extent must be > 0, got %v", ErrInvalidParameter, extent)
	}

	f := newField(count)
	for i := range f.positions {
		f.positions[i] = float32((src.Float64() - 0.5) * extent)
		f.colors[i] = float32(src.Float64())
	}
	return f, nil
}
