package pointfield

// Field is a generated point cloud: Len() points, each with an (x, y, z)
// position and an (r, g, b) color, stored as flat float32 buffers.
//
// A Field is read-only once returned. The owner releases it with Release
// when it is replaced.
type Field struct {
	positions []float32
	colors    []float32
}

func newField(count int) *Field {
	return &Field{
		positions: make([]float32, 3*count),
		colors:    make([]float32, 3*count),
	}
}

// Len returns the number of points, or 0 once released.
func (f *Field) Len() int {
	return len(f.positions) / 3
}

// Positions returns the flat position buffer. Callers must not modify it.
func (f *Field) Positions() []float32 {
	return f.positions
}

// Colors returns the flat color buffer. Callers must not modify it.
func (f *Field) Colors() []float32 {
	return f.colors
}

// Point returns the position of point i.
func (f *Field) Point(i int) (x, y, z float32) {
	i3 := 3 * i
	return f.positions[i3], f.positions[i3+1], f.positions[i3+2]
}

// Color returns the color of point i.
func (f *Field) Color(i int) (r, g, b float32) {
	i3 := 3 * i
	return f.colors[i3], f.colors[i3+1], f.colors[i3+2]
}

// Release drops both buffers. It is safe to call more than once.
func (f *Field) Release() {
	f.positions = nil
	f.colors = nil
}

// Released reports whether Release has been called.
func (f *Field) Released() bool {
	return f.positions == nil
}
