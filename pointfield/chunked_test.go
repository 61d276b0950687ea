package pointfield

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestGeneratorIndependentOfWorkers(t *testing.T) {
	p := testParams()
	p.Count = 10000

	one := &Generator{Workers: 1, ChunkSize: 1000}
	many := &Generator{Workers: 8, ChunkSize: 1000}

	a, err := one.Generate(context.Background(), p, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := many.Generate(context.Background(), p, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a.Positions() {
		if math.Float32bits(a.Positions()[i]) != math.Float32bits(b.Positions()[i]) ||
			math.Float32bits(a.Colors()[i]) != math.Float32bits(b.Colors()[i]) {
			t.Fatalf("buffers differ at %d", i)
		}
	}
}

func TestGeneratorSeedChangesField(t *testing.T) {
	p := testParams()
	g := &Generator{ChunkSize: 512}

	a, err := g.Generate(context.Background(), p, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := g.Generate(context.Background(), p, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	same := true
	for i := range a.Positions() {
		if a.Positions()[i] != b.Positions()[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical fields")
	}
}

func TestGeneratorMatchesSequentialPerChunk(t *testing.T) {
	p := testParams()
	p.Count = 300
	g := &Generator{Workers: 3, ChunkSize: 100}

	f, err := g.Generate(context.Background(), p, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The second chunk is Generate-equivalent for points 100..199 with
	// chunk seed 1, keeping the global index for arm assignment.
	pos := make([]float32, 300)
	col := make([]float32, 300)
	fill(p, NewSource(chunkSeed(7, 1)), pos, col, 100, 200)

	for i := range pos {
		if pos[i] != f.Positions()[300+i] || col[i] != f.Colors()[300+i] {
			t.Fatalf("chunk 1 differs at component %d", i)
		}
	}
}

func TestGeneratorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &Generator{}
	f, err := g.Generate(ctx, testParams(), 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if f != nil {
		t.Error("expected no field after cancellation")
	}
}

func TestGeneratorValidatesFirst(t *testing.T) {
	p := testParams()
	p.Branches = 0

	calls := 0
	g := &Generator{NewSource: func(seed int64) RandomSource {
		calls++
		return NewSource(seed)
	}}
	if _, err := g.Generate(context.Background(), p, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no sources before validation, got %d", calls)
	}
}

func TestGeneratorChunks(t *testing.T) {
	g := &Generator{ChunkSize: 100}
	tests := []struct{ count, want int }{
		{1, 1}, {100, 1}, {101, 2}, {1000, 10},
	}
	for _, tt := range tests {
		if got := g.Chunks(tt.count); got != tt.want {
			t.Errorf("Chunks(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}
