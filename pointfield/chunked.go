package pointfield

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of points per chunk when Generator.ChunkSize is 0.
const DefaultChunkSize = 16384

// Generator splits a galaxy into fixed-size chunks and fills them
// concurrently. Chunk k draws from its own source seeded from (seed, k), so
// the output depends on the parameters, the seed and ChunkSize, never on
// Workers or scheduling.
type Generator struct {
	Workers   int                           // concurrent chunks; 0 = GOMAXPROCS
	ChunkSize int                           // points per chunk; 0 = DefaultChunkSize
	NewSource func(seed int64) RandomSource // nil = NewSource
}

// Generate builds a field for p. It returns parent.Err() if parent is cancelled
// before every chunk has been filled; the partial field is discarded.
func (g *Generator) Generate(parent context.Context, p Params, seed int64) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}

	f := newField(p.Count)
	size := g.chunkSize()

	eg, ctx := errgroup.WithContext(parent)
	eg.SetLimit(g.workers())

	for k, i0 := 0, 0; i0 < p.Count; k, i0 = k+1, i0+size {
		if ctx.Err() != nil {
			break
		}
		i1 := min(i0+size, p.Count)
		src := g.source(chunkSeed(seed, k))
		pos := f.positions[i0*3 : i1*3]
		col := f.colors[i0*3 : i1*3]

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fill(p, src, pos, col, i0, i1)
			return nil
		})
	}

	err := eg.Wait()
	if err == nil {
		// Dispatch stops early on cancellation without any chunk failing.
		err = parent.Err()
	}
	if err != nil {
		f.Release()
		return nil, err
	}
	return f, nil
}

// Chunks returns how many chunks a field of count points is split into.
func (g *Generator) Chunks(count int) int {
	size := g.chunkSize()
	return (count + size - 1) / size
}

func (g *Generator) chunkSize() int {
	if g.ChunkSize > 0 {
		return g.ChunkSize
	}
	return DefaultChunkSize
}

func (g *Generator) workers() int {
	if g.Workers > 0 {
		return g.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (g *Generator) source(seed int64) RandomSource {
	if g.NewSource != nil {
		return g.NewSource(seed)
	}
	return NewSource(seed)
}
