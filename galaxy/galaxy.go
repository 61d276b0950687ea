// Package galaxy owns the displayed galaxy field and its regeneration.
//
// A Galaxy holds exactly one installed field. Regeneration always computes
// the replacement first, installs it, and only then disposes the old field,
// so a failed computation never leaves the renderer without a field.
package galaxy

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/galaxy/pointfield"
)

// Sink is the rendering side: it displays installed fields and frees their
// resources on disposal.
type Sink interface {
	Install(f *pointfield.Field)
	Dispose(f *pointfield.Field)
}

// ComputeFunc builds a field for p from seed.
type ComputeFunc func(ctx context.Context, p pointfield.Params, seed int64) (*pointfield.Field, error)

// Outcome is what happened to one regeneration request.
type Outcome string

// Request outcomes.
const (
	OutcomeInstalled  Outcome = "installed"  // the field is now displayed
	OutcomeSuperseded Outcome = "superseded" // a later request won
	OutcomeFailed     Outcome = "failed"     // computation returned an error
)

// Regeneration describes one finished request.
type Regeneration struct {
	ID       uint64
	Seed     int64
	Params   pointfield.Params
	Duration time.Duration
	Outcome  Outcome
	Err      error
	Field    *pointfield.Field // installed field; nil unless Outcome is OutcomeInstalled
}

// LogValue implements slog.LogValuer for structured logging.
func (r Regeneration) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Uint64("id", r.ID),
		slog.Int64("seed", r.Seed),
		slog.String("outcome", string(r.Outcome)),
		slog.Int("count", r.Params.Count),
		slog.Int("branches", r.Params.Branches),
		slog.Float64("radius", r.Params.Radius),
		slog.Float64("spin", r.Params.Spin),
		slog.Float64("randomness", r.Params.Randomness),
		slog.Float64("randomness_power", r.Params.RandomnessPower),
		slog.Int64("duration_us", r.Duration.Microseconds()),
	}
	if r.Err != nil {
		attrs = append(attrs, slog.String("error", r.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}

// Option configures a Galaxy.
type Option func(*Galaxy)

// WithCompute replaces the field computation (defaults to a pointfield.Generator).
func WithCompute(fn ComputeFunc) Option {
	return func(g *Galaxy) { g.compute = fn }
}

// WithSeed seeds the generator of per-regeneration seeds.
func WithSeed(seed int64) Option {
	return func(g *Galaxy) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithObserver registers a callback for every finished request.
// It runs on the goroutine that calls Regenerate or Apply.
func WithObserver(fn func(Regeneration)) Option {
	return func(g *Galaxy) { g.observe = fn }
}

type result struct {
	id       uint64
	seed     int64
	params   pointfield.Params
	field    *pointfield.Field
	err      error
	duration time.Duration
}

// Galaxy is the explicit owner of the current field.
//
// Regenerate, Commit, Apply and Close must be called from one goroutine
// (the frame loop). Only the computation of committed requests runs
// elsewhere.
type Galaxy struct {
	sink    Sink
	compute ComputeFunc
	rng     *rand.Rand
	observe func(Regeneration)

	current   *pointfield.Field
	params    pointfield.Params
	seed      int64
	installed bool

	latest      uint64
	cancel      context.CancelFunc
	results     chan result
	outstanding int
}

// New creates a Galaxy that installs into sink.
func New(sink Sink, opts ...Option) *Galaxy {
	gen := &pointfield.Generator{}
	g := &Galaxy{
		sink:    sink,
		compute: gen.Generate,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		results: make(chan result, 16),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Current returns the installed field, or nil before the first install.
func (g *Galaxy) Current() *pointfield.Field {
	return g.current
}

// Params returns the parameters of the installed field.
func (g *Galaxy) Params() (pointfield.Params, bool) {
	return g.params, g.installed
}

// Seed returns the seed of the installed field.
func (g *Galaxy) Seed() int64 {
	return g.seed
}

// Pending reports whether a committed request has not been applied yet.
func (g *Galaxy) Pending() bool {
	return g.outstanding > 0
}

// Regenerate computes a field for p and swaps it in before returning.
// It supersedes any committed request still in flight. On error the
// installed field is left untouched.
func (g *Galaxy) Regenerate(ctx context.Context, p pointfield.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	id := g.next()
	seed := g.rng.Int63()

	start := time.Now()
	f, err := g.compute(ctx, p, seed)
	g.finish(result{id: id, seed: seed, params: p, field: f, err: err, duration: time.Since(start)})
	return err
}

// Commit requests a regeneration for p without blocking. Any earlier
// request still in flight is cancelled and its result will be discarded.
// Invalid parameters are rejected immediately and cancel nothing.
func (g *Galaxy) Commit(p pointfield.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	id := g.next()
	seed := g.rng.Int63()

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.outstanding++

	go func() {
		start := time.Now()
		f, err := g.compute(ctx, p, seed)
		g.results <- result{id: id, seed: seed, params: p, field: f, err: err, duration: time.Since(start)}
	}()
	return nil
}

// Apply installs the most recent committed result if it has finished and
// discards any superseded ones. It never blocks. It returns true if a new
// field was installed.
func (g *Galaxy) Apply() bool {
	installed := false
	for {
		select {
		case res := <-g.results:
			g.outstanding--
			if g.finish(res) == OutcomeInstalled {
				installed = true
			}
		default:
			return installed
		}
	}
}

// Wait blocks until every committed request has been applied or ctx is done.
func (g *Galaxy) Wait(ctx context.Context) error {
	for g.outstanding > 0 {
		select {
		case res := <-g.results:
			g.outstanding--
			g.finish(res)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Close cancels in-flight work, waits for it, and disposes the installed field.
func (g *Galaxy) Close() {
	g.next()
	for g.outstanding > 0 {
		res := <-g.results
		g.outstanding--
		g.finish(res)
	}
	if g.current != nil {
		g.sink.Dispose(g.current)
		g.current = nil
	}
}

// next starts a new request generation, cancelling the previous one.
func (g *Galaxy) next() uint64 {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.latest++
	return g.latest
}

func (g *Galaxy) finish(res result) Outcome {
	rec := Regeneration{
		ID:       res.id,
		Seed:     res.seed,
		Params:   res.params,
		Duration: res.duration,
		Err:      res.err,
	}

	switch {
	case res.id != g.latest:
		if res.field != nil {
			res.field.Release()
		}
		rec.Outcome = OutcomeSuperseded
		if errors.Is(rec.Err, context.Canceled) {
			rec.Err = nil
		}
	case res.err != nil:
		rec.Outcome = OutcomeFailed
	default:
		g.swap(res.field)
		g.params = res.params
		g.seed = res.seed
		rec.Outcome = OutcomeInstalled
		rec.Field = res.field
	}

	if g.observe != nil {
		g.observe(rec)
	}
	return rec.Outcome
}

// swap installs f, then disposes the field it replaced.
func (g *Galaxy) swap(f *pointfield.Field) {
	old := g.current
	g.sink.Install(f)
	g.current = f
	g.installed = true
	if old != nil {
		g.sink.Dispose(old)
	}
}
