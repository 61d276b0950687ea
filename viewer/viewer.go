// Package viewer runs the interactive galaxy viewer: a scene of point
// clouds, the regeneration owner, an orbit camera and the parameter panel.
package viewer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/galaxy/camera"
	"github.com/pthm-cable/galaxy/config"
	"github.com/pthm-cable/galaxy/galaxy"
	"github.com/pthm-cable/galaxy/pointfield"
	"github.com/pthm-cable/galaxy/renderer"
	"github.com/pthm-cable/galaxy/scene"
	"github.com/pthm-cable/galaxy/telemetry"
	"github.com/pthm-cable/galaxy/ui"
)

// Options configures viewer construction.
type Options struct {
	Config    *config.Config // nil = config.Cfg()
	Seed      int64          // seeds regeneration and the scatter cloud
	Headless  bool           // no window; only generation and telemetry
	OutputDir string         // CSV and config output (empty = disabled)
	LogStats  bool           // log field and frame statistics via slog
	Count     int            // overrides the configured point count when > 0
}

// Viewer holds the complete viewer state.
type Viewer struct {
	cfg *config.Config

	scene      *scene.Scene
	galaxyEnt  ecs.Entity
	scatter    ecs.Entity
	hasScatter bool

	galaxy *galaxy.Galaxy
	camera *camera.Camera
	points *renderer.PointRenderer
	panel  *ui.Panel
	hud    *ui.HUD

	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool
	perfTimer float64

	// State
	settings  pointfield.Settings // last accepted settings
	lastRegen galaxy.Regeneration
	lastError string
	paused    bool
	showPerf  bool
	dragging  bool
	headless  bool

	screenWidth, screenHeight float32
}

// New builds the viewer and generates the first galaxy synchronously.
func New(opts Options) (*Viewer, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	settings := cfg.Galaxy
	if opts.Count > 0 {
		settings.Count = opts.Count
	}
	params, err := settings.Resolve()
	if err != nil {
		return nil, fmt.Errorf("galaxy settings: %w", err)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, err
	}

	v := &Viewer{
		cfg:          cfg,
		scene:        scene.New(),
		points:       renderer.NewPointRenderer(cfg.Render.MaxDrawnPoints),
		hud:          ui.NewHUD(),
		perf:         telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:       output,
		logStats:     opts.LogStats,
		settings:     settings,
		headless:     opts.Headless,
		screenWidth:  float32(cfg.Screen.Width),
		screenHeight: float32(cfg.Screen.Height),
	}

	v.galaxyEnt = v.scene.AddCloud(scene.CloudOptions{
		Size:      float32(params.PointSize),
		Additive:  cfg.Render.Additive,
		SpinSpeed: cfg.Render.SpinSpeed,
	})
	v.galaxy = galaxy.New(v.scene.Sink(v.galaxyEnt),
		galaxy.WithCompute(cfg.NewGenerator().Generate),
		galaxy.WithSeed(opts.Seed),
		galaxy.WithObserver(v.onRegeneration),
	)

	if cfg.Particles.Enabled {
		if err := v.addScatter(opts.Seed); err != nil {
			v.Unload()
			return nil, err
		}
	}

	v.camera = v.newCamera()
	v.panel = ui.NewPanel(settings, cfg.Galaxy, palettes(cfg))

	if err := v.galaxy.Regenerate(context.Background(), params); err != nil {
		v.Unload()
		return nil, fmt.Errorf("initial generation: %w", err)
	}
	return v, nil
}

// addScatter creates the wave-animated scatter cloud beside the galaxy.
func (v *Viewer) addScatter(seed int64) error {
	pc := v.cfg.Particles
	f, err := pointfield.Scatter(pc.Count, pc.Extent, pointfield.NewSource(seed))
	if err != nil {
		return fmt.Errorf("scatter cloud: %w", err)
	}
	v.scatter = v.scene.AddCloud(scene.CloudOptions{
		Position: r3.Vec{X: pc.OffsetX},
		Size:     float32(v.cfg.Galaxy.Size),
		Additive: v.cfg.Render.Additive,
		Wave:     float32(pc.WaveAmplitude),
	})
	v.scene.Sink(v.scatter).Install(f)
	v.hasScatter = true
	return nil
}

func (v *Viewer) newCamera() *camera.Camera {
	cc := v.cfg.Camera
	c := camera.New(float32(cc.Distance), v.screenWidth, v.screenHeight)
	c.FOV = float32(cc.FOV)
	c.Damping = float32(cc.Damping)
	c.RotateSpeed = float32(cc.RotateSpeed)
	c.MinDistance = float32(cc.MinDistance)
	c.MaxDistance = float32(cc.MaxDistance)
	c.Reset(float32(cc.Distance))
	return c
}

func palettes(cfg *config.Config) []ui.Palette {
	out := make([]ui.Palette, len(cfg.Palettes))
	for i, p := range cfg.Palettes {
		out[i] = ui.Palette{Inside: p.Inside, Outside: p.Outside}
	}
	return out
}

// Galaxy returns the regeneration owner.
func (v *Viewer) Galaxy() *galaxy.Galaxy {
	return v.galaxy
}

// Scene returns the viewer's scene.
func (v *Viewer) Scene() *scene.Scene {
	return v.scene
}

// LastRegeneration returns the most recent finished request.
func (v *Viewer) LastRegeneration() galaxy.Regeneration {
	return v.lastRegen
}

// commit resolves a settings record from the panel and hands it to the
// galaxy. Rejected records leave the displayed galaxy as it is and reset
// the panel to the last accepted settings.
func (v *Viewer) commit(s pointfield.Settings) error {
	params, err := s.Resolve()
	if err == nil && sizeOnly(v.settings, s) {
		// point size is a draw-time hint; the field stays as it is
		v.scene.Cloud(v.galaxyEnt).Size = float32(params.PointSize)
		v.settings = s
		v.lastError = ""
		return nil
	}
	if err == nil {
		err = v.galaxy.Commit(params)
	}
	if err != nil {
		v.lastError = err.Error()
		v.panel.Draft().Revert(v.settings)
		slog.Warn("parameters rejected", "error", err)
		return err
	}
	v.settings = s
	v.lastError = ""
	return nil
}

// sizeOnly reports whether b differs from a in point size alone.
func sizeOnly(a, b pointfield.Settings) bool {
	if a.Size == b.Size {
		return false
	}
	a.Size = b.Size
	return a == b
}

// reseed regenerates the current parameters with a fresh seed.
func (v *Viewer) reseed() error {
	return v.commit(v.settings)
}

// Unload releases every field and closes output files.
func (v *Viewer) Unload() {
	v.galaxy.Close()
	if v.hasScatter {
		if c := v.scene.Cloud(v.scatter); c.Field != nil {
			v.scene.Sink(v.scatter).Dispose(c.Field)
		}
	}
	v.flushPerf()
	if err := v.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
