// Package config provides configuration loading and access for the viewer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/galaxy/pointfield"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all viewer configuration parameters.
type Config struct {
	Screen    ScreenConfig        `yaml:"screen"`
	Galaxy    pointfield.Settings `yaml:"galaxy"`
	Generator GeneratorConfig     `yaml:"generator"`
	Camera    CameraConfig        `yaml:"camera"`
	Render    RenderConfig        `yaml:"render"`
	Particles ParticlesConfig     `yaml:"particles"`
	Palettes  []PaletteConfig     `yaml:"palettes"`
	Telemetry TelemetryConfig     `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GeneratorConfig holds chunked generation settings.
type GeneratorConfig struct {
	Workers   int `yaml:"workers"`    // 0 = GOMAXPROCS
	ChunkSize int `yaml:"chunk_size"` // points per chunk
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	FOV         float64 `yaml:"fov"`
	Damping     float64 `yaml:"damping"`
	RotateSpeed float64 `yaml:"rotate_speed"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
}

// RenderConfig holds point rendering settings.
type RenderConfig struct {
	MaxDrawnPoints int     `yaml:"max_drawn_points"` // 0 = draw every point
	Additive       bool    `yaml:"additive"`
	SpinSpeed      float64 `yaml:"spin_speed"`
	Background     string  `yaml:"background"`
}

// ParticlesConfig holds the scatter cloud shown next to the galaxy.
type ParticlesConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Count         int     `yaml:"count"`
	Extent        float64 `yaml:"extent"`
	WaveAmplitude float64 `yaml:"wave_amplitude"`
	OffsetX       float64 `yaml:"offset_x"`
}

// PaletteConfig is a pair of gradient endpoints offered in the panel.
type PaletteConfig struct {
	Inside  string `yaml:"inside"`
	Outside string `yaml:"outside"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow      int     `yaml:"perf_window"`       // frames in the rolling window
	PerfLogInterval float64 `yaml:"perf_log_interval"` // seconds between perf records
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Params     pointfield.Params // resolved galaxy parameters
	Background colorful.Color
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived resolves and validates values derived from the loaded config.
func (c *Config) computeDerived() error {
	params, err := c.Galaxy.Resolve()
	if err != nil {
		return fmt.Errorf("galaxy: %w", err)
	}
	c.Derived.Params = params

	bg, err := pointfield.ParseColor(c.Render.Background)
	if err != nil {
		return fmt.Errorf("render background: %w", err)
	}
	c.Derived.Background = bg

	for i, pal := range c.Palettes {
		if _, err := pointfield.ParseColor(pal.Inside); err != nil {
			return fmt.Errorf("palette %d inside: %w", i, err)
		}
		if _, err := pointfield.ParseColor(pal.Outside); err != nil {
			return fmt.Errorf("palette %d outside: %w", i, err)
		}
	}

	if c.Particles.Enabled {
		if c.Particles.Count < 1 || c.Particles.Extent <= 0 {
			return fmt.Errorf("particles: %w: count and extent must be positive", pointfield.ErrInvalidParameter)
		}
	}

	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
	}
	return nil
}

// NewGenerator returns a chunked generator configured from c.
func (c *Config) NewGenerator() *pointfield.Generator {
	return &pointfield.Generator{
		Workers:   c.Generator.Workers,
		ChunkSize: c.Generator.ChunkSize,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
