package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/galaxy/pointfield"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := cfg.Derived.Params
	if p.Count != 100000 || p.Branches != 3 || p.Radius != 5 || p.Spin != 1 {
		t.Errorf("unexpected default params: %+v", p)
	}
	if p.Randomness != 0.2 || p.RandomnessPower != 3 || p.PointSize != 0.01 {
		t.Errorf("unexpected default jitter params: %+v", p)
	}
	if p.InsideColor.Hex() != "#ff6030" || p.OutsideColor.Hex() != "#1b3984" {
		t.Errorf("unexpected default colors %s / %s", p.InsideColor.Hex(), p.OutsideColor.Hex())
	}
	if len(cfg.Palettes) == 0 {
		t.Error("expected default palettes")
	}
	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("unexpected screen %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("galaxy:\n  count: 500\n  branches: 7\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Derived.Params.Count != 500 || cfg.Derived.Params.Branches != 7 {
		t.Errorf("expected overrides applied, got %+v", cfg.Derived.Params)
	}
	// Untouched fields keep their defaults
	if cfg.Derived.Params.Radius != 5 {
		t.Errorf("expected default radius kept, got %f", cfg.Derived.Params.Radius)
	}
}

func TestLoadInvalidColor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("galaxy:\n  inside_color: \"#xyz\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, pointfield.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestLoadInvalidParameter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("galaxy:\n  radius: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, pointfield.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Galaxy.Count = 4242

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Derived.Params.Count != 4242 {
		t.Errorf("expected count 4242 after reload, got %d", loaded.Derived.Params.Count)
	}
}

func TestCfgAfterInit(t *testing.T) {
	MustInit("")
	if Cfg().Generator.ChunkSize != 16384 {
		t.Errorf("unexpected chunk size %d", Cfg().Generator.ChunkSize)
	}
	if g := Cfg().NewGenerator(); g.ChunkSize != 16384 {
		t.Errorf("generator chunk size %d", g.ChunkSize)
	}
}
