package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/galaxy/config"
	"github.com/pthm-cable/galaxy/viewer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Generate without graphics and exit")
	logStats := flag.Bool("log-stats", false, "Output field and frame stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	count := flag.Int("count", 0, "Override the configured point count (0 = use config)")
	reseeds := flag.Int("reseeds", 0, "Extra regenerations with fresh seeds in headless mode")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := viewer.Options{
		Seed:      rngSeed,
		Headless:  *headless,
		OutputDir: *outputDir,
		LogStats:  *logStats,
		Count:     *count,
	}

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		slog.Info("starting headless generation", "seed", rngSeed, "reseeds", *reseeds)
		v, err := viewer.New(opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}
		defer v.Unload()

		if err := v.RunHeadless(ctx, *reseeds); err != nil {
			slog.Error("headless run failed", "error", err)
		}
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Galaxy")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	v, err := viewer.New(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		return
	}
	defer v.Unload()

	for !rl.WindowShouldClose() {
		v.Update()
		v.Draw()
	}
}
