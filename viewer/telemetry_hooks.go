package viewer

import (
	"log/slog"

	"github.com/pthm-cable/galaxy/galaxy"
	"github.com/pthm-cable/galaxy/telemetry"
)

// onRegeneration observes every finished request.
func (v *Viewer) onRegeneration(r galaxy.Regeneration) {
	v.lastRegen = r

	switch r.Outcome {
	case galaxy.OutcomeInstalled:
		v.scene.Cloud(v.galaxyEnt).Size = float32(r.Params.PointSize)
	case galaxy.OutcomeFailed:
		slog.Warn("regeneration failed", "regen", r)
	}

	if !v.logStats && v.output == nil {
		return
	}

	rec := telemetry.NewRegenRecord(r)
	if v.logStats {
		if r.Outcome == galaxy.OutcomeInstalled {
			slog.Info("regeneration", "regen", r, "field", rec.FieldStats)
		} else {
			slog.Info("regeneration", "regen", r)
		}
	}
	if err := v.output.WriteRegeneration(rec); err != nil {
		slog.Error("failed to write regeneration", "error", err)
	}
}

// tickPerf flushes frame statistics every perf_log_interval seconds.
func (v *Viewer) tickPerf(dt float64) {
	interval := v.cfg.Telemetry.PerfLogInterval
	if interval <= 0 {
		return
	}
	v.perfTimer += dt
	if v.perfTimer < interval {
		return
	}
	v.perfTimer = 0
	v.flushPerf()
}

func (v *Viewer) flushPerf() {
	if v.perf.Frames() == 0 {
		return
	}
	stats := v.perf.Stats()
	if v.logStats {
		slog.Info("perf", "frames", v.perf.Frames(), "stats", stats)
	}
	if err := v.output.WritePerf(stats, v.perf.Frames()); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
