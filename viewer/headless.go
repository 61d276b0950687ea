package viewer

import (
	"context"
	"log/slog"
)

// RunHeadless performs n further regenerations of the current settings,
// each with a fresh seed, waiting for every one to be installed.
func (v *Viewer) RunHeadless(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := v.reseed(); err != nil {
			return err
		}
		if err := v.galaxy.Wait(ctx); err != nil {
			return err
		}
	}
	slog.Info("headless run complete",
		"regenerations", n+1,
		"seed", v.galaxy.Seed(),
		"points", v.galaxy.Current().Len(),
	)
	return nil
}
