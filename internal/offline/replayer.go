package offline

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
)

// Replayer periodically pushes queued offline operations back to the store.
// A pass that halts (first failed operation) is not an error at this level;
// the next tick tries again from the same head.
type Replayer struct {
	sync     portssvc.SyncSvcFacade
	interval time.Duration
	logger   *slog.Logger
}

func NewReplayer(sync portssvc.SyncSvcFacade, interval time.Duration, logger *slog.Logger) *Replayer {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Replayer{sync: sync, interval: interval, logger: logger}
}

// Run drains the queue on a fixed interval until ctx is cancelled. Meant to
// be started as a goroutine at startup.
func (r *Replayer) Run(ctx context.Context) {
	r.logger.Info("offline replayer started", slog.Duration("interval", r.interval))
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("offline replayer stopped")
			return
		case <-ticker.C:
			r.replayOnce(ctx)
		}
	}
}

func (r *Replayer) replayOnce(ctx context.Context) {
	result, err := r.sync.Replay(ctx)
	if err != nil {
		r.logger.Error("offline replay pass failed", slog.String("error", err.Error()))
		return
	}
	if result.Synced > 0 || result.Remaining > 0 {
		r.logger.Info("offline replay pass finished",
			slog.Int("synced", result.Synced),
			slog.Int("remaining", result.Remaining),
			slog.Bool("halted", result.Halted),
		)
	}
}
