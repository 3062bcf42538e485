package jobs

import (
	"context"
	"log/slog"
	"time"

	"workspace-rental/internal/pkg/clock"
	"workspace-rental/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

// SlotPruner is the slice of the workspace store the janitor needs.
type SlotPruner interface {
	PruneSlotsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Janitor periodically deletes expired time slots so the slot table does
// not grow without bound. Slots are safe to delete once they ended more
// than the retention window ago; the payment ledger keeps the durable
// history.
type Janitor struct {
	pruner SlotPruner
	clock  clock.Clock
	cfg    config.JanitorConfig
	cron   *cron.Cron
}

func NewJanitor(pruner SlotPruner, clk clock.Clock, cfg config.JanitorConfig) *Janitor {
	return &Janitor{
		pruner: pruner,
		clock:  clk,
		cfg:    cfg,
		cron:   cron.New(),
	}
}

func (j *Janitor) Start() error {
	if !j.cfg.Enabled {
		slog.Info("janitor disabled")
		return nil
	}

	_, err := j.cron.AddFunc(j.cfg.Schedule, j.RunOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	slog.Info("janitor started", "schedule", j.cfg.Schedule, "retention", j.cfg.Retention)
	return nil
}

func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	// Wait for an in-flight prune to finish before shutdown proceeds.
	<-ctx.Done()
}

func (j *Janitor) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := j.clock.Now().Add(-j.cfg.Retention)
	pruned, err := j.pruner.PruneSlotsBefore(ctx, cutoff)
	if err != nil {
		slog.Error("janitor prune failed", "error", err)
		return
	}

	if pruned > 0 {
		slog.Info("janitor pruned expired slots", "count", pruned, "cutoff", cutoff)
	}
}
