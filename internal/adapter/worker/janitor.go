package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"campaign-loader/internal/core/port"
)

// Notifier accepts job ids for processing.
type Notifier interface {
	Notify(ctx context.Context, jobID string) bool
}

// Janitor periodically re-dispatches jobs still pending, covering missed
// notifications and runs aborted by a restart, and deletes expired jobs.
type Janitor struct {
	repo     port.JobRepository
	notifier Notifier
	batch    int
	logger   *slog.Logger
	now      func() time.Time
}

// NewJanitor returns a Janitor sweeping up to batch jobs per run.
func NewJanitor(repo port.JobRepository, notifier Notifier, batch int, logger *slog.Logger) *Janitor {
	return &Janitor{
		repo:     repo,
		notifier: notifier,
		batch:    batch,
		logger:   logger,
		now:      time.Now,
	}
}

// Sweep dispatches pending jobs and returns how many were started.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	ids, err := j.repo.ListPending(ctx, j.batch)
	if err != nil {
		return 0, fmt.Errorf("list pending jobs: %w", err)
	}
	started := 0
	for _, id := range ids {
		if j.notifier.Notify(ctx, id) {
			started++
		}
	}
	return started, nil
}

// Purge deletes expired jobs and returns how many were removed.
func (j *Janitor) Purge(ctx context.Context) (int64, error) {
	n, err := j.repo.DeleteExpired(ctx, j.now())
	if err != nil {
		return 0, fmt.Errorf("delete expired jobs: %w", err)
	}
	return n, nil
}

// Run schedules Sweep and Purge with the given cron specs and blocks until
// ctx is done. Running tasks are awaited before it returns.
func (j *Janitor) Run(ctx context.Context, sweepSpec, purgeSpec string) error {
	c := cron.New()

	if _, err := c.AddFunc(sweepSpec, func() {
		n, err := j.Sweep(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "pending sweep failed", slog.Any("error", err))
			return
		}
		if n > 0 {
			j.logger.InfoContext(ctx, "pending jobs re-dispatched", slog.Int("count", n))
		}
	}); err != nil {
		return fmt.Errorf("sweep schedule %q: %w", sweepSpec, err)
	}

	if _, err := c.AddFunc(purgeSpec, func() {
		n, err := j.Purge(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "purge failed", slog.Any("error", err))
			return
		}
		j.logger.InfoContext(ctx, "expired jobs purged", slog.Int64("count", n))
	}); err != nil {
		return fmt.Errorf("purge schedule %q: %w", purgeSpec, err)
	}

	c.Start()
	j.logger.InfoContext(ctx, "janitor started",
		slog.String("sweep", sweepSpec),
		slog.String("purge", purgeSpec))

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
