// Package worker runs stored jobs in the background: the Dispatcher turns
// job events into bounded concurrent ProcessJob calls and the Janitor
// re-dispatches stuck jobs and purges expired ones on a schedule.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"campaign-loader/internal/core/port"
)

// Dispatcher runs at most a fixed number of jobs at once and never runs the
// same job twice concurrently.
type Dispatcher struct {
	processor port.JobProcessor
	logger    *slog.Logger
	group     errgroup.Group

	mu        sync.Mutex
	inFlight  map[string]struct{}
	closed    bool
	notifying sync.WaitGroup
}

// NewDispatcher returns a Dispatcher running up to maxConcurrent jobs.
func NewDispatcher(processor port.JobProcessor, maxConcurrent int, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		processor: processor,
		logger:    logger,
		inFlight:  make(map[string]struct{}),
	}
	d.group.SetLimit(max(maxConcurrent, 1))
	return d
}

// Notify starts processing jobID unless it is already running or the
// dispatcher is shutting down. It blocks while all slots are busy and reports
// whether the job was started.
func (d *Dispatcher) Notify(ctx context.Context, jobID string) bool {
	if ctx.Err() != nil {
		return false
	}
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.DebugContext(ctx, "dispatcher closed, job dropped", slog.String("job_id", jobID))
		return false
	}
	if _, ok := d.inFlight[jobID]; ok {
		d.mu.Unlock()
		d.logger.DebugContext(ctx, "job already in flight", slog.String("job_id", jobID))
		return false
	}
	d.inFlight[jobID] = struct{}{}
	d.notifying.Add(1)
	d.mu.Unlock()
	defer d.notifying.Done()

	d.group.Go(func() error {
		defer d.release(jobID)
		d.run(ctx, jobID)
		return nil
	})
	return true
}

func (d *Dispatcher) run(ctx context.Context, jobID string) {
	err := d.processor.ProcessJob(ctx, jobID)
	switch {
	case err == nil:
	case errors.Is(err, port.ErrJobNotFound):
		d.logger.DebugContext(ctx, "job gone before processing", slog.String("job_id", jobID))
	case errors.Is(err, context.Canceled):
		d.logger.InfoContext(ctx, "job interrupted", slog.String("job_id", jobID))
	default:
		d.logger.ErrorContext(ctx, "job aborted",
			slog.String("job_id", jobID),
			slog.Any("error", err))
	}
}

func (d *Dispatcher) release(jobID string) {
	d.mu.Lock()
	delete(d.inFlight, jobID)
	d.mu.Unlock()
}

// Run feeds events from source into Notify until ctx is done or the source
// fails, then refuses further work and waits for running jobs to return.
func (d *Dispatcher) Run(ctx context.Context, source port.JobEventSource) error {
	err := source.Listen(ctx, func(jobID string) {
		d.Notify(ctx, jobID)
	})
	d.close()
	d.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// close makes Notify refuse new jobs and waits for in-progress Notify calls
// to hand their job to the group.
func (d *Dispatcher) close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.notifying.Wait()
}

// Wait blocks until every started job has returned.
func (d *Dispatcher) Wait() {
	_ = d.group.Wait()
}
