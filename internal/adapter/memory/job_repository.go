// Package memory provides an in-process job store. It serves tests and
// single-instance deployments where jobs need not survive a restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/port"
)

const defaultEventBuffer = 64

// JobRepository implements port.JobRepository and port.JobEventSource.
// Stored jobs are copied on the way in and out, so callers never share
// memory with the store.
type JobRepository struct {
	mu     sync.Mutex
	jobs   map[string]domain.CampaignJob
	events chan string
	now    func() time.Time
}

// Option configures a JobRepository.
type Option func(*JobRepository)

// WithClock replaces time.Now, used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(r *JobRepository) {
		r.now = now
	}
}

// WithEventBuffer sets how many undelivered events are kept. Events beyond
// that are dropped; the pending sweep picks those jobs up.
func WithEventBuffer(n int) Option {
	return func(r *JobRepository) {
		r.events = make(chan string, n)
	}
}

// NewJobRepository returns an empty store.
func NewJobRepository(opts ...Option) *JobRepository {
	r := &JobRepository{
		jobs:   make(map[string]domain.CampaignJob),
		events: make(chan string, defaultEventBuffer),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create stores a copy of job.
func (r *JobRepository) Create(_ context.Context, job domain.CampaignJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[job.JobID]; ok {
		return port.ErrJobExists
	}
	r.jobs[job.JobID] = job.Clone()
	r.publish(job)
	return nil
}

// Get returns a copy of the job, or nil when absent or expired.
func (r *JobRepository) Get(_ context.Context, jobID string) (*domain.CampaignJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok || job.Expired(r.now()) {
		return nil, nil
	}
	out := job.Clone()
	return &out, nil
}

// UpdatePartial applies patch under the store lock.
func (r *JobRepository) UpdatePartial(_ context.Context, jobID string, patch domain.JobPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.jobs[jobID]
	if !ok {
		return port.ErrJobNotFound
	}
	job := stored.Clone()
	if err := patch.Apply(&job); err != nil {
		return err
	}
	r.jobs[jobID] = job
	r.publish(job)
	return nil
}

// ListPending returns ids of live pending jobs, oldest first.
func (r *JobRepository) ListPending(_ context.Context, limit int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	var pending []domain.CampaignJob
	for _, job := range r.jobs {
		if job.Status == domain.JobPending && !job.Expired(now) {
			pending = append(pending, job)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	ids := make([]string, 0, len(pending))
	for _, job := range pending {
		if limit > 0 && len(ids) == limit {
			break
		}
		ids = append(ids, job.JobID)
	}
	return ids, nil
}

// DeleteExpired removes jobs past their retention window.
func (r *JobRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, job := range r.jobs {
		if job.Expired(now) {
			delete(r.jobs, id)
			n++
		}
	}
	return n, nil
}

// Listen delivers ids of jobs stored or updated while pending until ctx is
// done. Only one listener should be attached.
func (r *JobRepository) Listen(ctx context.Context, handle func(jobID string)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case id := <-r.events:
			handle(id)
		}
	}
}

// publish must be called with r.mu held.
func (r *JobRepository) publish(job domain.CampaignJob) {
	if job.Status != domain.JobPending {
		return
	}
	select {
	case r.events <- job.JobID:
	default:
	}
}
