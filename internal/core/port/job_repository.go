package port

import (
	"context"
	"errors"
	"time"

	"campaign-loader/internal/core/domain"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrJobExists     = errors.New("job already exists")
	ErrCredentials   = errors.New("credentials unavailable")
	ErrMissingFields = errors.New("missing required fields: mdContent and accountId")
)

// JobRepository is the persistence layer for campaign jobs. It is an
// outbound port. Implementations must apply UpdatePartial atomically per job
// so that concurrent writers never clobber each other's fields.
type JobRepository interface {
	// Create stores a new job. ErrJobExists is returned when the id is taken.
	Create(ctx context.Context, job domain.CampaignJob) error
	// Get returns the job or nil when it does not exist or has expired.
	Get(ctx context.Context, jobID string) (*domain.CampaignJob, error)
	// UpdatePartial applies patch to the stored job under a per-job lock.
	// ErrJobNotFound is returned for unknown jobs.
	UpdatePartial(ctx context.Context, jobID string, patch domain.JobPatch) error
	// ListPending returns up to limit ids of jobs whose status is pending,
	// oldest first. A zero limit means no limit.
	ListPending(ctx context.Context, limit int) ([]string, error)
	// DeleteExpired removes jobs whose retention window ended before now and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// JobEventSource delivers the ids of jobs inserted or updated while pending.
type JobEventSource interface {
	// Listen blocks, calling handle for every event, until ctx is done or
	// the source fails.
	Listen(ctx context.Context, handle func(jobID string)) error
}
