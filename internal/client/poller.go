package client

import (
	"context"
	"errors"
	"time"

	"campaign-loader/internal/core/domain"
)

// DefaultPollInterval is how often Watch asks for the job status.
const DefaultPollInterval = 5 * time.Second

// PollState is the state of a Poller.
type PollState int

const (
	StateIdle PollState = iota
	StatePolling
	StateTerminal
)

func (s PollState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePolling:
		return "polling"
	case StateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// StatusFetcher returns the current state of a job.
type StatusFetcher interface {
	Status(ctx context.Context, jobID string) (*domain.CampaignJob, error)
}

// Poller watches one job at a time until it reaches a terminal status.
type Poller struct {
	fetcher  StatusFetcher
	interval time.Duration
	state    PollState

	// OnUpdate is called with every fetched job.
	OnUpdate func(job *domain.CampaignJob)
	// OnError is called with fetch errors that do not end the watch.
	OnError func(err error)
}

// NewPoller returns an idle Poller. A non-positive interval selects
// DefaultPollInterval.
func NewPoller(fetcher StatusFetcher, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{fetcher: fetcher, interval: interval, state: StateIdle}
}

// State returns the current state.
func (p *Poller) State() PollState {
	return p.state
}

// Watch polls jobID until its status is terminal and returns the last job.
// Transient errors are passed to OnError and polling continues; an unknown
// job or a cancelled ctx ends the watch. The poller returns to idle unless
// the job finished.
func (p *Poller) Watch(ctx context.Context, jobID string) (*domain.CampaignJob, error) {
	if p.state == StatePolling {
		return nil, errors.New("poller is already watching a job")
	}
	p.state = StatePolling

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var last *domain.CampaignJob
	for {
		job, err := p.fetcher.Status(ctx, jobID)
		switch {
		case err == nil:
			last = job
			if p.OnUpdate != nil {
				p.OnUpdate(job)
			}
			if job.Status.Terminal() {
				p.state = StateTerminal
				return job, nil
			}
		case ctx.Err() != nil:
			p.state = StateIdle
			return last, ctx.Err()
		case isNotFound(err):
			p.state = StateIdle
			return last, err
		default:
			if p.OnError != nil {
				p.OnError(err)
			}
		}

		select {
		case <-ctx.Done():
			p.state = StateIdle
			return last, ctx.Err()
		case <-ticker.C:
		}
	}
}

func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.NotFound()
}
