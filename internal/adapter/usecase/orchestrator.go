package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/port"
)

// Orchestrator creates the remote campaigns of stored jobs, one campaign at
// a time, persisting every status change as it happens.
type Orchestrator struct {
	repo      port.JobRepository
	creds     port.CredentialProvider
	connector port.AdsConnector
	targeting domain.Targeting
	delay     time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

var _ port.JobProcessor = (*Orchestrator)(nil)

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithCampaignDelay sets the pause after each campaign.
func WithCampaignDelay(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		o.delay = d
	}
}

// WithTargeting replaces domain.DefaultTargeting.
func WithTargeting(t domain.Targeting) OrchestratorOption {
	return func(o *Orchestrator) {
		o.targeting = t
	}
}

// WithOrchestratorLogger sets the logger.
func WithOrchestratorLogger(l *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// WithOrchestratorClock replaces time.Now.
func WithOrchestratorClock(now func() time.Time) OrchestratorOption {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// NewOrchestrator returns an Orchestrator with a 2s campaign delay and the
// default targeting.
func NewOrchestrator(repo port.JobRepository, creds port.CredentialProvider, connector port.AdsConnector, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		repo:      repo,
		creds:     creds,
		connector: connector,
		targeting: domain.DefaultTargeting,
		delay:     2 * time.Second,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ProcessJob creates every pending campaign of the job. A failing campaign
// is recorded on the campaign and does not stop its siblings; store errors,
// missing credentials and cancellation abort the run and are returned.
func (o *Orchestrator) ProcessJob(ctx context.Context, jobID string) error {
	job, err := o.repo.Get(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}
	if job == nil {
		return port.ErrJobNotFound
	}
	log := o.logger.With(slog.String("job_id", jobID), slog.String("account_id", job.AccountID))

	creds, err := o.creds.GetCredentials(ctx)
	if err != nil {
		return wrapCredentials(err)
	}
	ads, err := o.connector.Connect(ctx, creds)
	if err != nil {
		return wrapCredentials(err)
	}

	if job.Status == domain.JobPending {
		if err := o.repo.UpdatePartial(ctx, jobID, domain.StatusPatch(domain.JobInProgress)); err != nil {
			return fmt.Errorf("mark job in progress: %w", err)
		}
	}

	log.InfoContext(ctx, "processing job", slog.Int("campaigns", len(job.Campaigns)))

	for _, c := range job.Campaigns {
		if c.Status != domain.CampaignPending {
			continue
		}
		if err := o.processCampaign(ctx, log, ads, job.AccountID, jobID, c); err != nil {
			return err
		}
		if err := o.pause(ctx); err != nil {
			return err
		}
	}

	if err := o.repo.UpdatePartial(ctx, jobID, domain.CompletedPatch(o.now())); err != nil {
		return fmt.Errorf("mark job completed: %w", err)
	}
	log.InfoContext(ctx, "job processed")
	return nil
}

// processCampaign runs one campaign through creating to completed or
// failed. Only infrastructure errors are returned.
func (o *Orchestrator) processCampaign(ctx context.Context, log *slog.Logger, ads port.AdsService, accountID, jobID string, c domain.Campaign) error {
	if err := o.repo.UpdatePartial(ctx, jobID, domain.CampaignStatusPatch(c.ID, domain.CampaignCreating, "")); err != nil {
		return fmt.Errorf("mark campaign %s creating: %w", c.ID, err)
	}

	remoteErr := o.createRemote(ctx, ads, accountID, c.Definition())
	if remoteErr != nil && ctx.Err() != nil {
		// Left creating: the remote side may hold a partial campaign.
		return ctx.Err()
	}

	patch := domain.CampaignStatusPatch(c.ID, domain.CampaignCompleted, "")
	if remoteErr != nil {
		patch = domain.CampaignStatusPatch(c.ID, domain.CampaignFailed, remoteErr.Error())
		log.WarnContext(ctx, "campaign failed",
			slog.String("campaign_id", c.ID),
			slog.String("name", c.Name),
			slog.Any("error", remoteErr))
	} else {
		log.InfoContext(ctx, "campaign created",
			slog.String("campaign_id", c.ID),
			slog.String("name", c.Name))
	}

	if err := o.repo.UpdatePartial(ctx, jobID, patch); err != nil {
		return fmt.Errorf("record campaign %s outcome: %w", c.ID, err)
	}
	return nil
}

// createRemote creates the budget, the paused campaign and its criteria.
// The first failing step ends the sequence.
func (o *Orchestrator) createRemote(ctx context.Context, ads port.AdsService, accountID string, def domain.CampaignDefinition) error {
	budget, err := domain.BudgetFor(def)
	if err != nil {
		return fmt.Errorf("create budget: %w", err)
	}
	budgetRef, err := ads.CreateBudget(ctx, accountID, budget)
	if err != nil {
		return fmt.Errorf("create budget: %w", err)
	}
	campaignRef, err := ads.CreateCampaign(ctx, accountID, domain.SafeCampaignFor(def, budgetRef))
	if err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	for _, criterion := range o.targeting.Criteria(campaignRef) {
		if err := ads.CreateCriterion(ctx, accountID, criterion); err != nil {
			return fmt.Errorf("create %s criterion: %w", criterion.Kind, err)
		}
	}
	return nil
}

func (o *Orchestrator) pause(ctx context.Context) error {
	if o.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(o.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func wrapCredentials(err error) error {
	if errors.Is(err, port.ErrCredentials) {
		return err
	}
	return fmt.Errorf("%w: %w", port.ErrCredentials, err)
}
