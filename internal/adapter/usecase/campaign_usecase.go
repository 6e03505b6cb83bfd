package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/mdparse"
	"campaign-loader/internal/core/port"
)

// JobCreatedMessage is returned with every accepted job.
const JobCreatedMessage = "Job created successfully"

// CampaignUseCase accepts documents, previews them and reports job
// progress. It implements port.CampaignUseCase; campaign creation itself
// happens asynchronously in the Orchestrator.
type CampaignUseCase struct {
	repo      port.JobRepository
	validate  *validator.Validate
	retention time.Duration
	newID     func() string
	now       func() time.Time
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase creates a use case storing jobs in repo for retention.
func NewCampaignUseCase(repo port.JobRepository, retention time.Duration) *CampaignUseCase {
	return &CampaignUseCase{
		repo:      repo,
		validate:  validator.New(),
		retention: retention,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// SubmitJob stores a pending job for the campaigns in req.MDContent. The
// job is picked up by the worker through the store's event source.
func (u *CampaignUseCase) SubmitJob(ctx context.Context, req port.SubmitJobRequest) (*port.SubmitJobResponse, error) {
	if err := u.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, port.ErrMissingFields
		}
		return nil, err
	}

	defs, err := parseDocument(req.MDContent)
	if err != nil {
		return nil, err
	}

	job := domain.NewCampaignJob(u.newID(), req.AccountID, defs, u.now().UTC(), u.retention)
	if err := u.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("store job: %w", err)
	}

	return &port.SubmitJobResponse{
		JobID:         job.JobID,
		Message:       JobCreatedMessage,
		CampaignCount: len(job.Campaigns),
	}, nil
}

// PreviewDocument parses mdContent and summarizes it without storing
// anything.
func (u *CampaignUseCase) PreviewDocument(_ context.Context, mdContent string) (*port.Preview, error) {
	defs, err := parseDocument(mdContent)
	if err != nil {
		return nil, err
	}
	return &port.Preview{
		Campaigns: defs,
		Totals:    domain.TotalBudgets(defs),
		Tiers:     domain.GroupByTier(defs),
	}, nil
}

// GetJobStatus returns the job with its status derived from its campaigns.
func (u *CampaignUseCase) GetJobStatus(ctx context.Context, jobID string) (*domain.CampaignJob, error) {
	job, err := u.repo.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, port.ErrJobNotFound
	}
	effective := job.Effective()
	return &effective, nil
}

func parseDocument(text string) ([]domain.CampaignDefinition, error) {
	if err := mdparse.Validate(text); err != nil {
		return nil, err
	}
	return mdparse.Parse(text), nil
}
