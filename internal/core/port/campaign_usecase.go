package port

import (
	"context"

	"campaign-loader/internal/core/domain"
)

// CampaignUseCase defines the operations exposed to clients. This interface
// is the primary port into the application.
type CampaignUseCase interface {
	// SubmitJob validates and parses a document and stores a pending job for
	// it. Document problems are returned as mdparse validation errors and
	// missing input as ErrMissingFields.
	SubmitJob(ctx context.Context, req SubmitJobRequest) (*SubmitJobResponse, error)

	// PreviewDocument validates and parses a document without storing
	// anything and returns the campaigns with their budget summary.
	PreviewDocument(ctx context.Context, mdContent string) (*Preview, error)

	// GetJobStatus returns the job with its status derived from the
	// campaigns. ErrJobNotFound is returned for unknown or expired jobs.
	GetJobStatus(ctx context.Context, jobID string) (*domain.CampaignJob, error)
}

// JobProcessor creates the remote campaigns of a stored job.
type JobProcessor interface {
	ProcessJob(ctx context.Context, jobID string) error
}

// SubmitJobRequest is the intake payload.
type SubmitJobRequest struct {
	MDContent string `json:"mdContent" validate:"required"`
	AccountID string `json:"accountId" validate:"required"`
}

// SubmitJobResponse is returned once a job has been stored.
type SubmitJobResponse struct {
	JobID         string `json:"jobId"`
	Message       string `json:"message"`
	CampaignCount int    `json:"campaignCount"`
}

// Preview is the summary shown before a document is submitted.
type Preview struct {
	Campaigns []domain.CampaignDefinition         `json:"campaigns"`
	Totals    domain.Totals                       `json:"totals"`
	Tiers     map[int][]domain.CampaignDefinition `json:"tiers"`
}
