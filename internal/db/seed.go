package db

import (
	"context"
	_ "embed"
	"fmt"

	"campaign-loader/internal/core/port"
)

//go:embed sample_plan.md
var samplePlan string

// SamplePlan returns the bundled example planning document.
func SamplePlan() string {
	return samplePlan
}

// Seed submits the sample plan as a job for accountID through the regular
// intake path.
func Seed(ctx context.Context, uc port.CampaignUseCase, accountID string) (*port.SubmitJobResponse, error) {
	resp, err := uc.SubmitJob(ctx, port.SubmitJobRequest{MDContent: samplePlan, AccountID: accountID})
	if err != nil {
		return nil, fmt.Errorf("seed sample plan: %w", err)
	}
	return resp, nil
}
