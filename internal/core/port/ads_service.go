package port

import (
	"context"

	"campaign-loader/internal/core/domain"
)

// CredentialProvider yields the secrets used to reach the advertising API.
type CredentialProvider interface {
	GetCredentials(ctx context.Context) (domain.Credentials, error)
}

// AdsService creates resources on the remote advertising platform. Every
// call is scoped to one customer account and may fail independently.
type AdsService interface {
	// CreateBudget creates a budget resource and returns its resource name.
	CreateBudget(ctx context.Context, accountID string, budget domain.BudgetSpec) (string, error)
	// CreateCampaign creates a campaign bound to a budget and returns its
	// resource name.
	CreateCampaign(ctx context.Context, accountID string, campaign domain.CampaignSpec) (string, error)
	// CreateCriterion attaches a targeting criterion to a campaign.
	CreateCriterion(ctx context.Context, accountID string, criterion domain.CriterionSpec) error
}

// AdsConnector builds an AdsService authorized with creds.
type AdsConnector interface {
	Connect(ctx context.Context, creds domain.Credentials) (AdsService, error)
}

// AdsConnectorFunc adapts a function to AdsConnector.
type AdsConnectorFunc func(ctx context.Context, creds domain.Credentials) (AdsService, error)

// Connect calls f.
func (f AdsConnectorFunc) Connect(ctx context.Context, creds domain.Credentials) (AdsService, error) {
	return f(ctx, creds)
}
