package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-loader/internal/adapter/memory"
	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/port"
	"campaign-loader/internal/core/port/mocks"
)

var (
	testCreds = domain.Credentials{ClientID: "id", ClientSecret: "s", DeveloperToken: "dev", RefreshToken: "r"}
	fixedNow  = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
)

func newRepo() *memory.JobRepository {
	return memory.NewJobRepository(memory.WithClock(func() time.Time { return fixedNow }))
}

func seedJob(t *testing.T, repo *memory.JobRepository, names ...string) string {
	t.Helper()
	defs := make([]domain.CampaignDefinition, 0, len(names))
	for _, n := range names {
		defs = append(defs, domain.NewCampaignDefinition(n, 1, decimal.NewFromInt(10)))
	}
	job := domain.NewCampaignJob("job-1", "123-456-7890", defs, fixedNow, 24*time.Hour)
	require.NoError(t, repo.Create(context.Background(), job))
	return job.JobID
}

func connectorFor(ads port.AdsService) port.AdsConnector {
	return port.AdsConnectorFunc(func(_ context.Context, creds domain.Credentials) (port.AdsService, error) {
		if creds != testCreds {
			return nil, errors.New("unexpected credentials")
		}
		return ads, nil
	})
}

// expectHappyAds answers every call with a resource name derived from the
// request; failOn names a campaign whose location criterion is rejected.
func expectHappyAds(ads *mocks.MockAdsService, failOn string) {
	ads.EXPECT().
		CreateBudget(mock.Anything, "123-456-7890", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, b domain.BudgetSpec) (string, error) {
			return "budgets/" + b.Name, nil
		})
	ads.EXPECT().
		CreateCampaign(mock.Anything, "123-456-7890", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, c domain.CampaignSpec) (string, error) {
			return "campaigns/" + c.Name, nil
		})
	ads.EXPECT().
		CreateCriterion(mock.Anything, "123-456-7890", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, c domain.CriterionSpec) error {
			if c.CampaignRef == "campaigns/"+failOn && c.Kind == domain.CriterionLocation {
				return errors.New("location rejected")
			}
			return nil
		})
}

func newTestOrchestrator(repo port.JobRepository, creds port.CredentialProvider, ads port.AdsService) *Orchestrator {
	return NewOrchestrator(repo, creds, connectorFor(ads),
		WithCampaignDelay(0),
		WithOrchestratorClock(func() time.Time { return fixedNow.Add(time.Minute) }),
	)
}

func TestProcessJobRecordsPerCampaignOutcome(t *testing.T) {
	repo := newRepo()
	jobID := seedJob(t, repo, "Alpha", "Beta", "Gamma")

	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().GetCredentials(mock.Anything).Return(testCreds, nil)
	ads := mocks.NewMockAdsService(t)
	expectHappyAds(ads, "Beta")

	err := newTestOrchestrator(repo, creds, ads).ProcessJob(context.Background(), jobID)
	require.NoError(t, err)

	job, err := repo.Get(context.Background(), jobID)
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.Equal(t,
		[]domain.CampaignStatus{domain.CampaignCompleted, domain.CampaignFailed, domain.CampaignCompleted},
		job.CampaignStatuses())
	assert.Equal(t, "create location criterion: location rejected", job.Campaigns[1].Error)
	assert.Empty(t, job.Campaigns[0].Error)
	assert.Equal(t, domain.JobInProgress, job.Status)
	assert.Equal(t, domain.JobFailed, job.Effective().Status)
	require.NotNil(t, job.CompletedAt)
	assert.Equal(t, fixedNow.Add(time.Minute), *job.CompletedAt)

	ads.AssertNumberOfCalls(t, "CreateBudget", 3)
	ads.AssertNumberOfCalls(t, "CreateCriterion", 5)
}

func TestProcessJobSendsSafeCampaigns(t *testing.T) {
	repo := newRepo()
	jobID := seedJob(t, repo, "Alpha")

	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().GetCredentials(mock.Anything).Return(testCreds, nil)

	ads := mocks.NewMockAdsService(t)
	ads.EXPECT().
		CreateBudget(mock.Anything, "123-456-7890", domain.BudgetSpec{
			Name: "Alpha - Budget", AmountMicros: 10_000_000, DeliveryMethod: "STANDARD",
		}).
		Return("budgets/1", nil)
	ads.EXPECT().
		CreateCampaign(mock.Anything, "123-456-7890", mock.MatchedBy(func(c domain.CampaignSpec) bool {
			return c.Status == "PAUSED" && c.BudgetRef == "budgets/1" && !c.TargetContentNetwork
		})).
		Return("campaigns/1", nil)
	targeting := domain.Targeting{GeoTargetConstant: "geoTargetConstants/2036", LanguageConstant: "languageConstants/1000"}
	for _, c := range targeting.Criteria("campaigns/1") {
		ads.EXPECT().CreateCriterion(mock.Anything, "123-456-7890", c).Return(nil).Once()
	}

	o := NewOrchestrator(repo, creds, connectorFor(ads), WithCampaignDelay(0), WithTargeting(targeting))
	require.NoError(t, o.ProcessJob(context.Background(), jobID))

	job, _ := repo.Get(context.Background(), jobID)
	assert.Equal(t, domain.JobCompleted, job.Effective().Status)
}

func TestProcessJobFailsBudgetOutOfRange(t *testing.T) {
	repo := newRepo()
	defs := []domain.CampaignDefinition{
		domain.NewCampaignDefinition("Huge", 1, decimal.RequireFromString("10000000000000")),
		domain.NewCampaignDefinition("Fine", 1, decimal.NewFromInt(10)),
	}
	job := domain.NewCampaignJob("job-1", "123-456-7890", defs, fixedNow, 24*time.Hour)
	require.NoError(t, repo.Create(context.Background(), job))

	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().GetCredentials(mock.Anything).Return(testCreds, nil)
	ads := mocks.NewMockAdsService(t)
	expectHappyAds(ads, "")

	require.NoError(t, newTestOrchestrator(repo, creds, ads).ProcessJob(context.Background(), job.JobID))

	got, err := repo.Get(context.Background(), job.JobID)
	require.NoError(t, err)
	assert.Equal(t,
		[]domain.CampaignStatus{domain.CampaignFailed, domain.CampaignCompleted},
		got.CampaignStatuses())
	assert.Contains(t, got.Campaigns[0].Error, "create budget: daily budget out of range")
	ads.AssertNumberOfCalls(t, "CreateBudget", 1)
}

func TestProcessJobCredentialFailureMarksNothing(t *testing.T) {
	repo := newRepo()
	jobID := seedJob(t, repo, "Alpha", "Beta")

	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().GetCredentials(mock.Anything).Return(domain.Credentials{}, errors.New("secret missing"))
	ads := mocks.NewMockAdsService(t)

	err := newTestOrchestrator(repo, creds, ads).ProcessJob(context.Background(), jobID)
	require.ErrorIs(t, err, port.ErrCredentials)

	job, _ := repo.Get(context.Background(), jobID)
	assert.Equal(t, domain.JobPending, job.Status)
	assert.Equal(t, []domain.CampaignStatus{domain.CampaignPending, domain.CampaignPending}, job.CampaignStatuses())
	assert.Nil(t, job.CompletedAt)
}

func TestProcessJobSkipsNonPendingCampaigns(t *testing.T) {
	repo := newRepo()
	jobID := seedJob(t, repo, "Alpha", "Beta", "Gamma")
	ctx := context.Background()

	require.NoError(t, repo.UpdatePartial(ctx, jobID, domain.CampaignStatusPatch("job-1-campaign-1", domain.CampaignCreating, "")))
	require.NoError(t, repo.UpdatePartial(ctx, jobID, domain.CampaignStatusPatch("job-1-campaign-2", domain.CampaignCreating, "")))
	require.NoError(t, repo.UpdatePartial(ctx, jobID, domain.CampaignStatusPatch("job-1-campaign-2", domain.CampaignCompleted, "")))

	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().GetCredentials(mock.Anything).Return(testCreds, nil)
	ads := mocks.NewMockAdsService(t)
	expectHappyAds(ads, "")

	require.NoError(t, newTestOrchestrator(repo, creds, ads).ProcessJob(ctx, jobID))

	job, _ := repo.Get(ctx, jobID)
	assert.Equal(t,
		[]domain.CampaignStatus{domain.CampaignCreating, domain.CampaignCompleted, domain.CampaignCompleted},
		job.CampaignStatuses())
	assert.Equal(t, domain.JobInProgress, job.Effective().Status)
	ads.AssertNumberOfCalls(t, "CreateBudget", 1)
}

func TestProcessJobCancelledMidCampaign(t *testing.T) {
	repo := newRepo()
	jobID := seedJob(t, repo, "Alpha", "Beta")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().GetCredentials(mock.Anything).Return(testCreds, nil)
	ads := mocks.NewMockAdsService(t)
	ads.EXPECT().
		CreateBudget(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ domain.BudgetSpec) (string, error) {
			cancel()
			return "", ctx.Err()
		}).
		Once()

	err := newTestOrchestrator(repo, creds, ads).ProcessJob(ctx, jobID)
	require.ErrorIs(t, err, context.Canceled)

	job, _ := repo.Get(context.Background(), jobID)
	assert.Equal(t, []domain.CampaignStatus{domain.CampaignCreating, domain.CampaignPending}, job.CampaignStatuses())
	assert.Nil(t, job.CompletedAt)
}

func TestProcessJobDelayHonorsCancellation(t *testing.T) {
	repo := newRepo()
	jobID := seedJob(t, repo, "Alpha", "Beta")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().GetCredentials(mock.Anything).Return(testCreds, nil)
	ads := mocks.NewMockAdsService(t)
	expectHappyAds(ads, "")

	o := NewOrchestrator(repo, creds, connectorFor(ads), WithCampaignDelay(time.Hour))
	err := o.ProcessJob(ctx, jobID)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	job, _ := repo.Get(context.Background(), jobID)
	assert.Equal(t, []domain.CampaignStatus{domain.CampaignCompleted, domain.CampaignPending}, job.CampaignStatuses())
}

func TestProcessJobUnknownJob(t *testing.T) {
	creds := mocks.NewMockCredentialProvider(t)
	ads := mocks.NewMockAdsService(t)

	err := newTestOrchestrator(newRepo(), creds, ads).ProcessJob(context.Background(), "missing")
	assert.ErrorIs(t, err, port.ErrJobNotFound)
}
