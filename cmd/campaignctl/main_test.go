package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "campaign-loader/internal/adapter/http"
	"campaign-loader/internal/adapter/memory"
	"campaign-loader/internal/adapter/usecase"
	"campaign-loader/internal/client"
	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/mdparse"
)

const plan = `### TIER 1 CAMPAIGNS
#### 1. Search-Auckland
- **Daily Budget:** $46.67
### TIER 2 CAMPAIGNS
Display-Nelson - $10
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, s *settings, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(s)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func newAPI(t *testing.T) (*httptest.Server, *memory.JobRepository) {
	t.Helper()
	repo := memory.NewJobRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := httpadapter.NewHandler(usecase.NewCampaignUseCase(repo, time.Hour), logger, 1<<20)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv, repo
}

func TestValidatePrintsSummary(t *testing.T) {
	out, err := execute(t, &settings{}, "validate", writePlan(t, plan))
	require.NoError(t, err)

	assert.Contains(t, out, "TIER 1")
	assert.Contains(t, out, "Search-Auckland")
	assert.Contains(t, out, "$46.67/day")
	assert.Contains(t, out, "TOTAL (2 campaigns)")
	assert.Contains(t, out, "$1700.10/month")
	assert.NotContains(t, out, "TIER 3")
}

func TestValidateNormalize(t *testing.T) {
	out, err := execute(t, &settings{}, "validate", "--normalize", writePlan(t, plan))
	require.NoError(t, err)

	defs := mdparse.Parse(out)
	require.Len(t, defs, 2)
	assert.Equal(t, "Search-Auckland", defs[0].Name)
	assert.Equal(t, 2, defs[1].Tier)
}

func TestValidateRejectsDocument(t *testing.T) {
	_, err := execute(t, &settings{}, "validate", writePlan(t, "nothing to see"))
	assert.EqualError(t, err, "no valid campaigns found")
}

func TestSubmitNeedsAPIURL(t *testing.T) {
	_, err := execute(t, &settings{}, "submit", writePlan(t, plan), "--account", "1")
	assert.ErrorIs(t, err, client.ErrNotConfigured)
}

func TestSubmitAndStatus(t *testing.T) {
	srv, repo := newAPI(t)
	s := &settings{APIURL: srv.URL, PollInterval: time.Millisecond}

	out, err := execute(t, s, "submit", writePlan(t, plan), "--account", "123-456-7890")
	require.NoError(t, err)
	assert.Contains(t, out, "Job created successfully")

	ids, err := repo.ListPending(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, ids, 1)

	out, err = execute(t, s, "status", ids[0])
	require.NoError(t, err)
	assert.Contains(t, out, "account 123-456-7890")
	assert.Contains(t, out, "Display-Nelson")
	assert.Contains(t, out, "pending")
}

func TestWatchUntilFinished(t *testing.T) {
	srv, repo := newAPI(t)
	ctx := context.Background()
	s := &settings{APIURL: srv.URL, PollInterval: time.Millisecond}

	defs := []domain.CampaignDefinition{domain.NewCampaignDefinition("Alpha", 1, decimal.NewFromInt(5))}
	job := domain.NewCampaignJob("j1", "1", defs, time.Now(), time.Hour)
	require.NoError(t, repo.Create(ctx, job))
	require.NoError(t, repo.UpdatePartial(ctx, "j1", domain.CampaignStatusPatch("j1-campaign-1", domain.CampaignCreating, "")))
	require.NoError(t, repo.UpdatePartial(ctx, "j1", domain.CampaignStatusPatch("j1-campaign-1", domain.CampaignFailed, "create budget: quota")))

	out, err := execute(t, s, "watch", "j1")
	assert.EqualError(t, err, "some campaigns failed")
	assert.Contains(t, out, "[100%] failed: 1/1 campaigns processed")
	assert.Contains(t, out, "create budget: quota")
}

func TestStatusUnknownJob(t *testing.T) {
	srv, _ := newAPI(t)
	_, err := execute(t, &settings{APIURL: srv.URL}, "status", "nope")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.NotFound())
}
