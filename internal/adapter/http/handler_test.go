package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-loader/internal/adapter/memory"
	"campaign-loader/internal/adapter/usecase"
	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/port"
)

const doc = "TIER 1 CAMPAIGNS\\n#### 1. Search-Auckland\\n- **Daily Budget:** $46.67\\nTIER 2 CAMPAIGNS\\nDisplay - $10\\n"

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newServer(t *testing.T) (*httptest.Server, *memory.JobRepository) {
	t.Helper()
	repo := memory.NewJobRepository()
	h := NewHandler(usecase.NewCampaignUseCase(repo, time.Hour), discard, 1<<20)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv, repo
}

func post(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestParseCreatesJob(t *testing.T) {
	srv, repo := newServer(t)

	resp, body := post(t, srv.URL+"/api/v1/parse", `{"mdContent":"`+doc+`","accountId":"123-456-7890"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Job created successfully", body["message"])
	assert.Equal(t, float64(2), body["campaignCount"])

	jobID, _ := body["jobId"].(string)
	require.NotEmpty(t, jobID)
	job, err := repo.Get(context.Background(), jobID)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, domain.JobPending, job.Status)
}

func TestParseRejectsBadInput(t *testing.T) {
	srv, _ := newServer(t)

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"missing account", `{"mdContent":"` + doc + `"}`, http.StatusBadRequest, "Missing required fields: mdContent and accountId"},
		{"missing content", `{"accountId":"1"}`, http.StatusBadRequest, "Missing required fields: mdContent and accountId"},
		{"no campaigns", `{"mdContent":"hello","accountId":"1"}`, http.StatusBadRequest, "no valid campaigns found"},
		{"duplicates", `{"mdContent":"T1\nA - $1\nT2\nA - $2\n","accountId":"1"}`, http.StatusBadRequest, "duplicate campaign names found"},
		{"bad json", `{`, http.StatusBadRequest, "invalid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, srv.URL+"/api/v1/parse", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestParseRejectsLargeBody(t *testing.T) {
	repo := memory.NewJobRepository()
	h := NewHandler(usecase.NewCampaignUseCase(repo, time.Hour), discard, 16)
	srv := httptest.NewServer(h.Router())
	defer srv.Close()

	resp, _ := post(t, srv.URL+"/api/v1/parse", `{"mdContent":"`+doc+`","accountId":"1"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestPreview(t *testing.T) {
	srv, _ := newServer(t)

	resp, body := post(t, srv.URL+"/api/v1/preview", `{"mdContent":"`+doc+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	totals := body["totals"].(map[string]any)
	assert.Equal(t, "56.67", totals["totalDaily"])
	assert.Equal(t, "1700.1", totals["totalMonthly"])
	assert.Len(t, body["campaigns"], 2)

	tiers := body["tiers"].(map[string]any)
	assert.Len(t, tiers, 4)
	assert.Len(t, tiers["1"], 1)
	assert.Empty(t, tiers["3"])
}

func TestStatus(t *testing.T) {
	srv, repo := newServer(t)
	ctx := context.Background()

	_, body := post(t, srv.URL+"/api/v1/parse", `{"mdContent":"`+doc+`","accountId":"1"}`)
	jobID := body["jobId"].(string)

	require.NoError(t, repo.UpdatePartial(ctx, jobID, domain.StatusPatch(domain.JobInProgress)))
	require.NoError(t, repo.UpdatePartial(ctx, jobID, domain.CampaignStatusPatch(jobID+"-campaign-1", domain.CampaignCreating, "")))

	resp, err := http.Get(srv.URL + "/api/v1/status/" + jobID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Job domain.CampaignJob `json:"job"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, jobID, out.Job.JobID)
	assert.Equal(t, domain.JobInProgress, out.Job.Status)
	assert.Equal(t, domain.CampaignCreating, out.Job.Campaigns[0].Status)
	assert.Equal(t, "Search-Auckland", out.Job.Campaigns[0].Name)
}

func TestStatusNotFound(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/status/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "job not found", out["message"])
}

type brokenUseCase struct{ port.CampaignUseCase }

func (brokenUseCase) GetJobStatus(context.Context, string) (*domain.CampaignJob, error) {
	return nil, errors.New("connection reset")
}

func TestInternalErrorsAreHidden(t *testing.T) {
	srv := httptest.NewServer(NewHandler(brokenUseCase{}, discard, 1<<20).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/status/x")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "internal server error", out["message"])
}

func TestHealth(t *testing.T) {
	srv, _ := newServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
