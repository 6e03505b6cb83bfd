package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrCampaignNotFound = errors.New("campaign not found in job")

// JobStatus is the overall state of a campaign job.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// Terminal reports whether a client should stop watching the job.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// CampaignJob is one submitted document's worth of campaigns. Campaigns have
// no identity outside their job.
type CampaignJob struct {
	JobID       string     `json:"jobId"`
	AccountID   string     `json:"accountId"`
	Status      JobStatus  `json:"status"`
	Campaigns   []Campaign `json:"campaigns"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	ExpiresAt   time.Time  `json:"expiresAt"`
}

// NewCampaignJob creates a pending job whose campaigns are all pending.
func NewCampaignJob(jobID, accountID string, defs []CampaignDefinition, now time.Time, retention time.Duration) CampaignJob {
	campaigns := make([]Campaign, 0, len(defs))
	for i, def := range defs {
		campaigns = append(campaigns, Campaign{
			CampaignDefinition: def,
			ID:                 CampaignID(jobID, i+1),
			Status:             CampaignPending,
		})
	}
	return CampaignJob{
		JobID:     jobID,
		AccountID: accountID,
		Status:    JobPending,
		Campaigns: campaigns,
		CreatedAt: now,
		ExpiresAt: now.Add(retention),
	}
}

// Clone returns a deep copy of the job.
func (j CampaignJob) Clone() CampaignJob {
	out := j
	out.Campaigns = append([]Campaign(nil), j.Campaigns...)
	if j.CompletedAt != nil {
		at := *j.CompletedAt
		out.CompletedAt = &at
	}
	return out
}

// CampaignStatuses lists the status of every campaign in order.
func (j CampaignJob) CampaignStatuses() []CampaignStatus {
	out := make([]CampaignStatus, len(j.Campaigns))
	for i, c := range j.Campaigns {
		out[i] = c.Status
	}
	return out
}

// Effective returns a copy of the job whose status is derived from its
// campaigns. The stored job is left alone.
func (j CampaignJob) Effective() CampaignJob {
	out := j.Clone()
	out.Status = EffectiveStatus(j.Status, j.CampaignStatuses())
	return out
}

// Expired reports whether the job is past its retention window.
func (j CampaignJob) Expired(now time.Time) bool {
	return !j.ExpiresAt.IsZero() && !now.Before(j.ExpiresAt)
}

// CampaignPatch changes the status of a single campaign.
type CampaignPatch struct {
	ID     string
	Status CampaignStatus
	Error  string
}

// JobPatch is a partial update of a job. Nil fields are left untouched.
type JobPatch struct {
	Status      *JobStatus
	Campaign    *CampaignPatch
	CompletedAt *time.Time
}

// StatusPatch sets the job status.
func StatusPatch(s JobStatus) JobPatch {
	return JobPatch{Status: &s}
}

// CampaignStatusPatch moves one campaign to a new status. errMsg is kept
// only for failed campaigns.
func CampaignStatusPatch(id string, s CampaignStatus, errMsg string) JobPatch {
	return JobPatch{Campaign: &CampaignPatch{ID: id, Status: s, Error: errMsg}}
}

// CompletedPatch stamps the completion time.
func CompletedPatch(at time.Time) JobPatch {
	return JobPatch{CompletedAt: &at}
}

// Apply mutates job according to the patch. Campaign changes must follow the
// campaign lifecycle; on error job is left unchanged.
func (p JobPatch) Apply(job *CampaignJob) error {
	idx := -1
	if p.Campaign != nil {
		for i := range job.Campaigns {
			if job.Campaigns[i].ID == p.Campaign.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrCampaignNotFound, p.Campaign.ID)
		}
		from := job.Campaigns[idx].Status
		if !from.CanTransition(p.Campaign.Status) {
			return fmt.Errorf("%w: %s %s -> %s", ErrInvalidTransition, p.Campaign.ID, from, p.Campaign.Status)
		}
	}

	if p.Status != nil {
		job.Status = *p.Status
	}
	if idx >= 0 {
		c := &job.Campaigns[idx]
		c.Status = p.Campaign.Status
		c.Error = ""
		if c.Status == CampaignFailed {
			c.Error = p.Campaign.Error
		}
	}
	if p.CompletedAt != nil {
		at := *p.CompletedAt
		job.CompletedAt = &at
	}
	return nil
}
