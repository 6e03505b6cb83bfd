package domain

// EffectiveStatus derives a job status from its campaign statuses:
//
//   - every campaign completed: completed
//   - at least one failed and none pending or creating: failed
//   - at least one creating: in_progress
//   - otherwise current is returned unchanged
//
// An empty list keeps current.
func EffectiveStatus(current JobStatus, statuses []CampaignStatus) JobStatus {
	if len(statuses) == 0 {
		return current
	}

	var completed, failed, creating int
	for _, s := range statuses {
		switch s {
		case CampaignCompleted:
			completed++
		case CampaignFailed:
			failed++
		case CampaignCreating:
			creating++
		}
	}

	switch {
	case completed == len(statuses):
		return JobCompleted
	case failed > 0 && completed+failed == len(statuses):
		return JobFailed
	case creating > 0:
		return JobInProgress
	default:
		return current
	}
}
