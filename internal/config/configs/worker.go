package configs

import "time"

// Worker tunes background job processing.
type Worker struct {
	// CampaignDelay is the pause after each campaign of a job, a courtesy
	// to the remote API's rate limits.
	CampaignDelay time.Duration `env:"CAMPAIGN_DELAY" envDefault:"2s"`
	// MaxConcurrentJobs bounds how many jobs run at once. Campaigns of one
	// job are always sequential.
	MaxConcurrentJobs int `env:"MAX_CONCURRENT_JOBS" envDefault:"4"`
	// SweepSchedule is a cron spec for re-dispatching jobs still pending,
	// e.g. after a missed notification or an aborted run.
	SweepSchedule string `env:"SWEEP_SCHEDULE" envDefault:"@every 1m"`
	// SweepBatch caps how many pending jobs one sweep dispatches.
	SweepBatch int `env:"SWEEP_BATCH" envDefault:"50"`
	// PurgeSchedule is a cron spec for deleting expired jobs.
	PurgeSchedule string `env:"PURGE_SCHEDULE" envDefault:"@hourly"`
}
