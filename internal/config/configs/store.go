package configs

import "time"

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Store selects the job store implementation. Jobs are kept for Retention
// after creation and then purged.
type Store struct {
	Driver    string        `env:"DRIVER" envDefault:"postgres"`
	Retention time.Duration `env:"RETENTION" envDefault:"168h"`
	// SeedAccountID, when set, submits the bundled sample plan for that
	// account on startup. Meant for local runs with the memory driver.
	SeedAccountID string `env:"SEED_ACCOUNT_ID"`
}
