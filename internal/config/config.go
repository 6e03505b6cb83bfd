package config

import (
	"github.com/caarlos0/env/v11"

	"campaign-loader/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Store selects the job store and its retention (STORE_*).
	Store configs.Store `envPrefix:"STORE_"`

	// Worker tunes job processing (WORKER_*).
	Worker configs.Worker `envPrefix:"WORKER_"`

	// GoogleAds configures the remote advertising API (GOOGLEADS_*).
	GoogleAds configs.GoogleAds `envPrefix:"GOOGLEADS_"`

	// Secrets selects where API credentials are read from (SECRETS_*).
	Secrets configs.Secrets `envPrefix:"SECRETS_"`
}

// Load reads configuration from environment variables into a Config. All
// fields take their declared defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
