package configs

import (
	"time"

	"campaign-loader/internal/core/domain"
)

// GoogleAds configures the Google Ads REST client.
type GoogleAds struct {
	BaseURL    string `env:"BASE_URL" envDefault:"https://googleads.googleapis.com"`
	APIVersion string `env:"API_VERSION" envDefault:"v17"`
	// LoginCustomerID is the manager account used to reach client accounts.
	// Empty when calling accounts directly.
	LoginCustomerID string        `env:"LOGIN_CUSTOMER_ID"`
	TokenURL        string        `env:"TOKEN_URL" envDefault:"https://oauth2.googleapis.com/token"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// RequestsPerSecond limits calls made by one client.
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND" envDefault:"5"`

	GeoTargetConstant string `env:"GEO_TARGET_CONSTANT" envDefault:"geoTargetConstants/2554"`
	LanguageConstant  string `env:"LANGUAGE_CONSTANT" envDefault:"languageConstants/1000"`
}

// Targeting returns the criteria attached to every created campaign.
func (c GoogleAds) Targeting() domain.Targeting {
	return domain.Targeting{
		GeoTargetConstant: c.GeoTargetConstant,
		LanguageConstant:  c.LanguageConstant,
	}
}
