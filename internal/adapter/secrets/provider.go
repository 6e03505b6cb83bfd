// Package secrets resolves the credentials used to reach the advertising
// API. Credentials are read on every call so rotated secrets are picked up
// without a restart.
package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"campaign-loader/internal/config/configs"
	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/port"
)

// EnvPrefix is prepended to every credential variable name.
const EnvPrefix = "GOOGLEADS_CREDENTIALS_"

type credentials struct {
	ClientID       string `env:"CLIENT_ID" json:"client_id" validate:"required"`
	ClientSecret   string `env:"CLIENT_SECRET" json:"client_secret" validate:"required"`
	DeveloperToken string `env:"DEVELOPER_TOKEN" json:"developer_token" validate:"required"`
	RefreshToken   string `env:"REFRESH_TOKEN" json:"refresh_token" validate:"required"`
}

func (c credentials) toDomain() domain.Credentials {
	return domain.Credentials{
		ClientID:       c.ClientID,
		ClientSecret:   c.ClientSecret,
		DeveloperToken: c.DeveloperToken,
		RefreshToken:   c.RefreshToken,
	}
}

var validate = validator.New()

func check(c credentials) (domain.Credentials, error) {
	if err := validate.Struct(c); err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: %w", port.ErrCredentials, err)
	}
	return c.toDomain(), nil
}

// EnvProvider reads credentials from GOOGLEADS_CREDENTIALS_* variables.
type EnvProvider struct{}

// NewEnvProvider returns an EnvProvider.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

// GetCredentials implements port.CredentialProvider.
func (p *EnvProvider) GetCredentials(_ context.Context) (domain.Credentials, error) {
	var c credentials
	if err := env.ParseWithOptions(&c, env.Options{Prefix: EnvPrefix}); err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: %w", port.ErrCredentials, err)
	}
	return check(c)
}

// FileProvider reads credentials from a JSON document with snake_case keys,
// the layout used for mounted secrets.
type FileProvider struct {
	path string
}

// NewFileProvider returns a FileProvider reading path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// GetCredentials implements port.CredentialProvider.
func (p *FileProvider) GetCredentials(_ context.Context) (domain.Credentials, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Credentials{}, fmt.Errorf("%w: %s does not exist", port.ErrCredentials, p.path)
		}
		return domain.Credentials{}, fmt.Errorf("%w: read %s: %w", port.ErrCredentials, p.path, err)
	}

	var c credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: decode %s: %w", port.ErrCredentials, p.path, err)
	}
	return check(c)
}

// New returns the provider selected by source: "env" or "file".
func New(source, path string) (port.CredentialProvider, error) {
	switch source {
	case configs.SecretsSourceEnv:
		return NewEnvProvider(), nil
	case configs.SecretsSourceFile:
		return NewFileProvider(path), nil
	default:
		return nil, fmt.Errorf("unknown secrets source %q", source)
	}
}
