package configs

const (
	SecretsSourceEnv  = "env"
	SecretsSourceFile = "file"
)

// Secrets selects the credential provider. With the env source credentials
// are read from GOOGLEADS_CREDENTIALS_* on every job; with the file source
// from a JSON document at File.
type Secrets struct {
	Source string `env:"SOURCE" envDefault:"env"`
	File   string `env:"FILE" envDefault:"/run/secrets/googleads-oauth.json"`
}
