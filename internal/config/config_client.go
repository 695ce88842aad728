package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientConfig holds the settings of the command-line API client.
type ClientConfig struct {
	// ServerAddress is the base URL or host:port of the server.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"localhost:3000"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	// Token is a bearer token reused by guarded commands.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`
}

// GetClientConfig reads the CLIENT_* environment variables and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return nil, fmt.Errorf("error getting client env configs: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return cfg, nil
}
