package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "RUSTENBERG"

// DefaultUserAgent identifies this client to the service.
const DefaultUserAgent = "rustenberg-go"

// Config holds all client configuration.
type Config struct {
	ServiceConfig
	LogConfig
}

// ServiceConfig holds conversion service connection settings.
type ServiceConfig struct {
	ServiceURL string        `envconfig:"SERVICE_URL" required:"true"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"0s"`
	UserAgent  string        `envconfig:"USER_AGENT" default:"rustenberg-go"`
}

// LogConfig holds logging configuration. An empty level disables logging.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables on top of Default.
func Load() (*Config, error) {
	cfg := Default()
	if err := envconfig.Process(Prefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when a variable is unset. ServiceURL
// has no default.
func Default() *Config {
	return &Config{
		ServiceConfig: ServiceConfig{
			UserAgent: DefaultUserAgent,
		},
		LogConfig: LogConfig{
			Level:       "",
			Development: false,
		},
	}
}
