// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"net"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DefaultEndpoint  = "https://en.wikipedia.org/w/api.php"
	DefaultUserAgent = "wikiguess/1.0"
	DefaultTimeout   = 60 * time.Second
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Wiki    WikiConfig
	Logging LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            string        `envconfig:"PORT" default:"8000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// WikiConfig holds MediaWiki API settings.
type WikiConfig struct {
	Endpoint  string        `envconfig:"WIKI_ENDPOINT" default:"https://en.wikipedia.org/w/api.php"`
	Timeout   time.Duration `envconfig:"WIKI_TIMEOUT" default:"60s"`
	UserAgent string        `envconfig:"WIKI_USER_AGENT" default:"wikiguess/1.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "8000",
			ShutdownTimeout: 10 * time.Second,
		},
		Wiki: WikiConfig{
			Endpoint:  DefaultEndpoint,
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
