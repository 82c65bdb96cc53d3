// Package config loads Tumblweed configuration from a JSON file with
// environment variable overrides.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrMissingCredentials is returned by Validate when no access token is
// configured.
var ErrMissingCredentials = errors.New("no access token configured")

// ErrMissingBlog is returned by Validate when no default blog is
// configured.
var ErrMissingBlog = errors.New("no blog configured")

// Config holds the credentials and defaults for talking to the API. The
// token is pre-obtained; this tool does not run an OAuth flow.
type Config struct {
	Blog           string `env:"TUMBLWEED_BLOG"            json:"blog"`
	AccessToken    string `env:"TUMBLWEED_ACCESS_TOKEN"    json:"access_token"`
	ConsumerKey    string `env:"TUMBLWEED_CONSUMER_KEY"    json:"consumer_key,omitempty"`
	ConsumerSecret string `env:"TUMBLWEED_CONSUMER_SECRET" json:"consumer_secret,omitempty"`
	APIBase        string `env:"TUMBLWEED_API_BASE"        json:"api_base,omitempty"`
}

// DefaultConfigPath returns ~/.tumblweed/config.json.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tumblweed", "config.json")
	}
	return filepath.Join(home, ".tumblweed", "config.json")
}

// LoadConfig reads path (DefaultConfigPath when empty) and applies
// environment overrides. A missing file is not an error; env-only setups
// are fine.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig writes the config as indented JSON, creating the directory
// if needed. Permissions are tight since the file holds credentials.
func SaveConfig(path string, cfg *Config) error {
	if path == "" {
		path = DefaultConfigPath()
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate checks that the config can authenticate API calls.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AccessToken) == "" {
		return ErrMissingCredentials
	}
	if strings.TrimSpace(c.Blog) == "" {
		return ErrMissingBlog
	}
	return nil
}
