// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for memorize configuration
	// and local state.
	DefaultConfigDir = ".memorize"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDatabaseFile is the default SQLite database file name.
	DefaultDatabaseFile = "memorize.db"
	// DefaultFetchTimeout applies when no timeout is configured.
	DefaultFetchTimeout = 30 * time.Second
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Fetch  FetchConfig  `yaml:"fetch,omitempty"`
	Store  StoreConfig  `yaml:"store,omitempty"`
	OpenAI OpenAIConfig `yaml:"openai,omitempty"`
}

// FetchConfig holds configuration for question source retrieval.
type FetchConfig struct {
	// BaseURL resolves relative source URLs. When empty, sources must be
	// absolute URLs.
	BaseURL string `yaml:"base_url,omitempty" env:"MEMORIZE_BASE_URL"`
	// TimeoutSeconds bounds a single network fetch. A timeout counts as
	// a network failure for cache-fallback purposes.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty" env:"MEMORIZE_FETCH_TIMEOUT"`
}

// Timeout returns the fetch timeout as a duration.
func (c FetchConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultFetchTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StoreConfig holds configuration for the SQLite store.
type StoreConfig struct {
	// Path is the file path to the SQLite database. When empty it is
	// computed from the config directory via DatabasePath.
	Path string `yaml:"path,omitempty" env:"MEMORIZE_DB_PATH"`
}

// OpenAIConfig holds configuration for the answer explainer.
type OpenAIConfig struct {
	APIKey string `yaml:"api_key,omitempty" env:"OPENAI_API_KEY"`
	Model  string `yaml:"model,omitempty" env:"MEMORIZE_OPENAI_MODEL"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
	}
}

// Load loads configuration from the .memorize directory in the given
// path. A missing config file is not an error: defaults apply, so the
// tool works without any setup. Environment variables override file
// values.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
	data, err := os.ReadFile(configFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment overrides: %w", err)
	}

	return cfg, nil
}

// ConfigDir returns the path to the .memorize config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// DatabasePath returns the SQLite database path, honoring an explicit
// store path when configured.
func (c *Config) DatabasePath(basePath string) string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return filepath.Join(basePath, DefaultConfigDir, DefaultDatabaseFile)
}
