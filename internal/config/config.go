// Package config loads the tool's configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL        = "https://api.github.com"
	defaultTimeoutSeconds = 10
)

// Config holds application configuration.
type Config struct {
	// Token is an optional GitHub token; anonymous access works but
	// has a much lower quota.
	Token string `yaml:"token"`
	// BaseURL points at the GitHub API (override for Enterprise).
	BaseURL string `yaml:"base_url"`
	// CacheFile is where the cache snapshot lives. Empty disables
	// persistence.
	CacheFile string `yaml:"cache_file"`
	// TimeoutSeconds bounds each API call.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Load builds the configuration: defaults, then the YAML file at path
// (missing file is fine), then environment overrides GITHUB_TOKEN,
// GITHUB_API_URL and ACTIVITY_CACHE_FILE.
func Load(path string) (*Config, error) {
	cfg := &Config{
		BaseURL:        defaultBaseURL,
		CacheFile:      DefaultCacheFile(),
		TimeoutSeconds: defaultTimeoutSeconds,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("GITHUB_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ACTIVITY_CACHE_FILE"); v != "" {
		cfg.CacheFile = v
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}
	return cfg, nil
}

// Timeout returns the API call timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultCacheFile returns the snapshot path under the user cache dir,
// or empty (persistence off) when no cache dir is resolvable.
func DefaultCacheFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "github-activity", "cache.json")
}
