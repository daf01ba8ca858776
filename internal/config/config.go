package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Tracker TrackerConfig `toml:"tracker"`
	Tempo   TempoConfig   `toml:"tempo"`
	Retry   RetryConfig   `toml:"retry"`
	Update  UpdateConfig  `toml:"update"`
}

type TrackerConfig struct {
	// URL is the Jira base URL (e.g., https://company.atlassian.net)
	URL string `toml:"url"`
	// Username for Basic auth on cloud instances; empty means Bearer auth
	Username string `toml:"username"`
	// TimeoutSeconds for each API request
	TimeoutSeconds int `toml:"timeout_seconds"`
}

type TempoConfig struct {
	// URL is the Tempo API base URL
	URL string `toml:"url"`
	// PhaseAttributeKey is the worklog attribute the phase label is sent under
	PhaseAttributeKey string `toml:"phase_attribute_key"`
}

type RetryConfig struct {
	// MaxElapsedSeconds bounds the exponential backoff per action
	MaxElapsedSeconds int `toml:"max_elapsed_seconds"`
}

type UpdateConfig struct {
	Enabled        bool      `toml:"enabled"`
	LastCheck      time.Time `toml:"last_check"`
	SkippedVersion string    `toml:"skipped_version"`
	Repo           string    `toml:"repo"`
}

func DefaultConfig() *Config {
	return &Config{
		Tracker: TrackerConfig{
			TimeoutSeconds: 30,
		},
		Tempo: TempoConfig{
			PhaseAttributeKey: "_WorkCategory_",
		},
		Retry: RetryConfig{
			MaxElapsedSeconds: 30,
		},
		Update: UpdateConfig{
			Enabled: true,
			Repo:    "ldenholm/trackhook",
		},
	}
}

// Path returns the location of the config file
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "trackhook.toml"), nil
}

func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ValidateTracker checks that the tracker can actually be called
func (c *Config) ValidateTracker() error {
	if c.Tracker.URL == "" {
		return fmt.Errorf("tracker URL not configured (set tracker.url in %s)", describePath())
	}
	if c.TrackerToken() == "" {
		return fmt.Errorf("tracker API token not configured (set JIRA_API_TOKEN)")
	}
	return nil
}

// ValidateTempo checks that worklogs can be created
func (c *Config) ValidateTempo() error {
	if c.Tempo.URL == "" {
		return fmt.Errorf("tempo URL not configured (set tempo.url in %s)", describePath())
	}
	if c.TempoToken() == "" {
		return fmt.Errorf("tempo API token not configured (set TEMPO_API_TOKEN)")
	}
	return nil
}

// TrackerToken returns the Jira API token from the environment.
// Secrets live in env, never in the config file.
func (c *Config) TrackerToken() string {
	return os.Getenv("JIRA_API_TOKEN")
}

// TrackerUsername returns the Jira username, env overriding config
func (c *Config) TrackerUsername() string {
	if u := os.Getenv("JIRA_USERNAME"); u != "" {
		return u
	}
	return c.Tracker.Username
}

// TempoToken returns the Tempo API token from the environment
func (c *Config) TempoToken() string {
	return os.Getenv("TEMPO_API_TOKEN")
}

// RequestTimeout returns the per-request timeout
func (c *Config) RequestTimeout() time.Duration {
	if c.Tracker.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Tracker.TimeoutSeconds) * time.Second
}

// MaxRetryElapsed returns how long an action may keep retrying
func (c *Config) MaxRetryElapsed() time.Duration {
	if c.Retry.MaxElapsedSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Retry.MaxElapsedSeconds) * time.Second
}

// ShouldCheckForUpdate returns true if update check is enabled and 24h since last check
func (c *Config) ShouldCheckForUpdate() bool {
	if !c.Update.Enabled {
		return false
	}
	return time.Since(c.Update.LastCheck) > 24*time.Hour
}

// RecordUpdateCheck updates the last check time
func (c *Config) RecordUpdateCheck() {
	c.Update.LastCheck = time.Now()
}

func describePath() string {
	path, err := Path()
	if err != nil {
		return "the config file"
	}
	return path
}
