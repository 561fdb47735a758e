package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Feed    FeedConfig    `json:"feed"`
	Refresh RefreshConfig `json:"refresh"`
	Targets TargetsConfig `json:"targets"`
	Log     LogConfig     `json:"log"`
}

// FeedConfig holds the source URLs for the dashboard
type FeedConfig struct {
	DataSheetURL     string `json:"data_sheet_url"`
	PlanURL          string `json:"plan_url"`
	ExerciseSheetURL string `json:"exercise_sheet_url"`
}

// RefreshConfig controls the periodic reload
type RefreshConfig struct {
	IntervalMinutes int `json:"interval_minutes"`
}

// TargetsConfig holds the fixed daily targets
type TargetsConfig struct {
	ProteinGrams float64 `json:"protein_grams"`
	StepsPerDay  float64 `json:"steps_per_day"`
}

// LogConfig holds logging preferences
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Refresh: RefreshConfig{
			IntervalMinutes: 5,
		},
		Targets: TargetsConfig{
			ProteinGrams: 170,
			StepsPerDay:  8000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from ~/.fitdash/config.json, applies defaults
// for missing values, and lets FITDASH_* environment variables override the
// feed URLs.
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Refresh.IntervalMinutes == 0 {
		cfg.Refresh.IntervalMinutes = defaults.Refresh.IntervalMinutes
	}
	if cfg.Targets.ProteinGrams == 0 {
		cfg.Targets.ProteinGrams = defaults.Targets.ProteinGrams
	}
	if cfg.Targets.StepsPerDay == 0 {
		cfg.Targets.StepsPerDay = defaults.Targets.StepsPerDay
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITDASH_DATA_SHEET_URL"); v != "" {
		cfg.Feed.DataSheetURL = v
	}
	if v := os.Getenv("FITDASH_PLAN_URL"); v != "" {
		cfg.Feed.PlanURL = v
	}
	if v := os.Getenv("FITDASH_EXERCISE_SHEET_URL"); v != "" {
		cfg.Feed.ExerciseSheetURL = v
	}
}

// Save writes the configuration to ~/.fitdash/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Feed = FeedConfig{
		DataSheetURL: "https://docs.google.com/spreadsheets/d/YOUR_SHEET/pub?output=csv",
	}

	return Save(&example)
}

// Validate checks URLs and intervals before anything is fetched. A malformed
// URL is rejected here, at the boundary.
func (c *Config) Validate() error {
	if c.Feed.DataSheetURL == "" {
		return errors.New("feed.data_sheet_url is required - publish your data sheet as CSV and paste the link")
	}
	if err := validateURL(c.Feed.DataSheetURL); err != nil {
		return fmt.Errorf("feed.data_sheet_url: %w", err)
	}
	if c.Feed.PlanURL != "" {
		if err := validateURL(c.Feed.PlanURL); err != nil {
			return fmt.Errorf("feed.plan_url: %w", err)
		}
	}
	if c.Feed.ExerciseSheetURL != "" {
		if err := validateURL(c.Feed.ExerciseSheetURL); err != nil {
			return fmt.Errorf("feed.exercise_sheet_url: %w", err)
		}
	}

	if c.Refresh.IntervalMinutes < 1 {
		return fmt.Errorf("refresh.interval_minutes must be at least 1, got %d", c.Refresh.IntervalMinutes)
	}
	if c.Targets.ProteinGrams < 0 {
		return fmt.Errorf("targets.protein_grams must not be negative, got %v", c.Targets.ProteinGrams)
	}
	if c.Targets.StepsPerDay < 0 {
		return fmt.Errorf("targets.steps_per_day must not be negative, got %v", c.Targets.StepsPerDay)
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("URL has no host")
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fitdash", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fitdash"), nil
}
