package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Model     ModelConfig     `yaml:"model"`
	Credits   CreditsConfig   `yaml:"credits"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ModelConfig locates the CSV rate tables
type ModelConfig struct {
	Dir         string `yaml:"dir"`
	Memberships string `yaml:"memberships"`
	Tools       string `yaml:"tools"`
	Seasons     string `yaml:"seasons"`
	TimeWindows string `yaml:"time_windows"`
	LateFees    string `yaml:"late_fees"`
}

// CreditsConfig holds the behavior bonus constants
type CreditsConfig struct {
	EarlyReturnPercent    float64 `yaml:"early_return_percent"`
	EarlyReturnMultiplier int     `yaml:"early_return_multiplier"`
	CleanReturnBonus      int     `yaml:"clean_return_bonus"`
}

// SchedulerConfig controls the monthly credit grant job
type SchedulerConfig struct {
	Enabled         bool   `yaml:"enabled"`
	MonthlyGrant    string `yaml:"monthly_grant"`
	MembershipLevel string `yaml:"membership_level"`
}

// Load reads and parses the configuration file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a configuration with all defaults applied, for use
// when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Model.Dir == "" {
		c.Model.Dir = "model"
	}
	if c.Model.Memberships == "" {
		c.Model.Memberships = "membership_levels.csv"
	}
	if c.Model.Tools == "" {
		c.Model.Tools = "tool_categories_prices.csv"
	}
	if c.Model.Seasons == "" {
		c.Model.Seasons = "seasonal_offers.csv"
	}
	if c.Model.TimeWindows == "" {
		c.Model.TimeWindows = "time_window_multipliers.csv"
	}
	if c.Model.LateFees == "" {
		c.Model.LateFees = "late_fee_bands.csv"
	}
	if c.Credits.EarlyReturnPercent == 0 {
		c.Credits.EarlyReturnPercent = 0.10
	}
	if c.Credits.EarlyReturnMultiplier == 0 {
		c.Credits.EarlyReturnMultiplier = 5
	}
	if c.Credits.CleanReturnBonus == 0 {
		c.Credits.CleanReturnBonus = 20
	}
	if c.Scheduler.MonthlyGrant == "" {
		// First day of each month at midnight UTC (with seconds field).
		c.Scheduler.MonthlyGrant = "0 0 0 1 * *"
	}
	if c.Scheduler.MembershipLevel == "" {
		c.Scheduler.MembershipLevel = "Basic"
	}
}
