package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/ecoquest/internal/stats"
)

// Config holds runtime settings for the ecoquest CLI.
type Config struct {
	DBPath       string
	CatalogPath  string
	TrendDays    int
	StreakPolicy stats.StreakPolicy
	LogUseCases  bool
}

// DefaultConfig returns the settings used when no environment overrides are
// present. DBPath is left empty when the home directory cannot be resolved.
func DefaultConfig() Config {
	cfg := Config{
		TrendDays:    stats.DefaultTrendWindow,
		StreakPolicy: stats.SkipFailedDays,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".ecoquest", "ecoquest.db")
		cfg.CatalogPath = filepath.Join(home, ".ecoquest", "catalog.yaml")
	}
	return cfg
}

// Load reads ECOQUEST_* environment variables over DefaultConfig.
// Invalid values are ignored.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ECOQUEST_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ECOQUEST_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("ECOQUEST_TREND_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= stats.MaxTrendWindow {
			cfg.TrendDays = n
		}
	}
	if v := os.Getenv("ECOQUEST_STREAK_POLICY"); v != "" {
		if p, err := stats.ParseStreakPolicy(v); err == nil {
			cfg.StreakPolicy = p
		}
	}
	if v := os.Getenv("ECOQUEST_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}
