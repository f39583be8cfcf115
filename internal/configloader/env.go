package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/gocut/pkg/config"
)

// Environment variable names recognized by gocut.
const (
	envDelim = "GOCUT_DELIM"
	envJobs  = "GOCUT_JOBS"
	envStats = "GOCUT_STATS"
)

// LoadFromEnv applies environment variable overrides to the configuration.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if value := os.Getenv(envDelim); value != "" {
		cfg.Delimiter = value
	}

	if value := os.Getenv(envJobs); value != "" {
		jobs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envJobs, value)
		}
		cfg.Jobs = jobs
	}

	if value := os.Getenv(envStats); value != "" {
		stats, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envStats, value)
		}
		cfg.Stats = stats
	}

	return nil
}
