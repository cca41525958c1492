package core

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the runtime settings for errdemo. There is no config file;
// every value comes from the defaults or the environment.
type Config struct {
	Log   LogConfig
	Color bool
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level     string
	File      string
	MaxSizeMB int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:     "warn",
			MaxSizeMB: 10,
		},
		Color: true,
	}
}

// LoadConfig returns the default configuration with environment variable
// overrides applied.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) error {
	if val, ok := os.LookupEnv("ERRDEMO_LOG_LEVEL"); ok && val != "" {
		cfg.Log.Level = val
	}

	if val, ok := os.LookupEnv("ERRDEMO_LOG_FILE"); ok {
		cfg.Log.File = val
	}

	if val, ok := os.LookupEnv("ERRDEMO_LOG_MAX_SIZE_MB"); ok && val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid ERRDEMO_LOG_MAX_SIZE_MB: %w", err)
		}
		if parsed <= 0 {
			return fmt.Errorf("invalid ERRDEMO_LOG_MAX_SIZE_MB: must be positive, got %d", parsed)
		}
		cfg.Log.MaxSizeMB = parsed
	}

	if !ColorAllowed() {
		cfg.Color = false
	}

	return nil
}

// ColorAllowed reports whether NO_COLOR is absent from the environment.
// Its presence disables colour regardless of value (https://no-color.org).
func ColorAllowed() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return !ok
}
