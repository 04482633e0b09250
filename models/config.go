package models

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// AnalyzeConfig holds runtime configuration for analysis runs.
// Precedence: built-in defaults, then an optional YAML file, then
// DOMLENS_* environment variables. CLI flags override all of these.
type AnalyzeConfig struct {
	FetchCount     int    `yaml:"fetch_count" envconfig:"FETCH_COUNT"`
	TimeoutSeconds int    `yaml:"timeout_seconds" envconfig:"TIMEOUT_SECONDS"`
	RetryMax       int    `yaml:"retry_max" envconfig:"RETRY_MAX"`
	UserAgent      string `yaml:"user_agent" envconfig:"USER_AGENT"`
	MaxBodyBytes   int64  `yaml:"max_body_bytes" envconfig:"MAX_BODY_BYTES"`
	DatabasePath   string `yaml:"database_path" envconfig:"DATABASE_PATH"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() AnalyzeConfig {
	return AnalyzeConfig{
		FetchCount:     3,
		TimeoutSeconds: 15,
		RetryMax:       2,
		UserAgent:      "domlens/1.0 (+https://github.com/domlens/domlens)",
		MaxBodyBytes:   10 << 20,
	}
}

// LoadConfig layers the optional YAML file at path and the environment on
// top of the defaults. An empty path or a missing file is not an error.
func LoadConfig(path string) (AnalyzeConfig, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return config, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process("domlens", &config); err != nil {
		return config, fmt.Errorf("failed to read environment config: %w", err)
	}

	return config, nil
}
