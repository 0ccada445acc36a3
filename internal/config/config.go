// Package config loads engine configuration from YAML, following the teacher's
// DefaultConfig()+Load(path) idiom (config.go), narrowed to what an embeddable rule engine needs
// (spec §10.2): fact limits, query timeouts, selector seeding, and nested logging config.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds engine-wide configuration.
type Config struct {
	FactLimit    int           `yaml:"fact_limit"`
	QueryTimeout string        `yaml:"query_timeout"`
	SelectorSeed int64         `yaml:"selector_seed"`
	Logging      LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger (spec §10.1).
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// DefaultConfig returns the engine's out-of-the-box configuration.
func DefaultConfig() *Config {
	return &Config{
		FactLimit:    1000000,
		QueryTimeout: "30s",
		SelectorSeed: 0,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a YAML file, falling back to defaults if path doesn't exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: failed to marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}

// GetQueryTimeout parses QueryTimeout, falling back to 30s on a malformed value.
func (c *Config) GetQueryTimeout() time.Duration {
	d, err := time.ParseDuration(c.QueryTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
