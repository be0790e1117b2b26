// Package config loads primepatterns settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/comalice/primepatterns/internal/core"
	"github.com/comalice/primepatterns/internal/production"
)

// Config holds all primepatterns configuration.
type Config struct {
	// Limit is the default upper bound for gap analysis and prime listing.
	Limit int `yaml:"limit"`

	Sieve     SieveConfig     `yaml:"sieve"`
	Density   DensityConfig   `yaml:"density"`
	Histogram HistogramConfig `yaml:"histogram"`
	Report    ReportConfig    `yaml:"report"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SieveConfig bounds sieve memory.
type SieveConfig struct {
	MaxLimit int `yaml:"max_limit"`
}

// DensityConfig configures the density experiment.
type DensityConfig struct {
	Limits  []int `yaml:"limits"`
	Workers int   `yaml:"workers"` // 1 = sequential
}

// HistogramConfig configures gap histogram binning.
type HistogramConfig struct {
	Bins int `yaml:"bins"`
}

// ReportConfig configures result output.
type ReportConfig struct {
	Summary bool   `yaml:"summary"`
	Format  string `yaml:"format"` // text, json, yaml
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Limit: 1_000_000,
		Sieve: SieveConfig{
			MaxLimit: core.DefaultMaxLimit,
		},
		Density: DensityConfig{
			Limits:  slices.Clone(core.DefaultDensityLimits),
			Workers: 1,
		},
		Histogram: HistogramConfig{
			Bins: production.DefaultHistogramBins,
		},
		Report: ReportConfig{
			Summary: true,
			Format:  string(production.FormatText),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PRIMEPATTERNS_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PRIMEPATTERNS_LIMIT: %w", err)
		}
		c.Limit = n
	}
	if v := os.Getenv("PRIMEPATTERNS_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PRIMEPATTERNS_WORKERS: %w", err)
		}
		c.Density.Workers = n
	}
	if v := os.Getenv("PRIMEPATTERNS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PRIMEPATTERNS_FORMAT"); v != "" {
		c.Report.Format = v
	}
	return nil
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must be >= 0, got %d", c.Limit)
	}
	if c.Sieve.MaxLimit <= 0 {
		return fmt.Errorf("sieve.max_limit must be > 0, got %d", c.Sieve.MaxLimit)
	}
	for i, l := range c.Density.Limits {
		if l < 2 {
			return fmt.Errorf("density.limits[%d] must be >= 2, got %d", i, l)
		}
	}
	if c.Density.Workers < 1 {
		return fmt.Errorf("density.workers must be >= 1, got %d", c.Density.Workers)
	}
	if c.Histogram.Bins < 1 {
		return fmt.Errorf("histogram.bins must be >= 1, got %d", c.Histogram.Bins)
	}
	if _, err := production.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}
	if !slices.Contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	return nil
}

// EngineOptions translates the configuration into core.Engine options.
func (c *Config) EngineOptions() []core.Option {
	return []core.Option{
		core.WithMaxLimit(c.Sieve.MaxLimit),
		core.WithWorkers(c.Density.Workers),
		core.WithSummary(c.Report.Summary),
	}
}
