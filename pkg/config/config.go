// Package config loads and validates application configuration from YAML files
// with environment-variable overrides. Command-line flags are applied on top
// by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/Adithya-Monish-Kumar-K/wordindex/pkg/errors"
)

// Config is the top-level application configuration.
type Config struct {
	Indexer IndexerConfig `yaml:"indexer"`
	Search  SearchConfig  `yaml:"search"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// IndexerConfig controls how documents are discovered and parsed.
type IndexerConfig struct {
	Workers    int      `yaml:"workers"`
	Extensions []string `yaml:"extensions"`
}

// SearchConfig selects the search mode for the whole run.
type SearchConfig struct {
	Exact bool `yaml:"exact"`
}

// OutputConfig holds default output paths and JSON formatting.
type OutputConfig struct {
	IndexPath   string `yaml:"indexPath"`
	ResultsPath string `yaml:"resultsPath"`
	Indent      string `yaml:"indent"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Enabled      bool   `yaml:"enabled"`
	TextfilePath string `yaml:"textfilePath"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later in the run.
func (c *Config) Validate() error {
	if c.Indexer.Workers < 1 {
		return apperrors.Newf(apperrors.ErrInvalidInput, "indexer.workers must be at least 1, got %d", c.Indexer.Workers)
	}
	if len(c.Indexer.Extensions) == 0 {
		return apperrors.New(apperrors.ErrInvalidInput, "indexer.extensions must not be empty")
	}
	if c.Metrics.Enabled && c.Metrics.TextfilePath == "" {
		return apperrors.New(apperrors.ErrInvalidInput, "metrics.textfilePath is required when metrics are enabled")
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Indexer: IndexerConfig{
			Workers:    4,
			Extensions: []string{".html", ".htm"},
		},
		Output: OutputConfig{
			IndexPath:   "index.json",
			ResultsPath: "results.json",
			Indent:      "\t",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnvOverrides reads WI_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WI_INDEXER_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Indexer.Workers = n
		}
	}
	if v := os.Getenv("WI_INDEXER_EXTENSIONS"); v != "" {
		cfg.Indexer.Extensions = strings.Split(v, ",")
	}
	if v := os.Getenv("WI_SEARCH_EXACT"); v != "" {
		if exact, err := strconv.ParseBool(v); err == nil {
			cfg.Search.Exact = exact
		}
	}
	if v := os.Getenv("WI_OUTPUT_INDEX_PATH"); v != "" {
		cfg.Output.IndexPath = v
	}
	if v := os.Getenv("WI_OUTPUT_RESULTS_PATH"); v != "" {
		cfg.Output.ResultsPath = v
	}
	if v := os.Getenv("WI_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("WI_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("WI_METRICS_TEXTFILE_PATH"); v != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.TextfilePath = v
	}
}
