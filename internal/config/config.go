// Package config loads the polymer tool configuration from YAML with
// environment-variable overrides and deterministic defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polymer/reduce"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Runner  RunnerConfig  `yaml:"runner"`
}

// EngineConfig selects the reducer and the scan parallelism.
type EngineConfig struct {
	Strategy string `yaml:"strategy"`
	Workers  int    `yaml:"workers"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls how `polymer run` exposes its metrics.
// Enabled keeps a /metrics listener on Addr up after the run until the
// process is interrupted; PushURL sends the metrics to a Pushgateway under Job
// once the run is done.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	PushURL string `yaml:"push_url"`
	Job     string `yaml:"job"`
}

// RunnerConfig lists the solutions `polymer run` executes by default.
type RunnerConfig struct {
	Solutions []string `yaml:"solutions"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads path (if non-empty), applies defaults and env overrides, and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	applyDefaults(cfg)
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if _, err := reduce.ParseStrategy(c.Engine.Strategy); err != nil {
		return fmt.Errorf("%w: engine.strategy: %v", ErrInvalidConfig, err)
	}
	if c.Engine.Workers < 1 {
		return fmt.Errorf("%w: engine.workers must be positive, got %d", ErrInvalidConfig, c.Engine.Workers)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q (want text or json)", ErrInvalidConfig, c.Logging.Format)
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("%w: metrics.addr is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}

// StrategyValue returns the parsed engine strategy.
func (c *Config) StrategyValue() reduce.Strategy {
	s, _ := reduce.ParseStrategy(c.Engine.Strategy)
	return s
}

func applyDefaults(cfg *Config) {
	if cfg.Engine.Strategy == "" {
		cfg.Engine.Strategy = reduce.StackStrategy.String()
	}
	if cfg.Engine.Workers == 0 {
		cfg.Engine.Workers = 1
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = ":9090"
	}
	if cfg.Metrics.Job == "" {
		cfg.Metrics.Job = "polymer"
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("POLYMER_STRATEGY"); v != "" {
		cfg.Engine.Strategy = v
	}
	if v := os.Getenv("POLYMER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: POLYMER_WORKERS=%q: %v", ErrInvalidConfig, v, err)
		}
		cfg.Engine.Workers = n
	}
	if v := os.Getenv("POLYMER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("POLYMER_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv("POLYMER_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
		cfg.Metrics.Enabled = true
	}
	if v := os.Getenv("POLYMER_METRICS_PUSH_URL"); v != "" {
		cfg.Metrics.PushURL = v
	}
	return nil
}
