// Package config loads the runtime settings of the lvlcentrality CLI from
// defaults, an optional config file, LVLCENTRALITY_* environment variables
// and bound command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlcentrality/betweenness"
	"github.com/katalvlaran/lvlcentrality/core"
)

// EnvPrefix is prepended to every environment override, e.g.
// LVLCENTRALITY_NORMALIZE=true.
const EnvPrefix = "LVLCENTRALITY"

// Configuration keys.
const (
	KeyDirected  = "directed"
	KeyNormalize = "normalize"
	KeyTopK      = "top_k"
	KeyStrategy  = "strategy"
	KeyCost      = "cost"
	KeyWorkers   = "workers"
	KeyLogLevel  = "log_level"
)

// ErrInvalidConfig wraps every validation failure reported by Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all runtime settings of one CLI invocation.
type Config struct {
	Directed  bool   `mapstructure:"directed"`
	Normalize bool   `mapstructure:"normalize"`
	TopK      int    `mapstructure:"top_k"`
	Strategy  string `mapstructure:"strategy"`
	Cost      string `mapstructure:"cost"`
	Workers   int    `mapstructure:"workers"`
	LogLevel  string `mapstructure:"log_level"`
}

// New returns a viper instance with defaults and environment binding in
// place. Callers bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyDirected, false)
	v.SetDefault(KeyNormalize, false)
	v.SetDefault(KeyTopK, 10)
	v.SetDefault(KeyStrategy, "auto")
	v.SetDefault(KeyCost, "inverse")
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads cfgFile (if non-empty) into v, unmarshals and validates.
// The file format follows its extension (yaml, json, toml).
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every enumerated and numeric setting.
// Workers == 0 resolves to GOMAXPROCS.
func (c *Config) Validate() error {
	if _, err := betweenness.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, KeyStrategy, c.Strategy)
	}
	if _, err := core.ParseCostMode(c.Cost); err != nil {
		return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, KeyCost, c.Cost)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, KeyLogLevel, c.LogLevel)
	}
	switch {
	case c.Workers < 0:
		return fmt.Errorf("%w: %s=%d must be >= 0", ErrInvalidConfig, KeyWorkers, c.Workers)
	case c.Workers == 0:
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.TopK < 0 {
		return fmt.Errorf("%w: %s=%d must be >= 0", ErrInvalidConfig, KeyTopK, c.TopK)
	}

	return nil
}

// Level returns the parsed log level; Validate has already accepted it.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// CostMode returns the parsed weight interpretation.
func (c *Config) CostMode() core.CostMode {
	m, _ := core.ParseCostMode(c.Cost)
	return m
}

// ComputeOptions translates the settings into betweenness options.
func (c *Config) ComputeOptions() []betweenness.Option {
	s, _ := betweenness.ParseStrategy(c.Strategy)
	return []betweenness.Option{
		betweenness.WithDirected(c.Directed),
		betweenness.WithNormalize(c.Normalize),
		betweenness.WithStrategy(s),
		betweenness.WithWorkers(max(c.Workers, 1)),
	}
}
