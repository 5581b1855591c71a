package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults mirror the command-line defaults.
const (
	DefaultEngine = "bazel"
	DefaultLimit  = 2000
	DefaultDepth  = 2
)

// Config holds tool-wide settings read from an optional .srcctx.json in the
// working directory or the home directory. Every field can be overridden
// per run by the corresponding flag.
type Config struct {
	Engine      string `mapstructure:"engine"`
	Limit       int    `mapstructure:"limit"`
	Depth       int    `mapstructure:"depth"`
	FilterByExt bool   `mapstructure:"filterByExt"`
	LogLevel    string `mapstructure:"logLevel"`
}

func Default() *Config {
	return &Config{
		Engine:      DefaultEngine,
		Limit:       DefaultLimit,
		Depth:       DefaultDepth,
		FilterByExt: true,
		LogLevel:    "warn",
	}
}

// Load reads .srcctx.json from dir, then $HOME, falling back to defaults
// when no config file exists.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".srcctx")
	v.SetConfigType("json")
	v.AddConfigPath(dir)
	v.AddConfigPath("$HOME")

	v.SetDefault("engine", DefaultEngine)
	v.SetDefault("limit", DefaultLimit)
	v.SetDefault("depth", DefaultDepth)
	v.SetDefault("filterByExt", true)
	v.SetDefault("logLevel", "warn")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Engine == "" {
		return fmt.Errorf("config: engine must not be empty")
	}
	if c.Limit <= 0 {
		return fmt.Errorf("config: limit must be positive, got %d", c.Limit)
	}
	if c.Depth <= 0 {
		return fmt.Errorf("config: depth must be positive, got %d", c.Depth)
	}
	return nil
}
