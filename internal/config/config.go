// Package config holds the pager's runtime settings. Values come from
// command-line flags and PAGE_* environment variables; there are no config
// files.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kk-code-lab/page/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the pager reads,
// e.g. PAGE_ESCAPE_TIMEOUT for escape_timeout.
const EnvPrefix = "PAGE"

// Config represents the complete pager configuration
type Config struct {
	// EscapeTimeout is how long to wait after an Escape byte for the rest
	// of an arrow-key sequence before treating it as a lone Escape.
	EscapeTimeout time.Duration `mapstructure:"escape_timeout"`
	// LogFile receives JSON debug logs; empty disables logging.
	LogFile string `mapstructure:"log_file"`
	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		EscapeTimeout: 100 * time.Millisecond,
		LogFile:       "",
		LogLevel:      logging.LevelInfo,
	}
}

// SetDefaults registers the defaults on v so that env lookups and
// Unmarshal know every key.
func SetDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("escape_timeout", defaults.EscapeTimeout)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("log_level", defaults.LogLevel)
}

// BindEnv makes v consult PAGE_* environment variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.EscapeTimeout <= 0 {
		errs = append(errs, fmt.Errorf("escape_timeout must be positive, got %s", c.EscapeTimeout))
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	return errors.Join(errs...)
}
