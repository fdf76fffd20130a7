// Package config loads the command line settings from an optional file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatLog  = "log"
)

// Formats lists the accepted values of Config.Format.
var Formats = []string{FormatText, FormatYAML, FormatLog}

// Config controls how results are printed and logged.
type Config struct {
	// Format selects the printer: text, yaml or log.
	Format string `mapstructure:"format" yaml:"format"`
	// LogLevel is a zap level name.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// Color enables colored level names in log output.
	Color bool `mapstructure:"color" yaml:"color"`
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() Config {
	return Config{
		Format:   FormatText,
		LogLevel: "info",
		Color:    false,
	}
}

// envBindings maps config keys to the environment variables that can set them.
var envBindings = map[string]string{
	"format":    "TYPEPROBE_FORMAT",
	"log_level": "TYPEPROBE_LOG_LEVEL",
	"color":     "TYPEPROBE_COLOR",
}

// Load reads the config file at path when it exists, then lets environment
// variables override it. An empty path means environment and defaults only.
func Load(path string) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("format", defaults.Format)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("color", defaults.Color)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
			v.SetConfigFile(path)

			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the format and log level names.
func (c Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unknown format %q, expected one of %v", c.Format, Formats)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("invalid log level: %w", err)
	}

	return lvl, nil
}
