// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"rsc.io/jsrf/jsast"
)

// Sentinel validation errors.
var (
	ErrInvalidIndent   = errors.New("indent must be non-empty blanks")
	ErrInvalidLanguage = errors.New("unsupported language")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

const defaultLogLevel = "info"

// Config holds the settings of a refactoring run.
type Config struct {
	// Indent is one level of indentation in rewritten code.
	Indent string `mapstructure:"indent"`

	// Language forces the grammar used for every file.
	// If empty, it is chosen by file extension.
	Language string `mapstructure:"language"`

	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the configuration used when no file or
// environment variable says otherwise.
func DefaultConfig() *Config {
	return &Config{
		Indent:  jsast.DefaultIndent,
		Logging: LoggingConfig{Level: defaultLogLevel},
	}
}

// LoadConfig loads configuration from file and environment variables.
// With an empty configPath it looks for .jsrf.yaml in the current
// directory and then in $HOME; not finding one is not an error.
// Environment variables are JSRF_INDENT, JSRF_LANGUAGE and
// JSRF_LOGGING_LEVEL.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("indent", def.Indent)
	v.SetDefault("language", def.Language)
	v.SetDefault("logging.level", def.Logging.Level)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".jsrf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("JSRF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for values no run could use.
func (c *Config) Validate() error {
	if c.Indent == "" || strings.Trim(c.Indent, " \t") != "" {
		return fmt.Errorf("%w: %q", ErrInvalidIndent, c.Indent)
	}
	if c.Language != "" && !jsast.IsLanguage(c.Language) {
		return fmt.Errorf("%w %q (want one of %s)", ErrInvalidLanguage, c.Language, strings.Join(jsast.Languages(), ", "))
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the configured level of the structured log.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return level, nil
}

// languageFor returns the grammar to use for the named file.
func (c *Config) languageFor(name string) (string, error) {
	if c.Language != "" {
		return c.Language, nil
	}
	if lang := jsast.LanguageFor(name); lang != "" {
		return lang, nil
	}
	return "", fmt.Errorf("%w for %s", jsast.ErrUnknownLanguage, name)
}
