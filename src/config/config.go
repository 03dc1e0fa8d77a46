// Package config holds process configuration, layered from defaults, an
// optional YAML file, and INSIGHTS_-prefixed environment variables.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// TableName is the DynamoDB table holding daily insight records.
	TableName string `koanf:"table_name"`

	// Region is the AWS region for the DynamoDB client.
	Region string `koanf:"region"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// TimeoutMS bounds each individual store call.
	TimeoutMS int `koanf:"timeout_ms"`
}

// New returns the defaults every deployment starts from.
func New() *Config {
	return &Config{
		TableName: "DailyInsights",
		Region:    "eu-west-1",
		LogLevel:  "info",
		TimeoutMS: 2000,
	}
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if INSIGHTS_CONFIG is set
//  3. env (prefix INSIGHTS_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("INSIGHTS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// INSIGHTS_TABLE_NAME -> table_name, underscores preserved to match
	// the koanf tags on the struct.
	envProvider := env.Provider("INSIGHTS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "insights_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.TableName == "" {
		return nil, errors.New("table_name must not be empty")
	}
	if cfg.TimeoutMS <= 0 {
		return nil, errors.New("timeout_ms must be positive")
	}

	return &cfg, nil
}

// Timeout returns TimeoutMS as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
