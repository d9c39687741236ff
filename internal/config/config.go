package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Report output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel is the minimum level written by the logger
	LogLevel string `env:"LOG_LEVEL" env-default:"warn" yaml:"logLevel"`

	// Seed describes where the catalog contents are loaded from
	Seed struct {
		// Path is the YAML seed document loaded into the catalog
		Path string `env:"SEED_PATH" env-default:"seed.yml" yaml:"path"`
	} `yaml:"seed"`

	// Report contains settings of the report command
	Report struct {
		// Format is either "text" or "json"
		Format string `env:"REPORT_FORMAT" env-default:"text" yaml:"format"`
		// Metrics appends catalog counters to the report
		Metrics bool `env:"REPORT_METRICS" env-default:"false" yaml:"metrics"`
	} `yaml:"report"`
}

// Load reads the yaml config file at configPath, applies environment
// overrides and validates the result.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnv builds the configuration from environment variables and defaults
// only. It is used when no config file exists.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values cleanenv cannot check on its own.
func (c *Config) Validate() error {
	switch c.Report.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown report format %q", c.Report.Format)
	}

	return nil
}
