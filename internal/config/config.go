package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the complete run configuration.
// Values resolve in three layers: built-in defaults, then CBC_* environment
// variables, then command line flags (bound by the CLI on top of the loaded
// config).
type Config struct {
	// Input is the .xls export downloaded from the CBC website.
	Input string `envconfig:"INPUT" validate:"required"`

	// Sheet selects the worksheet by zero-based index when numeric or empty,
	// otherwise by name.
	Sheet string `envconfig:"SHEET"`

	// StopSpecies is the last species row kept in the counts table; rows
	// past it are export artefacts.
	StopSpecies string `envconfig:"STOP_SPECIES" default:"House Sparrow"`

	// CountsOutput overrides the derived counts path. When empty the
	// filename is built from the observed year range, e.g. CAPC_1972_2025.csv.
	CountsOutput string `envconfig:"COUNTS_OUTPUT"`

	ParticipantsOutput string `envconfig:"PARTICIPANTS_OUTPUT" validate:"required"`
	EffortOutput       string `envconfig:"EFFORT_OUTPUT" validate:"required"`
	WeatherOutput      string `envconfig:"WEATHER_OUTPUT" validate:"required"`

	// WorkbookOutput, when set, additionally writes the four tables as
	// sheets of a single .xlsx review workbook.
	WorkbookOutput string `envconfig:"WORKBOOK_OUTPUT"`

	Logging LoggingConfig `envconfig:"LOG"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	File   string `envconfig:"FILE"`
}

// Load builds the configuration from environment variables and the built-in
// executable-relative defaults. Flag overrides and validation happen in the
// CLI after the flags are bound.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CBC", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	paths, err := GetPaths()
	if err != nil {
		return nil, err
	}

	// Fill the defaults that depend on the executable location.
	if cfg.Input == "" {
		cfg.Input = paths.InputFile
	}
	if cfg.ParticipantsOutput == "" {
		cfg.ParticipantsOutput = paths.ParticipantsCSV
	}
	if cfg.EffortOutput == "" {
		cfg.EffortOutput = paths.EffortCSV
	}
	if cfg.WeatherOutput == "" {
		cfg.WeatherOutput = paths.WeatherCSV
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = paths.LogFile
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks the assembled configuration, including flag overrides.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
