package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultStopSpecies, cfg.StopSpecies)
	assert.Equal(t, "", cfg.Sheet)
	assert.Equal(t, "", cfg.CountsOutput, "counts path is derived from the year range later")
	assert.Equal(t, "", cfg.WorkbookOutput)

	assert.Equal(t, DefaultInputFileName, filepath.Base(cfg.Input))
	assert.Equal(t, ParticipantsFileName, filepath.Base(cfg.ParticipantsOutput))
	assert.Equal(t, EffortFileName, filepath.Base(cfg.EffortOutput))
	assert.Equal(t, WeatherFileName, filepath.Base(cfg.WeatherOutput))

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, LogFileName, filepath.Base(cfg.Logging.File))
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CBC_INPUT", "/surveys/latest.xls")
	t.Setenv("CBC_STOP_SPECIES", "Snow Bunting")
	t.Setenv("CBC_SHEET", "Results")
	t.Setenv("CBC_WEATHER_OUTPUT", "/surveys/out/weather.csv")
	t.Setenv("CBC_LOG_LEVEL", "debug")
	t.Setenv("CBC_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/surveys/latest.xls", cfg.Input)
	assert.Equal(t, "Snow Bunting", cfg.StopSpecies)
	assert.Equal(t, "Results", cfg.Sheet)
	assert.Equal(t, "/surveys/out/weather.csv", cfg.WeatherOutput)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Untouched fields keep their executable-relative defaults.
	assert.Equal(t, ParticipantsFileName, filepath.Base(cfg.ParticipantsOutput))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Input:              "in.xls",
			StopSpecies:        "House Sparrow",
			ParticipantsOutput: "p.csv",
			EffortOutput:       "e.csv",
			WeatherOutput:      "w.csv",
			Logging:            LoggingConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing input", func(c *Config) { c.Input = "" }, "Input"},
		{"missing weather output", func(c *Config) { c.WeatherOutput = "" }, "WeatherOutput"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "Level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "Format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr),
				"error %q should mention %q", err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAllowsEmptySheetAndStopSpecies(t *testing.T) {
	cfg := &Config{
		Input:              "in.xls",
		ParticipantsOutput: "p.csv",
		EffortOutput:       "e.csv",
		WeatherOutput:      "w.csv",
		Logging:            LoggingConfig{Level: "warn", Format: "json"},
	}
	assert.NoError(t, cfg.Validate())
}
