// Package main provides the CLI entry point for cbc-historic.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hydrospheric0/cbc-historic/internal/config"
	"github.com/hydrospheric0/cbc-historic/internal/exporter"
	"github.com/hydrospheric0/cbc-historic/internal/extract"
	"github.com/hydrospheric0/cbc-historic/internal/infrastructure"
	"github.com/hydrospheric0/cbc-historic/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	rootCmd := newRootCommand(cfg)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Extract Christmas Bird Count tables from a legacy .xls export",
		Long: `cbc-historic reads the "Historical Results by Count" .xls workbook
published for a count circle and writes four analysis-ready CSV tables:
species counts by year, participants, effort, and weather.

Options resolve in three layers: executable-relative defaults, CBC_*
environment variables, then flags.`,
		Version:      config.AppVersion,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Input, "input", cfg.Input, "path to the historical results .xls workbook")
	cmd.Flags().StringVar(&cfg.Sheet, "sheet", cfg.Sheet, "worksheet index or name (empty: first sheet)")
	cmd.Flags().StringVar(&cfg.StopSpecies, "stop-species", cfg.StopSpecies, "last species row kept in the counts table")
	cmd.Flags().StringVar(&cfg.CountsOutput, "counts-output", cfg.CountsOutput, "counts CSV path (empty: derived "+config.CirclePrefix+"_<first>_<last>.csv)")
	cmd.Flags().StringVar(&cfg.ParticipantsOutput, "participants-output", cfg.ParticipantsOutput, "participants CSV path")
	cmd.Flags().StringVar(&cfg.EffortOutput, "effort-output", cfg.EffortOutput, "effort CSV path")
	cmd.Flags().StringVar(&cfg.WeatherOutput, "weather-output", cfg.WeatherOutput, "weather CSV path")
	cmd.Flags().StringVar(&cfg.WorkbookOutput, "workbook-output", cfg.WorkbookOutput, "optional .xlsx path for all four tables as one workbook")
	cmd.Flags().StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level: debug, info, warn or error")

	return cmd
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger.InfoContext(ctx, "Starting extraction",
		slog.String("input", cfg.Input),
		slog.String("sheet", cfg.Sheet),
		slog.String("stop_species", cfg.StopSpecies))

	validator := validation.NewFileValidator(infrastructure.WithComponent(logger, "validation"))
	if err := validator.ValidateWorkbookFile(cfg.Input); err != nil {
		return err
	}
	outputs := []string{
		cfg.CountsOutput,
		cfg.ParticipantsOutput,
		cfg.EffortOutput,
		cfg.WeatherOutput,
		cfg.WorkbookOutput,
	}
	for _, out := range outputs {
		if err := validator.ValidateOutputPath(out); err != nil {
			return err
		}
	}

	counts, err := extract.ExtractCounts(cfg.Input, cfg.Sheet, cfg.StopSpecies)
	if err != nil {
		return fmt.Errorf("species counts: %w", err)
	}
	logger.InfoContext(ctx, "Extracted species counts",
		slog.Int("species", len(counts.Rows)),
		slog.Int("years", len(counts.Years)))

	countsPath := cfg.CountsOutput
	firstYear, lastYear := yearRange(counts.Years)
	if countsPath == "" {
		paths, err := config.GetPaths()
		if err != nil {
			return fmt.Errorf("resolve output paths: %w", err)
		}
		if err := paths.EnsureDirectories(); err != nil {
			return fmt.Errorf("create output directories: %w", err)
		}
		countsPath = paths.CountsCSV(firstYear, lastYear)
	}

	pe, err := extract.ExtractParticipantsEffort(cfg.Input, cfg.Sheet)
	if err != nil {
		return fmt.Errorf("participants/effort: %w", err)
	}
	logger.InfoContext(ctx, "Extracted participants/effort", slog.Int("rows", len(pe)))

	weather, err := extract.ExtractWeather(cfg.Input, cfg.Sheet)
	if err != nil {
		return fmt.Errorf("weather: %w", err)
	}
	logger.InfoContext(ctx, "Extracted weather", slog.Int("rows", len(weather)))

	meta, err := extract.ExtractHeaderMetadata(cfg.Input, cfg.Sheet)
	if err != nil {
		return fmt.Errorf("header metadata: %w", err)
	}
	logger.InfoContext(ctx, "Extracted header metadata", slog.Int("rows", len(meta)))

	joined := extract.JoinWeather(weather, pe, meta)

	tables := exporter.NewTableExporter(infrastructure.WithComponent(logger, "exporter"))

	if err := tables.ExportCounts(counts, countsPath); err != nil {
		return err
	}
	fmt.Println(countsSummaryLine(countsPath, len(counts.Rows), len(counts.Years)+1, firstYear, lastYear))

	if err := tables.ExportParticipants(pe, cfg.ParticipantsOutput); err != nil {
		return err
	}
	fmt.Println(summaryLine(cfg.ParticipantsOutput, len(pe), 4))

	if err := tables.ExportEffort(pe, cfg.EffortOutput); err != nil {
		return err
	}
	fmt.Println(summaryLine(cfg.EffortOutput, len(pe), 4))

	if err := tables.ExportWeather(joined, cfg.WeatherOutput); err != nil {
		return err
	}
	fmt.Println(summaryLine(cfg.WeatherOutput, len(joined), 11))

	if cfg.WorkbookOutput != "" {
		workbook := exporter.NewWorkbookExporter(infrastructure.WithComponent(logger, "exporter"))
		if err := workbook.Export(cfg.WorkbookOutput, counts, pe, joined); err != nil {
			return fmt.Errorf("workbook export: %w", err)
		}
		fmt.Printf("Wrote %s (4 sheets)\n", cfg.WorkbookOutput)
	}

	logger.InfoContext(ctx, "Extraction complete",
		slog.Int("species", len(counts.Rows)),
		slog.Int("counts_years", len(counts.Years)),
		slog.Int("participants_rows", len(pe)),
		slog.Int("weather_rows", len(joined)))
	return nil
}

// yearRange returns the smallest and largest year in the slice. Callers only
// reach this after year column resolution, which guarantees at least one year.
func yearRange(years []int) (first, last int) {
	first, last = years[0], years[0]
	for _, y := range years[1:] {
		if y < first {
			first = y
		}
		if y > last {
			last = y
		}
	}
	return first, last
}

func summaryLine(path string, rows, cols int) string {
	return fmt.Sprintf("Wrote %s (%d rows, %d cols)", path, rows, cols)
}

func countsSummaryLine(path string, rows, cols, firstYear, lastYear int) string {
	return fmt.Sprintf("Wrote %s (%d rows, %d cols; years %d-%d)", path, rows, cols, firstYear, lastYear)
}
