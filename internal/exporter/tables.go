package exporter

import (
	"fmt"
	"log/slog"

	"github.com/hydrospheric0/cbc-historic/internal/extract"
)

// Column headers of the fixed-layout outputs.
var (
	participantsHeaders = []string{"Year", "CountDate", "CountIndex", "NumParticipants"}
	effortHeaders       = []string{"Year", "CountDate", "CountIndex", "NumHours"}
	weatherHeaders      = []string{
		"Year", "CountDate", "CountIndex",
		"LowTempF", "HighTempF",
		"AMClouds", "PMClouds", "AMRain", "PMRain", "AMSnow", "PMSnow",
	}
)

// TableExporter writes the extracted tables to their CSV files.
type TableExporter struct {
	csvWriter *CSVWriter
}

// NewTableExporter creates a new table exporter
func NewTableExporter(logger *slog.Logger) *TableExporter {
	return &TableExporter{
		csvWriter: NewCSVWriter(logger),
	}
}

// ExportCounts writes the species-by-year count matrix.
func (e *TableExporter) ExportCounts(table *extract.SpeciesTable, outputPath string) error {
	records := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, speciesRowToCSV(row))
	}
	if err := e.csvWriter.WriteSimpleCSV(outputPath, countsHeaders(table.Years), records); err != nil {
		return fmt.Errorf("failed to write counts table: %w", err)
	}
	return nil
}

// ExportParticipants writes the per-year participant totals.
func (e *TableExporter) ExportParticipants(rows []extract.ParticipantsEffortRow, outputPath string) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			formatOptionalInt(row.Year),
			row.CountDate,
			formatInt(row.CountIndex),
			formatOptionalInt(row.NumParticipants),
		})
	}
	if err := e.csvWriter.WriteSimpleCSV(outputPath, participantsHeaders, records); err != nil {
		return fmt.Errorf("failed to write participants table: %w", err)
	}
	return nil
}

// ExportEffort writes the per-year party-hour totals.
func (e *TableExporter) ExportEffort(rows []extract.ParticipantsEffortRow, outputPath string) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			formatOptionalInt(row.Year),
			row.CountDate,
			formatInt(row.CountIndex),
			formatOptionalFloat(row.NumHours),
		})
	}
	if err := e.csvWriter.WriteSimpleCSV(outputPath, effortHeaders, records); err != nil {
		return fmt.Errorf("failed to write effort table: %w", err)
	}
	return nil
}

// ExportWeather writes the per-year weather conditions.
func (e *TableExporter) ExportWeather(rows []extract.WeatherRow, outputPath string) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, weatherRowToCSV(row))
	}
	if err := e.csvWriter.WriteSimpleCSV(outputPath, weatherHeaders, records); err != nil {
		return fmt.Errorf("failed to write weather table: %w", err)
	}
	return nil
}

// countsHeaders builds the counts header row: Species, then one column per
// resolved year in sheet order.
func countsHeaders(years []int) []string {
	headers := make([]string, 0, len(years)+1)
	headers = append(headers, "Species")
	for _, year := range years {
		headers = append(headers, formatInt(year))
	}
	return headers
}

func speciesRowToCSV(row extract.SpeciesRow) []string {
	record := make([]string, 0, len(row.Counts)+1)
	record = append(record, row.Name)
	for _, count := range row.Counts {
		record = append(record, formatInt(count))
	}
	return record
}

func weatherRowToCSV(row extract.WeatherRow) []string {
	return []string{
		formatOptionalInt(row.Year),
		row.CountDate,
		formatInt(row.CountIndex),
		formatOptionalFloat(row.LowTempF),
		formatOptionalFloat(row.HighTempF),
		row.AMClouds,
		row.PMClouds,
		row.AMRain,
		row.PMRain,
		row.AMSnow,
		row.PMSnow,
	}
}
