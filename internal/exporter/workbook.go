package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/hydrospheric0/cbc-historic/internal/extract"
)

// Sheet names of the review workbook.
const (
	SheetSpeciesCounts = "Species Counts"
	SheetParticipants  = "Participants"
	SheetEffort        = "Effort"
	SheetWeather       = "Weather"
)

// WorkbookExporter writes all four extracted tables into a single .xlsx
// workbook, one sheet per table. The workbook mirrors the CSV outputs and is
// meant for manual review in a spreadsheet application.
type WorkbookExporter struct {
	logger *slog.Logger
}

// NewWorkbookExporter creates a new workbook exporter
func NewWorkbookExporter(logger *slog.Logger) *WorkbookExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookExporter{logger: logger}
}

// Export writes the review workbook to outputPath.
func (e *WorkbookExporter) Export(
	outputPath string,
	counts *extract.SpeciesTable,
	pe []extract.ParticipantsEffortRow,
	weather []extract.WeatherRow,
) error {
	e.logger.Info("Writing review workbook",
		slog.String("file_path", outputPath))

	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeCountsSheet(f, counts); err != nil {
		return err
	}
	if err := e.writeParticipantsSheet(f, pe); err != nil {
		return err
	}
	if err := e.writeEffortSheet(f, pe); err != nil {
		return err
	}
	if err := e.writeWeatherSheet(f, weather); err != nil {
		return err
	}

	// Drop the default sheet and land on the counts sheet when opened.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex(SheetSpeciesCounts)
	if err != nil {
		return fmt.Errorf("failed to look up counts sheet: %w", err)
	}
	f.SetActiveSheet(idx)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (e *WorkbookExporter) writeCountsSheet(f *excelize.File, counts *extract.SpeciesTable) error {
	header := make([]interface{}, 0, len(counts.Years)+1)
	header = append(header, "Species")
	for _, year := range counts.Years {
		header = append(header, year)
	}
	rows := make([][]interface{}, 0, len(counts.Rows))
	for _, row := range counts.Rows {
		line := make([]interface{}, 0, len(row.Counts)+1)
		line = append(line, row.Name)
		for _, count := range row.Counts {
			line = append(line, count)
		}
		rows = append(rows, line)
	}
	return writeSheet(f, SheetSpeciesCounts, header, rows)
}

func (e *WorkbookExporter) writeParticipantsSheet(f *excelize.File, pe []extract.ParticipantsEffortRow) error {
	header := headerCells(participantsHeaders)
	rows := make([][]interface{}, 0, len(pe))
	for _, row := range pe {
		rows = append(rows, []interface{}{
			optionalIntCell(row.Year),
			row.CountDate,
			row.CountIndex,
			optionalIntCell(row.NumParticipants),
		})
	}
	return writeSheet(f, SheetParticipants, header, rows)
}

func (e *WorkbookExporter) writeEffortSheet(f *excelize.File, pe []extract.ParticipantsEffortRow) error {
	header := headerCells(effortHeaders)
	rows := make([][]interface{}, 0, len(pe))
	for _, row := range pe {
		rows = append(rows, []interface{}{
			optionalIntCell(row.Year),
			row.CountDate,
			row.CountIndex,
			optionalFloatCell(row.NumHours),
		})
	}
	return writeSheet(f, SheetEffort, header, rows)
}

func (e *WorkbookExporter) writeWeatherSheet(f *excelize.File, weather []extract.WeatherRow) error {
	header := headerCells(weatherHeaders)
	rows := make([][]interface{}, 0, len(weather))
	for _, row := range weather {
		rows = append(rows, []interface{}{
			optionalIntCell(row.Year),
			row.CountDate,
			row.CountIndex,
			optionalFloatCell(row.LowTempF),
			optionalFloatCell(row.HighTempF),
			row.AMClouds,
			row.PMClouds,
			row.AMRain,
			row.PMRain,
			row.AMSnow,
			row.PMSnow,
		})
	}
	return writeSheet(f, SheetWeather, header, rows)
}

// writeSheet creates the sheet and writes the header plus data rows.
func writeSheet(f *excelize.File, name string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of sheet %s: %w", name, err)
	}
	for i := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(name, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %s: %w", i+2, name, err)
		}
	}
	return nil
}

func headerCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

// optionalIntCell maps nil to an empty spreadsheet cell.
func optionalIntCell(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// optionalFloatCell maps nil to an empty spreadsheet cell.
func optionalFloatCell(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
