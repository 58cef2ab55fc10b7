// Package exporter writes the extracted count tables to disk.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with directory creation and an
// optional UTF-8 BOM for Excel compatibility.
//
// TableExporter: Converts the typed tables (species counts, participants,
// effort, weather) into their fixed CSV layouts.
//
// WorkbookExporter: Writes all four tables into one .xlsx review workbook,
// one sheet per table.
//
// Example usage:
//
//	// Export the species counts table
//	tables := exporter.NewTableExporter(logger)
//	err := tables.ExportCounts(countsTable, "data/capc/CAPC_1972_2025.csv")
//
//	// Write the optional review workbook
//	workbook := exporter.NewWorkbookExporter(logger)
//	err = workbook.Export("data/capc/CAPC_review.xlsx", countsTable, pe, weather)
package exporter
