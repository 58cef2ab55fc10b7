// Package extract reads the legacy Christmas Bird Count website export
// (a binary .xls workbook) and turns its loosely structured report sheet
// into clean, typed tables.
//
// # Architecture
//
// The package is organized around a shared grid model and four extraction
// routines:
//
// 1. Grid: a dense, row-major snapshot of one worksheet (missing cells are "")
// 2. Locators: find the species header row and the labeled summary blocks
// 3. Normalizers: turn raw cell text into counts, temperatures, and clean text
// 4. Extractors: counts, participants/effort, weather, and header metadata
//
// # Usage
//
// Extract the species-by-year count matrix:
//
//	table, err := extract.ExtractCounts(path, "", "House Sparrow")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Backfill weather rows with year and count date information:
//
//	weather, _ := extract.ExtractWeather(path, "")
//	pe, _ := extract.ExtractParticipantsEffort(path, "")
//	meta, _ := extract.ExtractHeaderMetadata(path, "")
//	joined := extract.JoinWeather(weather, pe, meta)
//
// # Data Flow
//
// The typical data flow through this package:
//
//	.xls workbook → Grid → Locators → Normalizers → typed table rows
//
// Each extraction routine performs its own full load of the workbook; there
// is no shared state between routines.
//
// # Error Handling
//
// Structural problems (unreadable workbook, missing header anchors, missing
// required labels) are returned as wrapped errors built on the package
// sentinels. Cell content is never an error: unparseable counts become 0,
// unparseable numerics become nil, and the run continues.
package extract
