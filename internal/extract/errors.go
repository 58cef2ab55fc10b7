package extract

import "errors"

// Sentinel errors for structural failures. Callers match them with errors.Is;
// the wrapped message carries the file, sheet, or label involved.
var (
	// ErrHeaderNotFound means no cell in the sheet equals "Species".
	ErrHeaderNotFound = errors.New("species header row not found")

	// ErrNoYearColumns means the species header row has no year-labeled columns.
	ErrNoYearColumns = errors.New("no year columns in header row")

	// ErrLabelNotFound means a required summary-block label is absent.
	ErrLabelNotFound = errors.New("required label not found")

	// ErrSheetNotFound means the requested sheet index or name does not exist.
	ErrSheetNotFound = errors.New("sheet not found")
)
