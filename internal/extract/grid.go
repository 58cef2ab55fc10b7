package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/extrame/xls"
)

// Grid is a dense, row-major snapshot of one worksheet. Every row has the
// same width; cells that were missing in the workbook are "".
type Grid struct {
	cells [][]string
}

// NewGrid builds a Grid from raw rows, padding short rows so the grid is
// rectangular.
func NewGrid(rows [][]string) *Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		line := make([]string, width)
		copy(line, row)
		cells[i] = line
	}
	return &Grid{cells: cells}
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the width of the grid.
func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Cell returns the raw text of the cell at (row, col), or "" when the
// position is outside the grid.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.cells) {
		return ""
	}
	if col < 0 || col >= len(g.cells[row]) {
		return ""
	}
	return g.cells[row][col]
}

// CellTrimmed returns the cell text with leading and trailing whitespace
// removed.
func (g *Grid) CellTrimmed(row, col int) string {
	return strings.TrimSpace(g.Cell(row, col))
}

// LoadGrid opens the .xls workbook at path and materializes the requested
// sheet as a Grid. The sheet argument selects by zero-based index when it is
// empty or numeric, otherwise by sheet name.
func LoadGrid(path, sheet string) (*Grid, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	ws, err := selectSheet(wb, sheet)
	if err != nil {
		return nil, fmt.Errorf("workbook %s: %w", path, err)
	}
	return gridFromSheet(ws), nil
}

// selectSheet resolves the sheet argument against the workbook.
func selectSheet(wb *xls.WorkBook, sheet string) (*xls.WorkSheet, error) {
	name := strings.TrimSpace(sheet)
	if name == "" {
		if ws := wb.GetSheet(0); ws != nil {
			return ws, nil
		}
		return nil, fmt.Errorf("workbook has no sheets: %w", ErrSheetNotFound)
	}
	if idx, err := strconv.Atoi(name); err == nil {
		if ws := wb.GetSheet(idx); ws != nil {
			return ws, nil
		}
		return nil, fmt.Errorf("sheet index %d out of range, workbook has %d sheets: %w",
			idx, wb.NumSheets(), ErrSheetNotFound)
	}
	for i := 0; i < wb.NumSheets(); i++ {
		if ws := wb.GetSheet(i); ws != nil && ws.Name == name {
			return ws, nil
		}
	}
	return nil, fmt.Errorf("sheet %q: %w", name, ErrSheetNotFound)
}

// gridFromSheet copies the sheet into a rectangular cell matrix. The xls
// library hands back sparse rows, so the width is the widest row seen.
func gridFromSheet(ws *xls.WorkSheet) *Grid {
	rowCount := int(ws.MaxRow) + 1
	width := 0
	for i := 0; i < rowCount; i++ {
		if row := ws.Row(i); row != nil && row.LastCol() > width {
			width = row.LastCol()
		}
	}
	cells := make([][]string, rowCount)
	for i := 0; i < rowCount; i++ {
		line := make([]string, width)
		if row := ws.Row(i); row != nil {
			for j := row.FirstCol(); j < row.LastCol(); j++ {
				if j >= 0 && j < width {
					line[j] = row.Col(j)
				}
			}
		}
		cells[i] = line
	}
	return &Grid{cells: cells}
}
