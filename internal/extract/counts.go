package extract

import "fmt"

// ExtractCounts loads the sheet and builds the species-by-year count matrix.
// Rows run downward from the species header; blank species cells are
// dropped, and the table is truncated inclusively at the first row whose
// display name equals stopSpecies (no truncation when it never appears).
func ExtractCounts(path, sheet, stopSpecies string) (*SpeciesTable, error) {
	g, err := LoadGrid(path, sheet)
	if err != nil {
		return nil, err
	}
	return countsFromGrid(g, stopSpecies)
}

func countsFromGrid(g *Grid, stopSpecies string) (*SpeciesTable, error) {
	headerRow, speciesCol, err := findHeaderRow(g)
	if err != nil {
		return nil, err
	}
	years := yearColumns(g, headerRow)
	if len(years) == 0 {
		return nil, fmt.Errorf("header row %d: %w", headerRow, ErrNoYearColumns)
	}

	table := &SpeciesTable{Years: make([]int, len(years))}
	for i, yc := range years {
		table.Years[i] = yc.year
	}

	for r := headerRow + 1; r < g.Rows(); r++ {
		if g.Cell(r, speciesCol) == "" {
			continue
		}
		name := displayName(g.Cell(r, speciesCol))
		if name == "" {
			continue
		}
		row := SpeciesRow{Name: name, Counts: make([]int, len(years))}
		for i, yc := range years {
			row.Counts[i] = parseCount(g.Cell(r, yc.col))
		}
		table.Rows = append(table.Rows, row)
		if name == stopSpecies {
			break
		}
	}
	return table, nil
}
