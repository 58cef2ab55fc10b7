package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// speciesHeaderLabel anchors the species-by-year matrix inside the report.
const speciesHeaderLabel = "Species"

// yearHeaderRe matches a 19xx/20xx year at the start of a header cell.
var yearHeaderRe = regexp.MustCompile(`^\s*(19\d{2}|20\d{2})\b`)

// findHeaderRow returns the row and column of the first cell whose trimmed
// text equals "Species".
func findHeaderRow(g *Grid) (row, col int, err error) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.CellTrimmed(r, c) == speciesHeaderLabel {
				return r, c, nil
			}
		}
	}
	return 0, 0, ErrHeaderNotFound
}

// findRowWithCell returns the index of the first row containing a cell whose
// trimmed text equals the trimmed target, or -1 when no row matches.
func findRowWithCell(g *Grid, target string) int {
	want := strings.TrimSpace(target)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.CellTrimmed(r, c) == want {
				return r
			}
		}
	}
	return -1
}

// labelColumns maps each trimmed cell of the label row to its column index.
// The first column seen for a label wins.
func labelColumns(g *Grid, labelRow int) map[string]int {
	cols := make(map[string]int)
	for c := 0; c < g.Cols(); c++ {
		label := g.CellTrimmed(labelRow, c)
		if label == "" {
			continue
		}
		if _, ok := cols[label]; !ok {
			cols[label] = c
		}
	}
	return cols
}

// yearColumn pairs a header column index with the year parsed from its cell.
type yearColumn struct {
	col  int
	year int
}

// yearColumns scans the header row left to right for year-labeled columns.
// When a year appears more than once, the first column is kept and later
// duplicates are ignored.
func yearColumns(g *Grid, headerRow int) []yearColumn {
	var out []yearColumn
	seen := make(map[int]bool)
	for c := 0; c < g.Cols(); c++ {
		m := yearHeaderRe.FindStringSubmatch(g.Cell(headerRow, c))
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil || seen[year] {
			continue
		}
		seen[year] = true
		out = append(out, yearColumn{col: c, year: year})
	}
	return out
}
