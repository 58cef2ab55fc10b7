package extract

import (
	"regexp"
	"strconv"
)

// yearIndexRe matches the year/count-index annotation at the start of a
// species header cell, e.g. "2024 [125]".
var yearIndexRe = regexp.MustCompile(`^\s*(19\d{2}|20\d{2})\s*\[(\d+)\]`)

// countDateRe finds the count date annotation anywhere in a header cell.
var countDateRe = regexp.MustCompile(`Count Date:\s*([0-9]{1,2}/[0-9]{1,2}/[0-9]{4})`)

// ExtractHeaderMetadata loads the sheet and parses the species header cells
// for year, count index, and count date annotations. Results keep column
// order and are deduplicated by count index, first occurrence kept.
func ExtractHeaderMetadata(path, sheet string) ([]CountMetadata, error) {
	g, err := LoadGrid(path, sheet)
	if err != nil {
		return nil, err
	}
	headerRow, _, err := findHeaderRow(g)
	if err != nil {
		return nil, err
	}
	return headerMetadata(g, headerRow), nil
}

func headerMetadata(g *Grid, headerRow int) []CountMetadata {
	var out []CountMetadata
	seen := make(map[int]bool)
	for c := 0; c < g.Cols(); c++ {
		cell := g.Cell(headerRow, c)
		m := yearIndexRe.FindStringSubmatch(cell)
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil || seen[idx] {
			continue
		}
		seen[idx] = true
		md := CountMetadata{CountIndex: idx, Year: year}
		if d := countDateRe.FindStringSubmatch(cell); d != nil {
			md.CountDate = d[1]
		}
		out = append(out, md)
	}
	return out
}
