package extract

import (
	"fmt"
	"strconv"
	"strings"
)

// Labels of the participants/effort summary block. All of them must be
// present on the block's header row.
const (
	labelYear            = "Year"
	labelCountDate       = "Count Date"
	labelParticipants    = "Num. Participants"
	labelHours           = "Num. Hours"
	labelSpeciesReported = "Num. Species Reported"
)

// ExtractParticipantsEffort loads the sheet and reads the year-by-year
// summary block that carries count date, participants, hours, and species
// reported. Rows run downward from the label row until the Year cell is
// missing; rows whose count index cannot be read are dropped.
func ExtractParticipantsEffort(path, sheet string) ([]ParticipantsEffortRow, error) {
	g, err := LoadGrid(path, sheet)
	if err != nil {
		return nil, err
	}
	return participantsEffortFromGrid(g)
}

func participantsEffortFromGrid(g *Grid) ([]ParticipantsEffortRow, error) {
	labelRow := findRowWithCell(g, labelCountDate)
	if labelRow < 0 {
		return nil, fmt.Errorf("participants/effort block: label %q: %w", labelCountDate, ErrLabelNotFound)
	}
	cols := labelColumns(g, labelRow)

	var (
		idxYear            = -1
		idxCountDate       = -1
		idxParticipants    = -1
		idxHours           = -1
		idxSpeciesReported = -1
	)
	for _, want := range []struct {
		label string
		idx   *int
	}{
		{labelYear, &idxYear},
		{labelCountDate, &idxCountDate},
		{labelParticipants, &idxParticipants},
		{labelHours, &idxHours},
		{labelSpeciesReported, &idxSpeciesReported},
	} {
		c, ok := cols[want.label]
		if !ok {
			return nil, fmt.Errorf("participants/effort header row %d: label %q: %w",
				labelRow, want.label, ErrLabelNotFound)
		}
		*want.idx = c
	}

	var rows []ParticipantsEffortRow
	for r := labelRow + 1; r < g.Rows(); r++ {
		if g.Cell(r, idxYear) == "" {
			break
		}
		countIndex := parseOptionalInt(g.Cell(r, idxYear))
		if countIndex == nil {
			// Unusable index cell, drop the row and keep walking.
			continue
		}
		countDate := cleanText(g.Cell(r, idxCountDate))
		rows = append(rows, ParticipantsEffortRow{
			Year:               yearFromCountDate(countDate),
			CountDate:          countDate,
			CountIndex:         *countIndex,
			NumParticipants:    parseOptionalInt(g.Cell(r, idxParticipants)),
			NumHours:           parseOptionalFloat(g.Cell(r, idxHours)),
			NumSpeciesReported: parseOptionalInt(g.Cell(r, idxSpeciesReported)),
		})
	}
	return rows, nil
}

// yearFromCountDate derives the calendar year from the last four characters
// of a cleaned count date such as "12/15/2024". Blank or malformed dates
// yield nil.
func yearFromCountDate(countDate string) *int {
	t := strings.TrimSpace(countDate)
	if t == "" {
		return nil
	}
	if len(t) > 4 {
		t = t[len(t)-4:]
	}
	year, err := strconv.Atoi(t)
	if err != nil {
		return nil
	}
	return &year
}
