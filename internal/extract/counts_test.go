package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countsGrid mimics the report layout: banner rows, a rich species header,
// then one row per species with artefact cells mixed in.
func countsGrid() *Grid {
	return NewGrid([][]string{
		{"Historical Results by Count"},
		{""},
		{
			"Species",
			"1972 [73]\nCount Date: 12/16/1972\n# Participants: 9",
			"1973 [74]\nCount Date: 12/15/1973",
			"2024 [125]\nCount Date: 12/14/2024",
		},
		{"Canada Goose\n(Branta canadensis)", "12", "cw", "340"},
		{"", "", "", ""},
		{"Great Blue Heron\n(Ardea herodias)", "2.0", "1", ""},
		{"Ruddy Duck", "10.5", "n/a", "3"},
		{"House Sparrow\n(Passer domesticus)", "40", "55", "61"},
		{"Total Individuals", "54", "56", "404"},
	})
}

func TestCountsFromGrid(t *testing.T) {
	table, err := countsFromGrid(countsGrid(), "House Sparrow")
	require.NoError(t, err)

	assert.Equal(t, []int{1972, 1973, 2024}, table.Years)
	require.Len(t, table.Rows, 4)

	assert.Equal(t, "Canada Goose", table.Rows[0].Name)
	assert.Equal(t, []int{12, 0, 340}, table.Rows[0].Counts)

	assert.Equal(t, "Great Blue Heron", table.Rows[1].Name)
	assert.Equal(t, []int{2, 1, 0}, table.Rows[1].Counts)

	assert.Equal(t, "Ruddy Duck", table.Rows[2].Name)
	assert.Equal(t, []int{11, 0, 3}, table.Rows[2].Counts)

	// Truncation is inclusive: House Sparrow stays, the totals row goes.
	assert.Equal(t, "House Sparrow", table.Rows[3].Name)
	assert.Equal(t, []int{40, 55, 61}, table.Rows[3].Counts)
}

func TestCountsFromGridWithoutStopSpecies(t *testing.T) {
	table, err := countsFromGrid(countsGrid(), "Snowy Owl")
	require.NoError(t, err)

	// No truncation: every non-blank species row survives, totals included.
	require.Len(t, table.Rows, 5)
	assert.Equal(t, "Total Individuals", table.Rows[4].Name)
}

func TestCountsFromGridStopsAtFirstOccurrence(t *testing.T) {
	g := NewGrid([][]string{
		{"Species", "2001 [102]"},
		{"House Finch", "5"},
		{"House Sparrow", "10"},
		{"Song Sparrow", "2"},
		{"House Sparrow", "99"},
	})

	table, err := countsFromGrid(g, "House Sparrow")
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []int{10}, table.Rows[1].Counts)
}

func TestCountsFromGridDropsBlankSpeciesRows(t *testing.T) {
	g := NewGrid([][]string{
		{"Species", "1999 [100]"},
		{"   ", "7"},
		{"\n(orphan scientific name)", "8"},
		{"Mallard", "9"},
	})

	table, err := countsFromGrid(g, "House Sparrow")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Mallard", table.Rows[0].Name)
}

func TestCountsFromGridNoHeader(t *testing.T) {
	g := NewGrid([][]string{
		{"no header here", "1999"},
	})

	_, err := countsFromGrid(g, "House Sparrow")
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestCountsFromGridNoYearColumns(t *testing.T) {
	g := NewGrid([][]string{
		{"Species", "Total", "Notes"},
		{"Mallard", "9", ""},
	})

	_, err := countsFromGrid(g, "House Sparrow")
	assert.ErrorIs(t, err, ErrNoYearColumns)
}

func TestExtractCountsMissingFile(t *testing.T) {
	_, err := ExtractCounts("testdata/does-not-exist.xls", "", "House Sparrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open workbook")
}
