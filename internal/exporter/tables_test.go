package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrospheric0/cbc-historic/internal/extract"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func sampleCounts() *extract.SpeciesTable {
	return &extract.SpeciesTable{
		Years: []int{1972, 1973, 2024},
		Rows: []extract.SpeciesRow{
			{Name: "Canada Goose", Counts: []int{12, 0, 340}},
			{Name: "House Sparrow", Counts: []int{40, 55, 61}},
		},
	}
}

func samplePE() []extract.ParticipantsEffortRow {
	return []extract.ParticipantsEffortRow{
		{
			Year:               intp(1972),
			CountDate:          "12/16/1972",
			CountIndex:         73,
			NumParticipants:    intp(9),
			NumHours:           floatp(32.5),
			NumSpeciesReported: intp(58),
		},
		{
			Year:               nil,
			CountDate:          "",
			CountIndex:         74,
			NumParticipants:    nil,
			NumHours:           floatp(41),
			NumSpeciesReported: intp(60),
		},
	}
}

func sampleWeather() []extract.WeatherRow {
	return []extract.WeatherRow{
		{
			Year:       intp(1972),
			CountDate:  "12/16/1972",
			CountIndex: 73,
			LowTempF:   floatp(28),
			HighTempF:  floatp(51.08),
			AMClouds:   "Clear",
			PMClouds:   "Partly cloudy",
		},
		{
			CountIndex: 74,
		},
	}
}

func TestExportCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CAPC_1972_2024.csv")
	e := NewTableExporter(nil)

	require.NoError(t, e.ExportCounts(sampleCounts(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := "Species,1972,1973,2024\n" +
		"Canada Goose,12,0,340\n" +
		"House Sparrow,40,55,61\n"
	assert.Equal(t, expected, string(content))
}

func TestExportParticipants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CAPC_participants.csv")
	e := NewTableExporter(nil)

	require.NoError(t, e.ExportParticipants(samplePE(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := "Year,CountDate,CountIndex,NumParticipants\n" +
		"1972,12/16/1972,73,9\n" +
		",,74,\n"
	assert.Equal(t, expected, string(content))
}

func TestExportEffort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CAPC_effort.csv")
	e := NewTableExporter(nil)

	require.NoError(t, e.ExportEffort(samplePE(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := "Year,CountDate,CountIndex,NumHours\n" +
		"1972,12/16/1972,73,32.5\n" +
		",,74,41\n"
	assert.Equal(t, expected, string(content))
}

func TestExportWeather(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CAPC_weather.csv")
	e := NewTableExporter(nil)

	require.NoError(t, e.ExportWeather(sampleWeather(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := "Year,CountDate,CountIndex,LowTempF,HighTempF,AMClouds,PMClouds,AMRain,PMRain,AMSnow,PMSnow\n" +
		"1972,12/16/1972,73,28,51.08,Clear,Partly cloudy,,,,\n" +
		",,74,,,,,,,,\n"
	assert.Equal(t, expected, string(content))
}

func TestExportCountsEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	e := NewTableExporter(nil)

	require.NoError(t, e.ExportCounts(&extract.SpeciesTable{Years: []int{1999}}, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Species,1999\n", string(content))
}

func TestCountsHeaders(t *testing.T) {
	assert.Equal(t, []string{"Species", "1972", "1973"}, countsHeaders([]int{1972, 1973}))
	assert.Equal(t, []string{"Species"}, countsHeaders(nil))
}
