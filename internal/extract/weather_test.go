package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherGrid() *Grid {
	return NewGrid([][]string{
		{"Species", "1972 [73]"},
		{"House Sparrow", "40"},
		{""},
		{"Year", "Low Temp.", "High Temp.", "AM Clouds", "PM Clouds", "AM Rain", "PM Rain", "AM Snow", "PM Snow"},
		{"73", "28.0 Fahrenheit", "44.0 Fahrenheit", "Clear", "Partly  cloudy", "", "Light", "", ""},
		{"74", "-5 Celsius", "10.6 Celsius", "Foggy\nat dawn", "", "Heavy", "", "None", ""},
		{"75", "31", "52 Kelvin", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", "", ""},
	})
}

func TestWeatherFromGrid(t *testing.T) {
	rows, err := weatherFromGrid(weatherGrid())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first := rows[0]
	assert.Equal(t, 73, first.CountIndex)
	require.NotNil(t, first.LowTempF)
	assert.InDelta(t, 28, *first.LowTempF, 1e-9)
	require.NotNil(t, first.HighTempF)
	assert.InDelta(t, 44, *first.HighTempF, 1e-9)
	assert.Equal(t, "Clear", first.AMClouds)
	assert.Equal(t, "Partly cloudy", first.PMClouds)
	assert.Equal(t, "Light", first.PMRain)

	// Celsius converts, cell text is whitespace-normalized.
	second := rows[1]
	require.NotNil(t, second.LowTempF)
	assert.InDelta(t, 23, *second.LowTempF, 1e-9)
	require.NotNil(t, second.HighTempF)
	assert.InDelta(t, 51.08, *second.HighTempF, 1e-9)
	assert.Equal(t, "Foggy at dawn", second.AMClouds)

	// Bare numbers and unknown units carry no usable temperature.
	third := rows[2]
	assert.Nil(t, third.LowTempF)
	assert.Nil(t, third.HighTempF)

	// Year and CountDate are left for the join.
	for _, row := range rows {
		assert.Nil(t, row.Year)
		assert.Equal(t, "", row.CountDate)
	}
}

func TestWeatherFromGridOptionalColumnsMissing(t *testing.T) {
	g := NewGrid([][]string{
		{"Year", "Low Temp."},
		{"90", "12 Fahrenheit"},
	})

	rows, err := weatherFromGrid(g)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].LowTempF)
	assert.InDelta(t, 12, *rows[0].LowTempF, 1e-9)
	assert.Nil(t, rows[0].HighTempF)
	assert.Equal(t, "", rows[0].AMClouds)
	assert.Equal(t, "", rows[0].PMSnow)
}

func TestWeatherFromGridMissingYearLabel(t *testing.T) {
	g := NewGrid([][]string{
		{"Low Temp.", "High Temp."},
		{"12 Fahrenheit", "20 Fahrenheit"},
	})

	_, err := weatherFromGrid(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLabelNotFound)
	assert.Contains(t, err.Error(), "Year")
}

func TestWeatherFromGridNoBlock(t *testing.T) {
	g := NewGrid([][]string{
		{"Species", "1972 [73]"},
	})

	_, err := weatherFromGrid(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLabelNotFound)
	assert.Contains(t, err.Error(), "Low Temp.")
}

func TestWeatherFromGridSkipsUnusableIndex(t *testing.T) {
	g := NewGrid([][]string{
		{"Year", "Low Temp."},
		{"90", "10 Fahrenheit"},
		{"??", "11 Fahrenheit"},
		{"92", "12 Fahrenheit"},
	})

	rows, err := weatherFromGrid(g)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 90, rows[0].CountIndex)
	assert.Equal(t, 92, rows[1].CountIndex)
}
