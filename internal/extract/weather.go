package extract

import "fmt"

// Labels of the weather summary block. Only Year is required; a missing
// temperature or sky column simply leaves that field empty.
const (
	labelLowTemp  = "Low Temp."
	labelHighTemp = "High Temp."
	labelAMClouds = "AM Clouds"
	labelPMClouds = "PM Clouds"
	labelAMRain   = "AM Rain"
	labelPMRain   = "PM Rain"
	labelAMSnow   = "AM Snow"
	labelPMSnow   = "PM Snow"
)

// ExtractWeather loads the sheet and reads the year-indexed weather block.
// Rows run downward from the label row until the Year cell is missing. Year
// and CountDate stay unset here; JoinWeather fills them from the other
// tables.
func ExtractWeather(path, sheet string) ([]WeatherRow, error) {
	g, err := LoadGrid(path, sheet)
	if err != nil {
		return nil, err
	}
	return weatherFromGrid(g)
}

func weatherFromGrid(g *Grid) ([]WeatherRow, error) {
	labelRow := findRowWithCell(g, labelLowTemp)
	if labelRow < 0 {
		return nil, fmt.Errorf("weather block: label %q: %w", labelLowTemp, ErrLabelNotFound)
	}
	cols := labelColumns(g, labelRow)

	idxYear, ok := cols[labelYear]
	if !ok {
		return nil, fmt.Errorf("weather header row %d: label %q: %w", labelRow, labelYear, ErrLabelNotFound)
	}

	// Optional columns resolve to -1, which Grid.Cell reads as "".
	col := func(label string) int {
		if c, ok := cols[label]; ok {
			return c
		}
		return -1
	}
	idxLow := col(labelLowTemp)
	idxHigh := col(labelHighTemp)
	idxAMClouds := col(labelAMClouds)
	idxPMClouds := col(labelPMClouds)
	idxAMRain := col(labelAMRain)
	idxPMRain := col(labelPMRain)
	idxAMSnow := col(labelAMSnow)
	idxPMSnow := col(labelPMSnow)

	var rows []WeatherRow
	for r := labelRow + 1; r < g.Rows(); r++ {
		if g.Cell(r, idxYear) == "" {
			break
		}
		countIndex := parseOptionalInt(g.Cell(r, idxYear))
		if countIndex == nil {
			continue
		}
		rows = append(rows, WeatherRow{
			CountIndex: *countIndex,
			LowTempF:   parseTempF(g.Cell(r, idxLow)),
			HighTempF:  parseTempF(g.Cell(r, idxHigh)),
			AMClouds:   cleanText(g.Cell(r, idxAMClouds)),
			PMClouds:   cleanText(g.Cell(r, idxPMClouds)),
			AMRain:     cleanText(g.Cell(r, idxAMRain)),
			PMRain:     cleanText(g.Cell(r, idxPMRain)),
			AMSnow:     cleanText(g.Cell(r, idxAMSnow)),
			PMSnow:     cleanText(g.Cell(r, idxPMSnow)),
		})
	}
	return rows, nil
}
