package extract

// SpeciesTable is the species-by-year count matrix. Years holds the resolved
// year columns in sheet order (deduplicated, first column kept); every row
// carries one count per entry of Years, aligned by index.
type SpeciesTable struct {
	Years []int
	Rows  []SpeciesRow
}

// SpeciesRow is one species line of the count matrix.
type SpeciesRow struct {
	Name   string
	Counts []int
}

// ParticipantsEffortRow is one year line of the participants/effort summary
// block. CountIndex is the circle's running count number (e.g. 124), not the
// calendar year. Numeric fields are nil when the source cell was blank or
// unusable.
type ParticipantsEffortRow struct {
	Year               *int
	CountDate          string
	CountIndex         int
	NumParticipants    *int
	NumHours           *float64
	NumSpeciesReported *int
}

// WeatherRow is one year line of the weather summary block. Year and
// CountDate start empty and are filled by JoinWeather. Temperatures are in
// Fahrenheit; nil means the cell was missing or carried no recognizable unit.
type WeatherRow struct {
	Year       *int
	CountDate  string
	CountIndex int
	LowTempF   *float64
	HighTempF  *float64
	AMClouds   string
	PMClouds   string
	AMRain     string
	PMRain     string
	AMSnow     string
	PMSnow     string
}

// CountMetadata is the year/count-index/count-date annotation parsed from one
// species header cell such as "2024 [125]\nCount Date: 12/15/2024".
// CountDate is empty when the cell carries no date annotation.
type CountMetadata struct {
	CountIndex int
	Year       int
	CountDate  string
}
