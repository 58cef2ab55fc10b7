package config

// Application constants - hardcoded values for the count extractor
const (
	// Application Info
	AppName    = "cbc-historic"
	AppVersion = "1.2.0"

	// Count Circle
	// CirclePrefix is the four-letter circle code used in output filenames.
	CirclePrefix = "CAPC"

	// Species Table
	// DefaultStopSpecies is the last expected species row in the export;
	// rows past it are website artefacts (totals, footers).
	DefaultStopSpecies = "House Sparrow"

	// File Paths (relative to executable)
	DefaultDataDir = "data"
	CircleDirName  = "capc"
	DefaultLogsDir = "logs"

	// DefaultInputFileName is the export as downloaded from the CBC website.
	DefaultInputFileName = "HistoricalResultsByCount [CAPC-1972-2025].xls"

	// Fixed output filenames; the counts filename is derived from the year
	// range instead (see Paths.CountsCSV).
	ParticipantsFileName = CirclePrefix + "_participants.csv"
	EffortFileName       = CirclePrefix + "_effort.csv"
	WeatherFileName      = CirclePrefix + "_weather.csv"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	LogFileName      = "cbc-historic.log"
)
