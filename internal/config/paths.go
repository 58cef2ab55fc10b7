package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for default file locations; every path
// is resolved relative to the executable directory, never the current
// working directory, so the tool behaves the same wherever it is run from.
type Paths struct {
	ExecutableDir string
	DataDir       string
	CircleDir     string
	LogsDir       string

	// Well-known files inside the circle directory.
	InputFile       string
	ParticipantsCSV string
	EffortCSV       string
	WeatherCSV      string
	LogFile         string
}

// GetPaths returns the application paths relative to the executable location.
//
// Directory structure:
//
//	cbc-historic(.exe)
//	├── data/
//	│   └── capc/          (input export and generated CSVs)
//	└── logs/              (application logs)
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	// Resolve symlinks to get the actual executable location
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	exeDir := filepath.Dir(exe)
	dataDir := filepath.Join(exeDir, DefaultDataDir)
	circleDir := filepath.Join(dataDir, CircleDirName)
	logsDir := filepath.Join(exeDir, DefaultLogsDir)

	return &Paths{
		ExecutableDir: exeDir,
		DataDir:       dataDir,
		CircleDir:     circleDir,
		LogsDir:       logsDir,

		InputFile:       filepath.Join(circleDir, DefaultInputFileName),
		ParticipantsCSV: filepath.Join(circleDir, ParticipantsFileName),
		EffortCSV:       filepath.Join(circleDir, EffortFileName),
		WeatherCSV:      filepath.Join(circleDir, WeatherFileName),
		LogFile:         filepath.Join(logsDir, LogFileName),
	}, nil
}

// CountsCSV returns the derived counts output path for the observed year
// range, e.g. data/capc/CAPC_1972_2025.csv.
func (p *Paths) CountsCSV(firstYear, lastYear int) string {
	return filepath.Join(p.CircleDir, fmt.Sprintf("%s_%d_%d.csv", CirclePrefix, firstYear, lastYear))
}

// EnsureDirectories creates the base directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.CircleDir,
		p.LogsDir,
	}
	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
