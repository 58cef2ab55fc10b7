// Package config provides centralized configuration management for the
// count extractor. It handles loading configuration from multiple sources
// and is the single source of truth for default file locations.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Command line flags (highest priority)
//	2. Environment variables
//	3. Executable-relative defaults (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern CBC_* for namespacing:
//
//	CBC_INPUT=data/capc/HistoricalResultsByCount.xls
//	CBC_STOP_SPECIES="House Sparrow"
//	CBC_LOG_LEVEL=debug
//	CBC_LOG_FORMAT=json
//
// # Paths
//
// Default paths are always resolved relative to the executable directory,
// never the current working directory, so the tool behaves the same whether
// it is launched from a shell, a scheduler, or a double-click. Explicit
// flag or environment paths are used exactly as given.
package config
