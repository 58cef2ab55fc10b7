// Package shared provides utilities used across the cbc-historic codebase
// that do not belong to any specific domain layer.
//
// The testutil subpackage holds a buffered slog handler so tests can assert
// on log output without touching the global logger.
package shared
