package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation and decoding failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of one solver run.
type Config struct {
	// Algorithm is the raw strategy selector. It is deliberately not
	// validated here: unknown values fall back to A* at search time.
	Algorithm string
	// MaxExpansions bounds frontier pops; 0 means unbounded.
	MaxExpansions int
	// MazeFile is the path of a plain-text maze. Mutually exclusive with MazeRows.
	MazeFile string
	// MazeRows is an inline maze. When both are empty the built-in maze is used.
	MazeRows []string
	// Trace prints the discovery order in the report.
	Trace bool
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is text or json.
	LogFormat string
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		Algorithm: "astar",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Validate checks the fields that have no fallback.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q must be 'debug', 'info', 'warn', or 'error'", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q must be 'text' or 'json'", ErrInvalidConfig, c.LogFormat)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions cannot be negative (%d)", ErrInvalidConfig, c.MaxExpansions)
	}
	if c.MazeFile != "" && len(c.MazeRows) > 0 {
		return fmt.Errorf("%w: maze_file and an inline maze block are mutually exclusive", ErrInvalidConfig)
	}
	return nil
}
