package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/mazepath/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mazesolver", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
mazesolver - find a path through a character-grid maze with greedy best-first or A* search.

Usage:
  mazesolver [options] [MAZE_PATH]

Arguments:
  MAZE_PATH
    Path to a plain-text maze ('+' wall, ' ' open, 's' start, 'e' goal).
    Without one, the built-in 20x46 maze is solved.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	mazeFlag := flagSet.String("maze", "", "Path to the maze file.")
	algorithmFlag := flagSet.String("algorithm", "astar", "Search strategy. Options: 'greedy' or 'astar'; anything else falls back to 'astar'.")
	maxExpFlag := flagSet.Int("max-expansions", 0, "Upper bound on frontier expansions. 0 is unbounded.")
	traceFlag := flagSet.Bool("trace", false, "Print the discovery order after the result.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one maze path, got %d", flagSet.NArg())}
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
		slog.Debug("Configuration file loaded.", "path", *configFlag)
	}

	setFlags := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	if setFlags["algorithm"] {
		cfg.Algorithm = *algorithmFlag
	}
	if setFlags["max-expansions"] {
		cfg.MaxExpansions = *maxExpFlag
	}
	if setFlags["trace"] {
		cfg.Trace = *traceFlag
	}
	if setFlags["log-level"] {
		cfg.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if setFlags["log-format"] {
		cfg.LogFormat = strings.ToLower(*logFormatFlag)
	}

	// A maze named on the command line replaces whatever the file described.
	path := *mazeFlag
	if path == "" && flagSet.NArg() == 1 {
		path = flagSet.Arg(0)
	}
	if path != "" {
		cfg.MazeFile = path
		cfg.MazeRows = nil
	}
	slog.Debug("Maze source determined.", "path", cfg.MazeFile, "inline_rows", len(cfg.MazeRows))

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
