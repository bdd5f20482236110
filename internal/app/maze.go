package app

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/internal/ctxlog"
)

// classicMaze is solved when no maze is configured.
//
//go:embed classic.maze
var classicMaze string

// loadMaze resolves the maze source in order: file, inline rows, built-in.
func loadMaze(ctx context.Context, cfg *config.Config) (*gridgraph.GridGraph, error) {
	logger := ctxlog.FromContext(ctx)

	switch {
	case cfg.MazeFile != "":
		f, err := os.Open(cfg.MazeFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open maze: %w", err)
		}
		defer f.Close()
		logger.Debug("Reading maze file.", "path", cfg.MazeFile)
		gg, err := gridgraph.ReadMaze(f)
		if err != nil {
			return nil, fmt.Errorf("maze %s: %w", cfg.MazeFile, err)
		}
		return gg, nil

	case len(cfg.MazeRows) > 0:
		logger.Debug("Using inline maze.", "rows", len(cfg.MazeRows))
		return gridgraph.Parse(cfg.MazeRows)
	}

	logger.Debug("No maze configured, using the built-in maze.")
	return gridgraph.ReadMaze(strings.NewReader(classicMaze))
}
