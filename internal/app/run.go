package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/bestfirst"
	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/internal/ctxlog"
)

// Run loads the maze, searches it and writes the report. A maze without a
// path still produces a report; the returned error then wraps
// bestfirst.ErrNotFound.
func (a *App) Run(ctx context.Context) (*Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	gg, err := loadMaze(ctx, a.config)
	if err != nil {
		return nil, fmt.Errorf("failed to load maze: %w", err)
	}
	a.logger.Info("Maze loaded.", "width", gg.Width, "height", gg.Height,
		"start", gg.Start().String(), "goal", gg.Goal().String(), "walls", gg.WallCount())

	strategy, ok := bestfirst.ParseStrategy(a.config.Algorithm)
	if !ok {
		a.logger.Warn("Invalid algorithm, defaulting to A* search.", "algorithm", a.config.Algorithm)
	}

	res, err := a.search(ctx, gg, strategy)
	if err != nil && !errors.Is(err, bestfirst.ErrNotFound) {
		return nil, err
	}
	notFound := err != nil

	report := &Report{Strategy: strategy, Result: res, Optimal: -1, Trace: a.config.Trace}
	if report.Optimal, err = optimalLength(ctx, gg); err != nil {
		return nil, err
	}

	if err := report.Write(a.outW); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	if notFound {
		a.logger.Warn("No path found.", "expansions", res.Expansions, "discovered", len(res.Discovered))
		return report, fmt.Errorf("%s search: %w", strategy, bestfirst.ErrNotFound)
	}
	a.logger.Info("Path found.", "length", res.Length(), "expansions", res.Expansions)
	a.logger.Debug("App.Run method finished.")
	return report, nil
}

// search steps the engine so cancellation is honoured between expansions.
func (a *App) search(ctx context.Context, gg *gridgraph.GridGraph, strategy bestfirst.Strategy) (*bestfirst.Result, error) {
	logger := ctxlog.FromContext(ctx)

	st, err := bestfirst.NewStepper(gg, strategy,
		bestfirst.WithMaxExpansions(a.config.MaxExpansions),
		bestfirst.WithOnDiscover(func(cell, from gridgraph.Cell, cost int) {
			logger.Debug("Discovered cell.", "cell", cell.String(), "from", from.String(), "cost", cost)
		}),
		bestfirst.WithOnGoal(func(goal gridgraph.Cell) {
			logger.Debug("Goal reached.", "cell", goal.String())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start search: %w", err)
	}

	logger.Info("Starting search.", "strategy", strategy.String(), "max_expansions", a.config.MaxExpansions)
	for range st.Events() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("search interrupted: %w", err)
		}
	}
	return st.Result()
}

// optimalLength returns the fewest-steps distance, or -1 when unreachable.
func optimalLength(ctx context.Context, gg *gridgraph.GridGraph) (int, error) {
	res, err := bfs.BFS(gg, gg.Start(), bfs.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to compute optimal length: %w", err)
	}
	steps, ok := res.DistanceTo(gg.Goal())
	if !ok {
		return -1, nil
	}
	return steps, nil
}
