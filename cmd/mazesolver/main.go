package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/mazepath/bestfirst"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/internal/app"
	"github.com/katalvlaran/mazepath/internal/cli"
)

// Exit codes beyond 0 (path found) and 1 (unexpected failure).
const (
	exitUsage  = 2
	exitNoPath = 3
)

// main is the entrypoint for the mazesolver application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	_, err = app.NewApp(outW, logW, cfg).Run(ctx)
	return err
}

// exitCode maps a run error that is not an ExitError to a process status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, bestfirst.ErrNotFound):
		return exitNoPath
	case errors.Is(err, gridgraph.ErrConfiguration):
		return exitUsage
	}
	return 1
}
