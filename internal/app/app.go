package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazepath/internal/config"
)

// App holds the dependencies of one solver run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *config.Config
}

// NewApp builds an App that writes its report to outW and its logs to logW.
// Every log record carries a fresh run_id.
func NewApp(outW, logW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", uuid.New().String())
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}
