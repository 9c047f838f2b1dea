package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/vk/colorgrid/internal/config"
	"github.com/vk/colorgrid/internal/ctxlog"
	"github.com/vk/colorgrid/internal/programs"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	model   *config.Model
	factory programs.Factory
}

// NewApp is the constructor for the main application. It loads the run file,
// resolves the vertex program, and fails fast on any configuration error so
// that nothing is executed against a bad setup.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.RunFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load run file: %w", err)
	}
	logger.Debug("Run file loaded into model.")

	factory, err := programs.Lookup(model.Run.Program)
	if err != nil {
		return nil, err
	}
	logger.Debug("Vertex program resolved.", "program", model.Run.Program)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		model:   model,
		factory: factory,
	}, nil
}

// Model returns the loaded run-file model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// workerCount resolves the effective worker count: CLI override, then run
// file, then one worker per available CPU.
func (a *App) workerCount() int {
	if a.config.Workers > 0 {
		return a.config.Workers
	}
	if a.model.Run.Workers > 0 {
		return a.model.Run.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// maxIterations resolves the effective iteration bound, or
// config.UnboundedIterations when neither the CLI nor the run file sets one.
func (a *App) maxIterations() int {
	if a.config.MaxIterations >= 0 {
		return a.config.MaxIterations
	}
	return a.model.Run.MaxIterations
}
