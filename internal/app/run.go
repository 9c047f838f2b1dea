package app

import (
	"context"
	"fmt"

	"github.com/vk/colorgrid/internal/config"
	"github.com/vk/colorgrid/internal/ctxlog"
	"github.com/vk/colorgrid/internal/engine"
	"github.com/vk/colorgrid/internal/graph"
	"github.com/vk/colorgrid/internal/scheduler"
)

// Run executes the main application logic: load the graph, color it, wire
// the scheduler and engine, and drive the run to completion.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
	}

	g, err := graph.ReadAdjList(a.model.Graph.Path)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}
	numColors := graph.GreedyColor(g)
	if err := graph.ValidColoring(g); err != nil {
		return err
	}
	a.logger.Info("Graph loaded and colored.",
		"vertices", g.NumVertices(),
		"edges", g.NumEdges(),
		"colors", numColors)

	workers := a.workerCount()
	sched, err := scheduler.NewColored(ctx, g, workers)
	if err != nil {
		return err
	}
	if maxIter := a.maxIterations(); maxIter != config.UnboundedIterations {
		if err := sched.SetOption(scheduler.OptionMaxIterations, maxIter); err != nil {
			return err
		}
	}

	program := a.factory(g)
	sched.AddTaskToAll(program.UpdateFunc(), 0)

	a.logger.Info("Scheduler configured.",
		"policy", "colored",
		"program", program.Name(),
		"workers", workers)

	eng := engine.New(g, sched, workers)
	if err := eng.Run(ctx); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
