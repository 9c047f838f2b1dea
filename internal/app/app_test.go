package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/colorgrid/internal/app"
	"github.com/vk/colorgrid/internal/config"
	"github.com/vk/colorgrid/internal/programs"
	"github.com/vk/colorgrid/internal/testutil"
)

// triangleGraph is a 3-cycle: greedy coloring needs three classes.
const triangleGraph = "0 1 2\n1 2\n"

func TestAppRunPageRankEndToEnd(t *testing.T) {
	result := testutil.RunApp(t, testutil.RunSpec{
		Graph:         triangleGraph,
		Program:       "pagerank",
		Workers:       2,
		MaxIterations: 5,
	}, app.Config{})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "Graph loaded and colored.")
	assert.Contains(t, result.LogOutput, "Execution finished.")
	assert.Contains(t, result.LogOutput, "tasksExecuted=15", "3 vertices x 5 iterations")
}

func TestAppRunComponentsEndToEnd(t *testing.T) {
	result := testutil.RunApp(t, testutil.RunSpec{
		Graph:         "0 1\n2 3\n",
		Program:       "components",
		Workers:       2,
		MaxIterations: 3,
	}, app.Config{})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "Execution finished.")
}

func TestAppUnknownProgramFailsBeforeRunning(t *testing.T) {
	result := testutil.RunApp(t, testutil.RunSpec{
		Graph:         triangleGraph,
		Program:       "bfs",
		MaxIterations: 1,
	}, app.Config{})

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, programs.ErrUnknownProgram)
	assert.Nil(t, result.App)
}

func TestAppCLIOverridesRunFile(t *testing.T) {
	// The run file asks for 5 iterations; the CLI override cuts it to 1.
	result := testutil.RunApp(t, testutil.RunSpec{
		Graph:         triangleGraph,
		Program:       "pagerank",
		Workers:       1,
		MaxIterations: 5,
	}, app.Config{MaxIterations: 1})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "tasksExecuted=3")
}

func TestAppMissingGraphFile(t *testing.T) {
	runFile := filepath.Join(t.TempDir(), "run.hcl")
	content := "graph {\n  path = \"does-not-exist.adj\"\n}\n\nrun {\n  program = \"pagerank\"\n}\n"
	require.NoError(t, os.WriteFile(runFile, []byte(content), 0o644))

	cfg, err := app.NewConfig(app.Config{
		RunFile:       runFile,
		LogLevel:      "error",
		LogFormat:     "text",
		MaxIterations: -1,
	})
	require.NoError(t, err)

	var buf testutil.SafeBuffer
	a, err := app.NewApp(&buf, cfg, config.NewHCLLoader())
	require.NoError(t, err, "a missing graph file is a Run-time error, not a load-time one")

	runErr := a.Run(context.Background())
	assert.ErrorContains(t, runErr, "failed to load graph")
}

func TestAppMissingRunFile(t *testing.T) {
	cfg, err := app.NewConfig(app.Config{
		RunFile:       filepath.Join(t.TempDir(), "nope.hcl"),
		LogLevel:      "error",
		LogFormat:     "text",
		MaxIterations: -1,
	})
	require.NoError(t, err)

	var buf testutil.SafeBuffer
	_, newErr := app.NewApp(&buf, cfg, config.NewHCLLoader())
	assert.ErrorContains(t, newErr, "failed to load run file")
}

func TestNewConfigValidation(t *testing.T) {
	_, err := app.NewConfig(app.Config{})
	assert.ErrorContains(t, err, "RunFile is a required")

	_, err = app.NewConfig(app.Config{RunFile: "x.hcl", Workers: 1 << 20})
	assert.ErrorContains(t, err, "exceeds the scheduler maximum")
}
