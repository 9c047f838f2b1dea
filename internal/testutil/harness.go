// Package testutil provides shared helpers for end-to-end tests: a
// thread-safe log buffer and a harness that materializes a graph and run
// file on disk and drives the app through a full execution.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/colorgrid/internal/app"
	"github.com/vk/colorgrid/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RunSpec describes one end-to-end run: the graph as adjacency-list text
// plus the run block contents.
type RunSpec struct {
	Graph         string
	Program       string
	Workers       int // omitted from the run file when 0
	MaxIterations int // omitted from the run file when < 0
}

// HarnessResult holds the outcomes of an end-to-end run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// RunApp writes the given graph and a generated run file into a temp dir,
// then builds and runs the app. Configuration errors surface in Err with a
// nil App; execution errors surface in Err with the App populated.
func RunApp(t *testing.T, spec RunSpec, cfg app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	graphPath := filepath.Join(tmpDir, "graph.adj")
	require.NoError(t, os.WriteFile(graphPath, []byte(spec.Graph), 0o644))

	runFile := fmt.Sprintf("graph {\n  path = %q\n}\n\nrun {\n  program = %q\n", graphPath, spec.Program)
	if spec.Workers > 0 {
		runFile += fmt.Sprintf("  workers = %d\n", spec.Workers)
	}
	if spec.MaxIterations >= 0 {
		runFile += fmt.Sprintf("  max_iterations = %d\n", spec.MaxIterations)
	}
	runFile += "}\n"

	runPath := filepath.Join(tmpDir, "run.hcl")
	require.NoError(t, os.WriteFile(runPath, []byte(runFile), 0o644))

	cfg.RunFile = runPath
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.MaxIterations == 0 {
		// Zero iterations is never what a harness caller means; treat the
		// zero value as "no CLI override".
		cfg.MaxIterations = -1
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	var logBuf SafeBuffer
	result := &HarnessResult{}

	a, err := app.NewApp(&logBuf, appConfig, config.NewHCLLoader())
	if err != nil {
		result.Err = err
		result.LogOutput = logBuf.String()
		return result
	}
	result.App = a
	result.Err = a.Run(context.Background())
	result.LogOutput = logBuf.String()
	return result
}
