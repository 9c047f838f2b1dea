package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional run file with defaults", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse([]string{"run.hcl"}, out)
		require.NoError(t, err)
		require.False(t, shouldExit)

		assert.Equal(t, "run.hcl", cfg.RunFile)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 0, cfg.Workers)
		assert.Equal(t, -1, cfg.MaxIterations)
		assert.Equal(t, 0, cfg.HealthcheckPort)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		out := &bytes.Buffer{}
		args := []string{
			"-run", "jobs/pr.hcl",
			"-workers", "8",
			"-max-iterations", "5",
			"-log-level", "DEBUG",
			"-log-format", "text",
			"-healthcheck-port", "8080",
		}
		cfg, shouldExit, err := Parse(args, out)
		require.NoError(t, err)
		require.False(t, shouldExit)

		assert.Equal(t, "jobs/pr.hcl", cfg.RunFile)
		assert.Equal(t, 8, cfg.Workers)
		assert.Equal(t, 5, cfg.MaxIterations)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, 8080, cfg.HealthcheckPort)
	})

	t.Run("shorthand run flag", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, _, err := Parse([]string{"-r", "short.hcl"}, out)
		require.NoError(t, err)
		assert.Equal(t, "short.hcl", cfg.RunFile)
	})

	t.Run("no run file prints usage and exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse(nil, out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("invalid log level", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, _, err := Parse([]string{"-log-level", "loud", "run.hcl"}, out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "invalid log-level")
	})

	t.Run("invalid log format", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, _, err := Parse([]string{"-log-format", "xml", "run.hcl"}, out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Contains(t, exitErr.Message, "invalid log-format")
	})

	t.Run("negative workers", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, _, err := Parse([]string{"-workers", "-2", "run.hcl"}, out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Contains(t, exitErr.Message, "invalid workers")
	})

	t.Run("unknown flag", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, _, err := Parse([]string{"--not-a-flag"}, out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})
}
