package app

import (
	"errors"
	"fmt"

	"github.com/vk/colorgrid/internal/scheduler"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// RunFile is the path to the HCL run file.
	RunFile string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	// Workers overrides the run file's worker count when > 0.
	Workers int
	// MaxIterations overrides the run file's iteration bound when >= 0.
	MaxIterations int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RunFile == "" {
		return nil, errors.New("RunFile is a required configuration field and cannot be empty")
	}
	if cfg.Workers > scheduler.MaxWorkers {
		return nil, fmt.Errorf("worker count %d exceeds the scheduler maximum of %d", cfg.Workers, scheduler.MaxWorkers)
	}
	return &cfg, nil
}
