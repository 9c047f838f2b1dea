package config

import "context"

// Loader is the interface for a format-specific run-file loader. It exists
// so the app and tests can swap the HCL implementation for an in-memory one.
type Loader interface {
	// Load reads the run file at path and translates it into the model,
	// applying defaults and reporting structural errors.
	Load(ctx context.Context, path string) (*Model, error)
}
