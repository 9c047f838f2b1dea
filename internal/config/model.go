package config

// UnboundedIterations marks max_iterations as absent from the run file: the
// run is bounded only by cancellation. An explicit zero is meaningful (the
// scheduler completes immediately) and is kept distinct from absent.
const UnboundedIterations = -1

// Model is the decoded representation of one run file.
type Model struct {
	Graph GraphSection
	Run   RunSection
}

// GraphSection mirrors the `graph` block.
type GraphSection struct {
	// Path points at an adjacency-list text file.
	Path string
}

// RunSection mirrors the `run` block.
type RunSection struct {
	// Program is the registry name of the vertex program to execute.
	Program string
	// Workers is the worker pool size; 0 means the engine default
	// (GOMAXPROCS).
	Workers int
	// MaxIterations bounds full passes over the color classes;
	// UnboundedIterations when absent.
	MaxIterations int
}
