package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/vk/colorgrid/internal/ctxlog"
	"github.com/vk/colorgrid/internal/task"
)

// ColoredGraph is the narrow surface the colored scheduler consumes from the
// graph collaborator: a vertex count and a dense color per vertex. Validity
// of the coloring is the collaborator's contract, not verified here.
type ColoredGraph interface {
	NumVertices() int
	Color(v int) int
}

// Colored implements the colored scheduling policy described in the package
// documentation. Construct with NewColored, register an update function,
// then call Start before dispatching. A Colored instance covers one run; it
// is not designed for reuse across runs.
type Colored struct {
	partition colorPartition
	cursors   []workerCursor
	shared    epochWord
	completed atomic.Bool

	// maxIterations bounds epoch/numClasses; MaxUint64 means unbounded.
	maxIterations uint64

	// updateFn is the single global update function. Written by the
	// registration operations before Start and treated as immutable once the
	// run begins, so the hot path reads it without synchronization.
	updateFn task.UpdateFunc

	logger *slog.Logger
}

var _ Scheduler = (*Colored)(nil)

// NewColored builds a colored scheduler for g with a fixed number of
// workers. The color partition is built once here and never mutated.
func NewColored(ctx context.Context, g ColoredGraph, workers int) (*Colored, error) {
	if workers < 1 || workers > MaxWorkers {
		return nil, fmt.Errorf("worker count %d out of range [1, %d]", workers, MaxWorkers)
	}
	s := &Colored{
		partition:     buildPartition(g.NumVertices(), g.Color),
		cursors:       newCursorArena(workers),
		maxIterations: math.MaxUint64,
		logger:        ctxlog.FromContext(ctx),
	}
	s.logger.Debug("Colored scheduler constructed.",
		"workers", workers,
		"vertices", s.partition.numVertices(),
		"colorClasses", s.partition.numClasses())
	return s, nil
}

// Start implements Scheduler. A graph with no vertices (and hence no color
// classes) is not an error: the run is marked complete immediately so
// workers observe StatusComplete on their first call instead of the
// scheduler dividing by zero.
func (s *Colored) Start() error {
	if s.updateFn == nil {
		return ErrNoUpdateFunction
	}
	workers := len(s.cursors)
	for i := range s.cursors {
		resetCursor(&s.cursors[i], i, workers)
	}
	s.shared.reset()
	s.completed.Store(s.partition.numClasses() == 0)
	s.logger.Debug("Colored scheduler started.", "degenerate", s.completed.Load())
	return nil
}

// Stop implements Scheduler. Identical in effect to Abort; it exists for
// the engine's normal-shutdown calling convention.
func (s *Colored) Stop() {
	s.completed.Store(true)
	s.logger.Debug("Colored scheduler stopped.")
}

// Abort implements Scheduler.
func (s *Colored) Abort() {
	s.completed.Store(true)
	s.logger.Debug("Colored scheduler aborted.")
}

// NextTask implements the dispatch state machine. It never blocks and takes
// no locks: the cursor slot is owned by the calling worker and the only
// shared state touched is the packed epoch word.
func (s *Colored) NextTask(workerID int) (task.Task, Status) {
	if s.completed.Load() {
		return task.Task{}, StatusComplete
	}

	cur := &s.cursors[workerID]
	if cur.waiting {
		shared := s.shared.epoch()
		if cur.epoch == shared {
			// Nothing has changed; still parked at the barrier.
			return task.Task{}, StatusWaiting
		}
		// The epoch advanced: re-enter the new class at our round-robin seed.
		cur.epoch = shared
		cur.offset = workerID
		cur.waiting = false
	} else {
		// Stride by the worker count, keeping offsets congruent to workerID.
		cur.offset += len(s.cursors)
	}

	numClasses := uint64(s.partition.numClasses())
	if cur.epoch/numClasses >= s.maxIterations {
		// Iteration budget exhausted. Workers hit this individually, but all
		// at the same epoch value.
		return task.Task{}, StatusComplete
	}

	class := s.partition.class(int(cur.epoch % numClasses))
	if cur.offset < len(class) {
		return task.Task{Vertex: class[cur.offset], Fn: s.updateFn}, StatusNewTask
	}

	// Our slice of this class is exhausted: park at the barrier. If this
	// arrival is the one that trips the threshold, arrive atomically advances
	// the epoch; either way the next call observes the outcome in step 2.
	cur.waiting = true
	s.shared.arrive(len(s.cursors))
	return task.Task{}, StatusWaiting
}

// CompletedTask implements Scheduler. The colored policy performs no
// completion bookkeeping: no retry, no requeue.
func (s *Colored) CompletedTask(workerID int, t task.Task) {}

// AddTask implements Scheduler. The priority is ignored and the task's
// vertex does not restrict scheduling; only the function is kept.
func (s *Colored) AddTask(t task.Task, priority float64) {
	s.updateFn = t.Fn
}

// AddTasks implements Scheduler. The vertex subset is ignored; see the
// package documentation.
func (s *Colored) AddTasks(vertices []int, fn task.UpdateFunc, priority float64) {
	s.updateFn = fn
}

// AddTaskToAll implements Scheduler.
func (s *Colored) AddTaskToAll(fn task.UpdateFunc, priority float64) {
	s.updateFn = fn
}

// Callback implements Scheduler. The colored policy's callback is inert.
func (s *Colored) Callback(workerID int) task.Callback {
	return unusedCallback{}
}

// SetOption implements Scheduler. Exactly two options are recognized; any
// other name is a configuration error the engine must treat as fatal.
func (s *Colored) SetOption(name string, value any) error {
	switch name {
	case OptionUpdateFunction:
		fn, ok := value.(task.UpdateFunc)
		if !ok {
			return fmt.Errorf("%w: %s expects a task.UpdateFunc, got %T", ErrInvalidOptionValue, name, value)
		}
		s.updateFn = fn
	case OptionMaxIterations:
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("%w: %s expects an int, got %T", ErrInvalidOptionValue, name, value)
		}
		if n < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidOptionValue, name, n)
		}
		s.maxIterations = uint64(n)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOption, name)
	}
	return nil
}

// Epoch returns the current shared epoch. Exposed for observability; the
// current color is Epoch() modulo the number of color classes.
func (s *Colored) Epoch() uint64 {
	return s.shared.epoch()
}

// NumClasses returns the number of color classes in the partition.
func (s *Colored) NumClasses() int {
	return s.partition.numClasses()
}
