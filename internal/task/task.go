// Package task defines the unit of work handed from a scheduler to a worker:
// a vertex paired with the update function to run on it, plus the scope and
// callback surfaces the function executes against.
package task

import "github.com/vk/colorgrid/internal/graph"

// UpdateFunc is the body of a vertex computation. It is invoked with the
// scope of the vertex being updated and the scheduling callback of the
// worker running it.
type UpdateFunc func(scope *Scope, cb Callback)

// Task pairs a vertex with the update function to apply to it. Tasks are
// created on demand inside a dispatch call and are not retained by the
// scheduler.
type Task struct {
	Vertex int
	Fn     UpdateFunc
}

// Scope is the read surface an update function sees: the vertex it was
// dispatched for, the graph it lives in, and the id of the worker executing
// it. Update functions own their vertex's data for the duration of the call;
// the scheduling policy guarantees no adjacent vertex is being updated
// concurrently.
type Scope struct {
	Vertex   int
	Graph    *graph.Graph
	WorkerID int
}
