// Package scheduler provides the task-scheduling core of the engine: it
// decides, for each worker, which vertex to process next.
//
// The colored scheduler is the static policy implemented here. It consumes a
// precomputed proper coloring of the graph and hands out vertices one color
// class at a time: while class c is being processed, every in-flight vertex
// has color c, and a proper coloring guarantees those vertices are mutually
// non-adjacent. Workers carve each class into interleaved round-robin slices
// (worker w visits offsets congruent to w modulo the worker count), so no
// two workers ever claim the same vertex. A barrier built from a single
// atomic word holds everyone at the end of a class until the last worker
// arrives, then releases exactly once into the next class. One full pass
// through one class is an epoch; epoch / numClasses is the iteration count.
//
// # Known limitation: one global update function
//
// This policy supports exactly one update function system-wide. AddTask,
// AddTasks and AddTaskToAll all overwrite the same global function reference
// and their vertex-subset arguments have NO effect on what gets scheduled:
// every vertex in the coloring is dispatched each epoch, with whatever
// function is current at dispatch time. Later registrations silently replace
// earlier ones. Callers relying on per-subset or per-task functions will
// observe incorrect results and should use a dynamic policy instead. This is
// a deliberate property of the colored policy, not an oversight.
//
// Similarly, the callback handed to update functions is inert: task
// self-injection from inside an update function is silently ignored.
package scheduler
