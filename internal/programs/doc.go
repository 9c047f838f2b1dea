// Package programs bundles the vertex programs shipped with the engine and
// a name-keyed registry for looking them up from configuration.
//
// A vertex program owns its per-vertex data (the graph stores only
// structure) and exposes the update function the scheduler dispatches. The
// update functions rely on the colored policy's guarantee: while a vertex is
// being updated, none of its neighbors are, so reading neighbor data and
// writing own-vertex data needs no locking.
package programs
