// Package engine runs the worker pool that consumes a scheduler's dispatch
// protocol. Each worker is one goroutine with a fixed id, looping over
// NextTask: executing dispatched update functions, idling briefly on
// StatusWaiting, and exiting on StatusComplete. Context cancellation is
// mapped to the scheduler's Abort, so a cancelled run drains promptly.
package engine
