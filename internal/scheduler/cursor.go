package scheduler

// workerCursor is the per-worker dispatch state. Each slot in the cursor
// arena is owned exclusively by its worker: only worker w reads or writes
// cursors[w], so no synchronization is needed on the hot path. The padding
// keeps adjacent cursors on separate cache lines.
type workerCursor struct {
	// offset is the scan position within the current color class. Seeded one
	// stride below the worker id so the first advance lands on it; thereafter
	// it only ever holds values congruent to the worker id modulo the worker
	// count.
	offset int
	// epoch is the shared epoch this worker last observed.
	epoch uint64
	// waiting is set once the worker has exhausted its slice of the current
	// class and has arrived at the barrier.
	waiting bool

	_ [40]byte
}

// newCursorArena allocates one cursor per worker, each ready for the first
// dispatch of epoch 0.
func newCursorArena(workers int) []workerCursor {
	cursors := make([]workerCursor, workers)
	for i := range cursors {
		resetCursor(&cursors[i], i, workers)
	}
	return cursors
}

func resetCursor(c *workerCursor, workerID, workers int) {
	*c = workerCursor{offset: workerID - workers}
}
