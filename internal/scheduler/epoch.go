package scheduler

import "sync/atomic"

// The shared epoch and the count of waiting workers live in one packed
// atomic word: epoch in the high 48 bits, waiter count in the low 16. This
// makes the end-of-class barrier a single compare-and-swap: the arrival that
// reaches the worker-count threshold swaps (epoch, n-1) for (epoch+1, 0) in
// one step, so the waiter reset and the epoch advance cannot be observed
// separately. Keeping them as two independent atomics would open a window
// where a slow worker re-increments the count after the reset but before the
// advance, releasing a later barrier early.
const (
	waiterBits = 16
	waiterMask = 1<<waiterBits - 1

	// MaxWorkers is the largest worker count the packed word can track.
	MaxWorkers = waiterMask
)

// epochWord is the scheduler's only mutable shared state.
type epochWord struct {
	v atomic.Uint64
}

func pack(epoch uint64, waiting int) uint64 {
	return epoch<<waiterBits | uint64(waiting)
}

// reset returns the word to epoch 0 with no waiters. Only valid while no
// worker is dispatching.
func (w *epochWord) reset() {
	w.v.Store(0)
}

// epoch returns the current epoch.
func (w *epochWord) epoch() uint64 {
	return w.v.Load() >> waiterBits
}

// snapshot returns the current epoch and waiter count as one consistent pair.
func (w *epochWord) snapshot() (epoch uint64, waiting int) {
	cur := w.v.Load()
	return cur >> waiterBits, int(cur & waiterMask)
}

// arrive records that one worker has exhausted its slice of the current
// class. The arrival that brings the waiter count to workers advances the
// epoch and clears the count in the same CAS, guaranteeing the transition
// fires exactly once per epoch. Returns true when this call was the one that
// advanced the epoch.
func (w *epochWord) arrive(workers int) bool {
	for {
		cur := w.v.Load()
		epoch, waiting := cur>>waiterBits, int(cur&waiterMask)

		last := waiting+1 == workers
		var next uint64
		if last {
			next = pack(epoch+1, 0)
		} else {
			next = pack(epoch, waiting+1)
		}
		if w.v.CompareAndSwap(cur, next) {
			return last
		}
	}
}
