package engine

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/vk/colorgrid/internal/ctxlog"
	"github.com/vk/colorgrid/internal/graph"
	"github.com/vk/colorgrid/internal/scheduler"
	"github.com/vk/colorgrid/internal/task"
)

// defaultWaitInterval is how long a worker sleeps after the scheduler
// reports StatusWaiting. The scheduler never blocks internally; idling
// policy belongs to the caller, and a short sleep after a yield keeps
// barrier spinning cheap without adding meaningful epoch latency.
const defaultWaitInterval = 50 * time.Microsecond

// Engine drives a fixed pool of workers against a scheduler.
type Engine struct {
	graph        *graph.Graph
	sched        scheduler.Scheduler
	workers      int
	waitInterval time.Duration
}

// New creates an engine with one goroutine per worker id 0..workers-1. The
// worker count must match the one the scheduler was constructed with.
func New(g *graph.Graph, sched scheduler.Scheduler, workers int) *Engine {
	return &Engine{
		graph:        g,
		sched:        sched,
		workers:      workers,
		waitInterval: defaultWaitInterval,
	}
}

// Run starts the scheduler and blocks until every worker has observed
// StatusComplete. If ctx is cancelled mid-run the scheduler is aborted,
// workers drain, and ctx's error is returned.
func (e *Engine) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	if err := e.sched.Start(); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Map cancellation onto the scheduler's coarse whole-run abort. On a
	// normal finish the deferred cancel fires this too, which is harmless:
	// Abort is idempotent and the run is already complete.
	go func() {
		<-runCtx.Done()
		e.sched.Abort()
	}()

	logger.Info("🚀 Starting parallel execution.", "workers", e.workers)

	// counts[i] is written only by worker i while the pool runs.
	counts := make([]uint64, e.workers)
	var wg sync.WaitGroup
	wg.Add(e.workers)
	for i := 0; i < e.workers; i++ {
		go e.worker(runCtx, i, &wg, &counts[i])
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		logger.Warn("Execution aborted.", "error", err)
		return err
	}

	var total uint64
	for _, c := range counts {
		total += c
	}
	logger.Info("🏁 Execution finished.", "tasksExecuted", total)
	return nil
}

// worker is the dispatch loop for a single worker id.
func (e *Engine) worker(ctx context.Context, id int, wg *sync.WaitGroup, count *uint64) {
	defer wg.Done()
	logger := ctxlog.FromContext(ctx).With("workerID", id)
	logger.Debug("Worker started.")

	cb := e.sched.Callback(id)
	scope := task.Scope{Graph: e.graph, WorkerID: id}

	for {
		t, status := e.sched.NextTask(id)
		switch status {
		case scheduler.StatusNewTask:
			scope.Vertex = t.Vertex
			t.Fn(&scope, cb)
			e.sched.CompletedTask(id, t)
			*count++
		case scheduler.StatusWaiting:
			runtime.Gosched()
			time.Sleep(e.waitInterval)
		case scheduler.StatusComplete:
			logger.Debug("Worker finished.", "tasksExecuted", *count)
			return
		}
	}
}
