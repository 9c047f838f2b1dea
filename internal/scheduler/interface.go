package scheduler

import (
	"errors"

	"github.com/vk/colorgrid/internal/task"
)

// Status is the outcome of a dispatch call.
type Status int

const (
	// StatusNewTask means a task was handed out and should be executed.
	StatusNewTask Status = iota
	// StatusWaiting means no task is available right now, but the run is not
	// over; the caller should idle briefly and call again. How to idle
	// (spin, sleep, yield) is the caller's choice; the scheduler never
	// blocks internally.
	StatusWaiting
	// StatusComplete means the run is finished; the worker should exit.
	// Terminal and idempotent.
	StatusComplete
)

// String implements fmt.Stringer for log output.
func (s Status) String() string {
	switch s {
	case StatusNewTask:
		return "new-task"
	case StatusWaiting:
		return "waiting"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Option names recognized by SetOption.
const (
	// OptionUpdateFunction sets the single global update function; the value
	// must be a task.UpdateFunc.
	OptionUpdateFunction = "update_function"
	// OptionMaxIterations bounds the number of full passes over all color
	// classes; the value must be a non-negative int. Unset means unbounded.
	OptionMaxIterations = "max_iterations"
)

var (
	// ErrNoUpdateFunction is returned by Start when no update function has
	// been registered. This is a fatal configuration error: the engine must
	// not dispatch any worker.
	ErrNoUpdateFunction = errors.New("no update function registered")

	// ErrUnsupportedOption is returned by SetOption for option names outside
	// the recognized set. The engine should treat it as fatal and refuse to
	// start.
	ErrUnsupportedOption = errors.New("unsupported scheduler option")

	// ErrInvalidOptionValue is returned by SetOption when the value has the
	// wrong type or is out of range for the named option.
	ErrInvalidOptionValue = errors.New("invalid scheduler option value")
)

// Scheduler is the protocol the engine's worker threads consume. All methods
// except construction must be safe to call from multiple goroutines;
// NextTask and CompletedTask must additionally be lock-free (they are on
// every worker's hot path).
type Scheduler interface {
	// Start (re)initializes all per-worker and shared state for a fresh run.
	// It fails with ErrNoUpdateFunction if no update function is registered.
	Start() error

	// Stop marks the run complete during normal engine shutdown. All
	// subsequent NextTask calls return StatusComplete.
	Stop()

	// Abort unconditionally marks the run complete. Not a graceful drain:
	// workers mid-dispatch simply observe StatusComplete on their next call.
	Abort()

	// NextTask asks for the next unit of work for the given worker. The
	// returned task is only valid when the status is StatusNewTask.
	NextTask(workerID int) (task.Task, Status)

	// CompletedTask reports that a previously dispatched task finished.
	CompletedTask(workerID int, t task.Task)

	// AddTask registers t's function as the global update function. See the
	// package documentation: the colored policy keeps exactly one function
	// and ignores priorities.
	AddTask(t task.Task, priority float64)

	// AddTasks registers fn as the global update function. The vertex subset
	// is accepted for interface compatibility only and does not restrict
	// scheduling.
	AddTasks(vertices []int, fn task.UpdateFunc, priority float64)

	// AddTaskToAll registers fn as the global update function.
	AddTaskToAll(fn task.UpdateFunc, priority float64)

	// Callback returns the task-injection handle passed to update functions
	// executed by the given worker.
	Callback(workerID int) task.Callback

	// SetOption configures the scheduler before Start. Unknown names return
	// ErrUnsupportedOption.
	SetOption(name string, value any) error
}
