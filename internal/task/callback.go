package task

// Callback is the task-injection capability handed to update functions. It
// mirrors the scheduler's registration surface so that an update function
// can schedule follow-up work from inside a vertex computation.
//
// Whether injection actually does anything is a property of the scheduling
// policy: dynamic policies queue the injected tasks, while static policies
// (such as the colored scheduler) hand out an inert implementation whose
// methods are no-ops.
type Callback interface {
	// AddTask requests that a single task be scheduled with the given priority.
	AddTask(t Task, priority float64)

	// AddTasks requests that fn be scheduled on each vertex in vertices.
	AddTasks(vertices []int, fn UpdateFunc, priority float64)

	// AddTaskToAll requests that fn be scheduled on every vertex in the graph.
	AddTaskToAll(fn UpdateFunc, priority float64)
}
