package programs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vk/colorgrid/internal/graph"
	"github.com/vk/colorgrid/internal/task"
)

// ErrUnknownProgram is returned by Lookup for names not present in the
// registry. The app treats it as a fatal configuration error at startup.
var ErrUnknownProgram = errors.New("unknown vertex program")

// Program is a named vertex computation bound to a graph.
type Program interface {
	// Name returns the registry name of the program.
	Name() string
	// UpdateFunc returns the function the scheduler dispatches per vertex.
	UpdateFunc() task.UpdateFunc
}

// Factory constructs a program instance bound to g, allocating its
// per-vertex data.
type Factory func(g *graph.Graph) Program

var registry = map[string]Factory{}

// Register adds a factory under the given name. Panics on duplicates: a
// name collision is a programmer error caught at init time.
func Register(name string, f Factory) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("programs: duplicate registration of %q", name))
	}
	registry[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownProgram, name, Names())
	}
	return f, nil
}

// Names returns the registered program names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
