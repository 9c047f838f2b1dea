package programs

import (
	"github.com/vk/colorgrid/internal/graph"
	"github.com/vk/colorgrid/internal/task"
)

func init() {
	Register("components", func(g *graph.Graph) Program { return NewComponents(g) })
}

// Components labels connected components by min-label propagation: every
// vertex starts labeled with its own id and repeatedly adopts the smallest
// label among itself and its neighbors. After enough iterations (at most the
// graph diameter) all vertices in a component share the component's smallest
// vertex id.
type Components struct {
	g      *graph.Graph
	labels []int
}

// NewComponents binds a Components instance to g with identity labels.
func NewComponents(g *graph.Graph) *Components {
	labels := make([]int, g.NumVertices())
	for v := range labels {
		labels[v] = v
	}
	return &Components{g: g, labels: labels}
}

// Name implements Program.
func (c *Components) Name() string { return "components" }

// UpdateFunc implements Program.
func (c *Components) UpdateFunc() task.UpdateFunc {
	return func(scope *task.Scope, _ task.Callback) {
		best := c.labels[scope.Vertex]
		for _, u := range c.g.Neighbors(scope.Vertex) {
			if c.labels[u] < best {
				best = c.labels[u]
			}
		}
		c.labels[scope.Vertex] = best
	}
}

// Labels returns the per-vertex component labels.
func (c *Components) Labels() []int { return c.labels }
