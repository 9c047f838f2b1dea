package programs

import (
	"github.com/vk/colorgrid/internal/graph"
	"github.com/vk/colorgrid/internal/task"
)

const pagerankDamping = 0.85

func init() {
	Register("pagerank", func(g *graph.Graph) Program { return NewPageRank(g) })
}

// PageRank computes PageRank over the undirected graph with Gauss-Seidel
// style in-place updates: each vertex recomputes its rank from the current
// ranks of its neighbors. The colored schedule makes the neighbor reads safe
// without locks.
type PageRank struct {
	g     *graph.Graph
	ranks []float64
}

// NewPageRank binds a PageRank instance to g, starting from the uniform
// distribution.
func NewPageRank(g *graph.Graph) *PageRank {
	n := g.NumVertices()
	ranks := make([]float64, n)
	if n > 0 {
		initial := 1 / float64(n)
		for v := range ranks {
			ranks[v] = initial
		}
	}
	return &PageRank{g: g, ranks: ranks}
}

// Name implements Program.
func (p *PageRank) Name() string { return "pagerank" }

// UpdateFunc implements Program.
func (p *PageRank) UpdateFunc() task.UpdateFunc {
	n := float64(p.g.NumVertices())
	return func(scope *task.Scope, _ task.Callback) {
		sum := 0.0
		for _, u := range p.g.Neighbors(scope.Vertex) {
			sum += p.ranks[u] / float64(p.g.Degree(u))
		}
		p.ranks[scope.Vertex] = (1-pagerankDamping)/n + pagerankDamping*sum
	}
}

// Ranks returns the per-vertex rank values. Only meaningful once the run has
// finished.
func (p *PageRank) Ranks() []float64 { return p.ranks }
