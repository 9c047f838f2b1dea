package graph

import "fmt"

// GreedyColor assigns a proper coloring to g using deterministic first-fit:
// vertices are visited in id order and each takes the smallest color unused
// by its already-colored neighbors. Returns the number of colors used (at
// most max degree + 1). Any colors previously set on the graph are
// overwritten.
func GreedyColor(g *Graph) int {
	n := g.NumVertices()
	if n == 0 {
		return 0
	}

	const uncolored = -1
	for v := 0; v < n; v++ {
		g.colors[v] = uncolored
	}
	g.numColors = 0

	// taken[c] == v marks color c as used by a neighbor of the vertex
	// currently being colored.
	taken := make([]int, n)
	for c := range taken {
		taken[c] = uncolored
	}

	for v := 0; v < n; v++ {
		for _, u := range g.adj[v] {
			if g.colors[u] != uncolored {
				taken[g.colors[u]] = v
			}
		}
		c := 0
		for taken[c] == v {
			c++
		}
		g.SetColor(v, c)
	}
	return g.numColors
}

// ValidColoring reports whether the graph's current color assignment is a
// proper coloring, i.e. no edge is monochromatic. The scheduler assumes this
// holds and never checks it; callers should verify at startup.
func ValidColoring(g *Graph) error {
	for u := 0; u < g.NumVertices(); u++ {
		for _, v := range g.adj[u] {
			if g.colors[u] == g.colors[v] {
				return fmt.Errorf("improper coloring: adjacent vertices %d and %d share color %d", u, v, g.colors[u])
			}
		}
	}
	return nil
}
