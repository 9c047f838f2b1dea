package graph

import "fmt"

// Graph is an undirected graph with a dense integer color per vertex.
// Mutation (AddEdge, SetColor) is only valid while the graph is being built;
// once the engine starts, the graph is read-only and safe for unsynchronized
// concurrent reads.
type Graph struct {
	// adj holds the neighbor list of each vertex. Edges are stored in both
	// directions.
	adj [][]int
	// colors holds the color of each vertex. A fresh graph has every vertex
	// in color 0.
	colors []int
	// numColors caches max(colors)+1, maintained by SetColor.
	numColors int
}

// New creates a graph with n vertices, no edges, and all vertices colored 0.
func New(n int) *Graph {
	g := &Graph{
		adj:    make([][]int, n),
		colors: make([]int, n),
	}
	if n > 0 {
		g.numColors = 1
	}
	return g
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int {
	return len(g.adj)
}

// NumEdges returns the number of undirected edges in the graph.
func (g *Graph) NumEdges() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}
	return total / 2
}

// AddEdge inserts the undirected edge (u, v). Self-loops are rejected: a
// vertex adjacent to itself could never be colored properly.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("self-loop on vertex %d is not allowed", u)
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	return nil
}

// Neighbors returns the neighbor list of v. The returned slice is owned by
// the graph and must not be modified.
func (g *Graph) Neighbors(v int) []int {
	return g.adj[v]
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int {
	return len(g.adj[v])
}

// Color returns the color assigned to v.
func (g *Graph) Color(v int) int {
	return g.colors[v]
}

// SetColor assigns color c to vertex v. Colors are expected to be dense,
// starting at zero.
func (g *Graph) SetColor(v, c int) {
	g.colors[v] = c
	if c+1 > g.numColors {
		g.numColors = c + 1
	}
}

// NumColors returns the number of color classes, i.e. max assigned color + 1.
// An empty graph has zero colors.
func (g *Graph) NumColors() int {
	return g.numColors
}

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("vertex %d out of range [0, %d)", v, len(g.adj))
	}
	return nil
}
