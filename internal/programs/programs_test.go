package programs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/colorgrid/internal/graph"
	"github.com/vk/colorgrid/internal/task"
)

func TestRegistry(t *testing.T) {
	t.Run("bundled programs are registered", func(t *testing.T) {
		names := Names()
		assert.Contains(t, names, "pagerank")
		assert.Contains(t, names, "components")
		assert.IsIncreasing(t, names)
	})

	t.Run("lookup returns a working factory", func(t *testing.T) {
		f, err := Lookup("pagerank")
		require.NoError(t, err)
		p := f(graph.New(3))
		assert.Equal(t, "pagerank", p.Name())
		assert.NotNil(t, p.UpdateFunc())
	})

	t.Run("unknown program", func(t *testing.T) {
		_, err := Lookup("bfs")
		require.ErrorIs(t, err, ErrUnknownProgram)
		assert.ErrorContains(t, err, "pagerank")
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		assert.Panics(t, func() {
			Register("pagerank", func(g *graph.Graph) Program { return NewPageRank(g) })
		})
	})
}

func TestPageRankSequential(t *testing.T) {
	// Triangle: symmetric, so ranks stay uniform and sum to 1 under
	// sequential sweeps.
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))

	pr := NewPageRank(g)
	fn := pr.UpdateFunc()
	for iter := 0; iter < 10; iter++ {
		for v := 0; v < 3; v++ {
			fn(&task.Scope{Vertex: v, Graph: g}, nil)
		}
	}

	sum := 0.0
	for _, r := range pr.Ranks() {
		assert.InDelta(t, 1.0/3, r, 1e-12)
		sum += r
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestComponentsSequential(t *testing.T) {
	// Path 0-1-2 plus isolated vertex 3.
	g := graph.New(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	comp := NewComponents(g)
	fn := comp.UpdateFunc()
	for iter := 0; iter < 4; iter++ {
		for v := 0; v < 4; v++ {
			fn(&task.Scope{Vertex: v, Graph: g}, nil)
		}
	}

	assert.Equal(t, []int{0, 0, 0, 3}, comp.Labels())
}
