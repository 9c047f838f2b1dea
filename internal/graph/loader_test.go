package graph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdjList(t *testing.T) {
	t.Run("basic graph with comments and blanks", func(t *testing.T) {
		input := `# a triangle plus a pendant vertex
0 1 2

1 2
3 0
`
		g, err := ParseAdjList(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, 4, g.NumVertices())
		assert.Equal(t, 4, g.NumEdges())
		assert.ElementsMatch(t, []int{1, 2, 3}, g.Neighbors(0))
		assert.ElementsMatch(t, []int{0, 1}, g.Neighbors(2))
	})

	t.Run("duplicate edges are collapsed", func(t *testing.T) {
		g, err := ParseAdjList(strings.NewReader("0 1\n1 0\n0 1\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, g.NumEdges())
	})

	t.Run("isolated vertex via bare line", func(t *testing.T) {
		g, err := ParseAdjList(strings.NewReader("0 1\n5\n"))
		require.NoError(t, err)
		assert.Equal(t, 6, g.NumVertices())
		assert.Empty(t, g.Neighbors(5))
	})

	t.Run("empty input yields empty graph", func(t *testing.T) {
		g, err := ParseAdjList(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 0, g.NumVertices())
	})

	t.Run("error cases carry line numbers", func(t *testing.T) {
		_, err := ParseAdjList(strings.NewReader("0 1\nx 2\n"))
		assert.ErrorContains(t, err, "line 2")
		assert.ErrorContains(t, err, `"x"`)

		_, err = ParseAdjList(strings.NewReader("0 1\n1 -3\n"))
		assert.ErrorContains(t, err, "line 2")

		_, err = ParseAdjList(strings.NewReader("2 2\n"))
		assert.ErrorContains(t, err, "self-loop")
	})
}

func TestReadAdjList(t *testing.T) {
	t.Run("reads file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "g.adj")
		require.NoError(t, os.WriteFile(path, []byte("0 1 2\n1 2\n"), 0o644))

		g, err := ReadAdjList(path)
		require.NoError(t, err)
		assert.Equal(t, 3, g.NumVertices())
		assert.Equal(t, 3, g.NumEdges())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadAdjList(filepath.Join(t.TempDir(), "nope.adj"))
		assert.ErrorContains(t, err, "failed to open graph file")
	})

	t.Run("parse errors name the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.adj")
		require.NoError(t, os.WriteFile(path, []byte("bogus line\n"), 0o644))

		_, err := ReadAdjList(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, "bad.adj")
	})
}
