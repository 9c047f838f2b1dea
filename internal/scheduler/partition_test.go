package scheduler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuildPartition(t *testing.T) {
	t.Run("buckets vertices by color preserving order", func(t *testing.T) {
		colors := []int{0, 1, 0, 2, 1, 0}
		p := buildPartition(len(colors), func(v int) int { return colors[v] })

		assert.Equal(t, 3, p.numClasses())
		assert.Equal(t, 6, p.numVertices())

		want := [][]int{
			{0, 2, 5},
			{1, 4},
			{3},
		}
		if diff := cmp.Diff(want, p.classes); diff != "" {
			t.Errorf("partition mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("grows classes for gaps in the color range", func(t *testing.T) {
		// Color 1 is never assigned; its class exists but is empty.
		colors := []int{0, 2, 2}
		p := buildPartition(len(colors), func(v int) int { return colors[v] })

		assert.Equal(t, 3, p.numClasses())
		assert.Empty(t, p.class(1))
		assert.Equal(t, []int{1, 2}, p.class(2))
	})

	t.Run("empty graph yields empty partition", func(t *testing.T) {
		p := buildPartition(0, func(v int) int { return 0 })
		assert.Equal(t, 0, p.numClasses())
		assert.Equal(t, 0, p.numVertices())
	})
}
