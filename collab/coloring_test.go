package collab_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rsamg/collab"
)

func TestGreedyColoringProducesProperColoring(t *testing.T) {
	// 4-cycle: 0-1-2-3-0.
	rowptr := []int{0, 2, 4, 6, 8}
	colind := []int{1, 3, 0, 2, 1, 3, 2, 0}
	coloring := make([]int, 4)
	collab.GreedyColoring(4, rowptr, colind, coloring)

	for v := 0; v < 4; v++ {
		require.GreaterOrEqual(t, coloring[v], 0)
		for _, u := range colind[rowptr[v]:rowptr[v+1]] {
			require.NotEqual(t, coloring[v], coloring[u], "adjacent vertices %d,%d share a color", v, u)
		}
	}
}

func TestGreedyColoringIsolatedVertexGetsColorZero(t *testing.T) {
	rowptr := []int{0, 0}
	colind := []int{}
	coloring := make([]int, 1)
	collab.GreedyColoring(1, rowptr, colind, coloring)
	require.Equal(t, 0, coloring[0])
}

func TestGreedyColoringDeterministic(t *testing.T) {
	rowptr := []int{0, 1, 3, 4}
	colind := []int{1, 0, 2, 1}
	a := make([]int, 3)
	b := make([]int, 3)
	collab.GreedyColoring(3, rowptr, colind, a)
	collab.GreedyColoring(3, rowptr, colind, b)
	require.Equal(t, a, b)
}
