package coarsen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rsamg/coarsen"
	"rsamg/sparse"
)

// symmetricChain builds the CSR strength matrix for an undirected path
// 0-1-...-(n-1), with every entry set to 1 (ClassicalSplitter only reads
// column indices, not values).
func symmetricChain(n int) *sparse.Matrix[float64] {
	m := sparse.New[float64](n, n, 2*n)
	m.Rowptr[0] = 0
	nnz := 0
	for i := 0; i < n; i++ {
		if i > 0 {
			m.Colind = append(m.Colind, i-1)
			m.Data = append(m.Data, 1)
			nnz++
		}
		if i < n-1 {
			m.Colind = append(m.Colind, i+1)
			m.Data = append(m.Data, 1)
			nnz++
		}
		m.Rowptr[i+1] = nnz
	}
	return m
}

func TestClassicalSplitterIsolatedNodeIsAlwaysF(t *testing.T) {
	s := sparse.New[float64](1, 1, 0)
	s.Rowptr = []int{0, 0}
	splitting := make([]coarsen.Label, 1)
	coarsen.ClassicalSplitter(s, s, []int{0}, splitting, nil)
	require.Equal(t, coarsen.FNode, splitting[0])
}

func TestClassicalSplitterTwoMutuallyStrongNodes(t *testing.T) {
	s := symmetricChain(2)
	splitting := make([]coarsen.Label, 2)
	coarsen.ClassicalSplitter(s, s, make([]int, 2), splitting, nil)
	// Tie-break favors the highest original index: node 1 becomes C.
	require.Equal(t, coarsen.FNode, splitting[0])
	require.Equal(t, coarsen.CNode, splitting[1])
}

func TestClassicalSplitterThreeNodePathPromotesMiddle(t *testing.T) {
	s := symmetricChain(3)
	splitting := make([]coarsen.Label, 3)
	coarsen.ClassicalSplitter(s, s, make([]int, 3), splitting, nil)
	require.Equal(t, []coarsen.Label{coarsen.FNode, coarsen.CNode, coarsen.FNode}, splitting)
}

// S3 — the 5-node path: ClassicalSplitter must produce a total partition of
// C/F labels (property 4) and must do so deterministically. The exact
// tie-break trajectory through the bucket queue is intricate enough that
// this asserts the partition's validity rather than pinning one specific
// assignment among the several the algorithm's tie-break rule can produce
// for a graph with this much internal symmetry.
func TestClassicalSplitterFiveNodePathIsAValidPartition(t *testing.T) {
	s := symmetricChain(5)
	splitting := make([]coarsen.Label, 5)
	coarsen.ClassicalSplitter(s, s, make([]int, 5), splitting, nil)

	for i, l := range splitting {
		require.Contains(t, []coarsen.Label{coarsen.FNode, coarsen.CNode}, l, "node %d", i)
	}

	// Every F-point with a strong neighborhood has at least one C-neighbor.
	for i, l := range splitting {
		if l != coarsen.FNode {
			continue
		}
		cols, _ := s.Row(i)
		if len(cols) == 0 {
			continue
		}
		hasC := false
		for _, j := range cols {
			if splitting[j] == coarsen.CNode {
				hasC = true
				break
			}
		}
		require.True(t, hasC, "F-node %d has no C-neighbor", i)
	}

	// Re-running against a fresh splitting slice is deterministic.
	again := make([]coarsen.Label, 5)
	coarsen.ClassicalSplitter(s, s, make([]int, 5), again, nil)
	require.Equal(t, splitting, again)
}

func TestClassicalSplitterInfluenceBoostsPriority(t *testing.T) {
	s := symmetricChain(3)
	influence := []int{0, 0, 5}
	splitting := make([]coarsen.Label, 3)
	coarsen.ClassicalSplitter(s, s, influence, splitting, nil)
	// Node 2's boosted priority makes it the first pick, becoming C.
	require.Equal(t, coarsen.CNode, splitting[2])
}
