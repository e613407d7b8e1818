package interpolate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rsamg/coarsen"
	"rsamg/interpolate"
	"rsamg/sparse"
)

func fromDense(rows, cols int, dense [][]float64) *sparse.Matrix[float64] {
	m := sparse.New[float64](rows, cols, rows*cols)
	m.Rowptr[0] = 0
	nnz := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if dense[i][j] != 0 {
				m.Colind = append(m.Colind, j)
				m.Data = append(m.Data, dense[i][j])
				nnz++
			}
		}
		m.Rowptr[i+1] = nnz
	}
	return m
}

func runDirect(a, s *sparse.Matrix[float64], splitting []coarsen.Label) *sparse.Matrix[float64] {
	n := len(splitting)
	bp := make([]int, n+1)
	nnz := interpolate.DirectInterpolatorPass1(splitting, s, bp)
	bj := make([]int, nnz)
	bx := make([]float64, nnz)
	interpolate.DirectInterpolator(a, s, splitting, bp, bj, bx)
	nc := 0
	for _, l := range splitting {
		if l == coarsen.CNode {
			nc++
		}
	}
	return &sparse.Matrix[float64]{Rows: n, Cols: nc, Rowptr: bp, Colind: bj, Data: bx}
}

// S4 — direct interpolation on a single F-point with one strong C-neighbor.
// A-row = {(i,i):4, (i,j):-2}, S-row = {(i,i):4, (i,j):-2}. Expected Bx=0.5.
func TestDirectInterpolatorS4(t *testing.T) {
	a := fromDense(2, 2, [][]float64{
		{4, -2},
		{0, 1},
	})
	s := fromDense(2, 2, [][]float64{
		{4, -2},
		{0, 0},
	})
	splitting := []coarsen.Label{coarsen.FNode, coarsen.CNode}
	p := runDirect(a, s, splitting)

	cols, vals := p.Row(0)
	require.Equal(t, []int{0}, cols) // C-neighbor j=1 maps to coarse column 0
	require.InDelta(t, 0.5, vals[0], 1e-12)
}

// S5 — injection: C-point rows carry a single 1.0 entry at their own coarse
// column, with no other nonzeros.
func TestDirectInterpolatorS5Injection(t *testing.T) {
	a := fromDense(3, 3, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	s := fromDense(3, 3, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	splitting := []coarsen.Label{coarsen.CNode, coarsen.FNode, coarsen.CNode}
	p := runDirect(a, s, splitting)

	cols0, vals0 := p.Row(0)
	require.Equal(t, []int{0}, cols0)
	require.Equal(t, []float64{1}, vals0)

	cols2, vals2 := p.Row(2)
	require.Equal(t, []int{1}, cols2)
	require.Equal(t, []float64{1}, vals2)
}

// Property 7: map[i] = count of C-points strictly before i.
func TestDirectInterpolatorCoarseIndexMapping(t *testing.T) {
	a := fromDense(4, 4, [][]float64{
		{4, -1, 0, 0},
		{-1, 4, -1, 0},
		{0, -1, 4, -1},
		{0, 0, -1, 4},
	})
	s := a
	splitting := []coarsen.Label{coarsen.CNode, coarsen.FNode, coarsen.CNode, coarsen.FNode}
	p := runDirect(a, s, splitting)

	// C-point 0 (map 0) and C-point 2 (map 1); row 1 (F) strongly connects
	// to both C-points 0 and 2, so its P-row touches coarse columns {0,1}.
	cols1, _ := p.Row(1)
	require.ElementsMatch(t, []int{0, 1}, cols1)

	cols3, _ := p.Row(3)
	require.ElementsMatch(t, []int{1}, cols3)
}

// Property 1: row-pointer monotonicity on P.
func TestDirectInterpolatorRowptrMonotone(t *testing.T) {
	a := fromDense(3, 3, [][]float64{
		{4, -2, 0},
		{-2, 4, -2},
		{0, -2, 4},
	})
	s := a
	splitting := []coarsen.Label{coarsen.FNode, coarsen.CNode, coarsen.FNode}
	p := runDirect(a, s, splitting)
	require.Equal(t, 0, p.Rowptr[0])
	for i := 0; i < p.Rows; i++ {
		require.LessOrEqual(t, p.Rowptr[i], p.Rowptr[i+1])
	}
}
