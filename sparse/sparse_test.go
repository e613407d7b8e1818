package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rsamg/sparse"
)

// fromDense builds a Matrix from a dense row-major slice, skipping zero
// entries, matching the CSR convention the setup kernels assume.
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

func TestNewHasZeroNnz(t *testing.T) {
	m := sparse.New[float64](3, 3, 10)
	require.Equal(t, 0, m.Nnz())
	require.Equal(t, 3, m.Rows)
	require.Equal(t, 3, m.Cols)
	require.Len(t, m.Rowptr, 4)
}

func TestRowAndGet(t *testing.T) {
	m := fromDense(3, 3, [][]float64{
		{2, -1, 0},
		{-1, 2, -1},
		{0, -1, 2},
	})
	require.Equal(t, 7, m.Nnz())

	cols, vals := m.Row(1)
	require.Equal(t, []int{0, 1, 2}, cols)
	require.Equal(t, []float64{-1, 2, -1}, vals)

	require.Equal(t, 2.0, m.Get(0, 0))
	require.Equal(t, -1.0, m.Get(0, 1))
	require.Equal(t, 0.0, m.Get(0, 2)) // absent entry reads as zero
}

func TestValidateAcceptsWellFormedMatrix(t *testing.T) {
	m := fromDense(3, 3, [][]float64{
		{2, -1, 0},
		{-1, 2, -1},
		{0, -1, 2},
	})
	require.NoError(t, m.Validate())
}

func TestValidateRejectsBadRowptrLength(t *testing.T) {
	m := sparse.New[float64](3, 3, 0)
	m.Rowptr = []int{0, 0}
	require.Error(t, m.Validate())
}

func TestValidateRejectsNonMonotoneRowptr(t *testing.T) {
	m := sparse.New[float64](2, 2, 0)
	m.Rowptr = []int{0, 2, 1}
	m.Colind = []int{0, 1}
	m.Data = []float64{1, 1}
	require.Error(t, m.Validate())
}

func TestValidateRejectsOutOfRangeColumn(t *testing.T) {
	m := sparse.New[float64](2, 2, 0)
	m.Rowptr = []int{0, 1, 1}
	m.Colind = []int{5}
	m.Data = []float64{1}
	require.Error(t, m.Validate())
}

func TestTransposeRoundTrip(t *testing.T) {
	m := fromDense(2, 3, [][]float64{
		{1, 0, 2},
		{0, 3, 0},
	})
	tr := sparse.Transpose(m)
	require.Equal(t, 3, tr.Rows)
	require.Equal(t, 2, tr.Cols)
	require.Equal(t, m.Nnz(), tr.Nnz())

	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			require.Equal(t, m.Get(i, j), tr.Get(j, i))
		}
	}

	back := sparse.Transpose(tr)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			require.Equal(t, m.Get(i, j), back.Get(i, j))
		}
	}
}

func TestTransposeOfZeroMatrix(t *testing.T) {
	m := sparse.New[float64](2, 2, 0)
	m.Rowptr = []int{0, 0, 0}
	tr := sparse.Transpose(m)
	require.Equal(t, 0, tr.Nnz())
}
