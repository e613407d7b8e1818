// Package sparse defines the compressed-sparse-row container shared by every
// AMG setup kernel, generalized over scalar.Number the way the teacher's
// maths.sparseMatrix generalizes a CSR matrix over its element type, but
// exposed as flat Rowptr/Colind/Data slices rather than an opaque interface
// so kernels can operate directly on the arrays named in the kernel surface.
package sparse

import (
	"fmt"

	"rsamg/scalar"
)

// Matrix is an n_row x n_col matrix in CSR storage: Rowptr has length
// Rows+1, Colind and Data have length Rowptr[Rows] (== nnz). Column indices
// within a row may appear in any order; duplicates are not expected.
type Matrix[T scalar.Number] struct {
	Rows, Cols int
	Rowptr     []int
	Colind     []int
	Data       []T
}

// New allocates a Matrix with Rowptr sized for Rows rows and Colind/Data
// preallocated to capacity nnzHint (length 0, matching the teacher's
// NewSparseMatrix, which starts with an empty column-index slice and grows
// it as entries are built).
func New[T scalar.Number](rows, cols, nnzHint int) *Matrix[T] {
	return &Matrix[T]{
		Rows:   rows,
		Cols:   cols,
		Rowptr: make([]int, rows+1),
		Colind: make([]int, 0, nnzHint),
		Data:   make([]T, 0, nnzHint),
	}
}

// Nnz returns the number of stored entries.
func (m *Matrix[T]) Nnz() int {
	if len(m.Rowptr) == 0 {
		return 0
	}
	return m.Rowptr[len(m.Rowptr)-1]
}

// Row returns the column-index and value slices for row i.
func (m *Matrix[T]) Row(i int) ([]int, []T) {
	start, end := m.Rowptr[i], m.Rowptr[i+1]
	return m.Colind[start:end], m.Data[start:end]
}

// Get searches row i for column j and returns its value, or zero if absent.
// Rows are not assumed sorted, so this is a linear scan matching the
// "column indices within a row may appear in any order" invariant of §3.
func (m *Matrix[T]) Get(i, j int) T {
	cols, vals := m.Row(i)
	for k, c := range cols {
		if c == j {
			return vals[k]
		}
	}
	var zero T
	return zero
}

// Validate checks the CSR shape invariants of §3: Rowptr has the right
// length, starts at zero, is non-decreasing, and every column index is in
// range. It is ambient defensive plumbing exercised at pipeline entry
// points (setup.Run), not inside the hot per-row kernel loops.
func (m *Matrix[T]) Validate() error {
	if len(m.Rowptr) != m.Rows+1 {
		return fmt.Errorf("sparse: Rowptr has length %d, want %d", len(m.Rowptr), m.Rows+1)
	}
	if m.Rowptr[0] != 0 {
		return fmt.Errorf("sparse: Rowptr[0] = %d, want 0", m.Rowptr[0])
	}
	for i := 0; i < m.Rows; i++ {
		if m.Rowptr[i] > m.Rowptr[i+1] {
			return fmt.Errorf("sparse: Rowptr[%d]=%d > Rowptr[%d]=%d", i, m.Rowptr[i], i+1, m.Rowptr[i+1])
		}
	}
	nnz := m.Rowptr[m.Rows]
	if len(m.Colind) < nnz || len(m.Data) < nnz {
		return fmt.Errorf("sparse: Colind/Data shorter than nnz=%d", nnz)
	}
	for _, c := range m.Colind[:nnz] {
		if c < 0 || c >= m.Cols {
			return fmt.Errorf("sparse: column index %d out of range [0,%d)", c, m.Cols)
		}
	}
	return nil
}

// Transpose builds Sᵀ from S. Column indices in each output row are in
// ascending order of the corresponding row of S's pass order.
func Transpose[T scalar.Number](s *Matrix[T]) *Matrix[T] {
	t := New[T](s.Cols, s.Rows, s.Nnz())
	nnz := s.Nnz()
	t.Rowptr = make([]int, s.Cols+1)
	t.Colind = make([]int, nnz)
	t.Data = make([]T, nnz)

	for _, c := range s.Colind[:nnz] {
		t.Rowptr[c+1]++
	}
	for i := 0; i < s.Cols; i++ {
		t.Rowptr[i+1] += t.Rowptr[i]
	}

	next := append([]int(nil), t.Rowptr[:s.Cols]...)
	for row := 0; row < s.Rows; row++ {
		cols, vals := s.Row(row)
		for k, c := range cols {
			pos := next[c]
			t.Colind[pos] = row
			t.Data[pos] = vals[k]
			next[c]++
		}
	}
	return t
}
