package strength_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rsamg/sparse"
	"rsamg/strength"
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

func toDense(m *sparse.Matrix[float64]) [][]float64 {
	out := make([][]float64, m.Rows)
	for i := range out {
		out[i] = make([]float64, m.Cols)
		cols, vals := m.Row(i)
		for k, c := range cols {
			out[i][c] = vals[k]
		}
	}
	return out
}

func tridiagonal() *sparse.Matrix[float64] {
	return fromDense(3, 3, [][]float64{
		{2, -1, 0},
		{-1, 2, -1},
		{0, -1, 2},
	})
}

// S1 — theta=0.5 on the 3x3 tridiagonal matrix: every off-diagonal qualifies
// (1 >= 0.5*1), so S equals A.
func TestClassicalS1(t *testing.T) {
	a := tridiagonal()
	s := strength.Classical(0.5, a)
	require.Equal(t, toDense(a), toDense(s))
}

// S2 — theta=1.5 on the same matrix: no off-diagonal qualifies (1 < 1.5),
// so S is diagonal with values [2,2,2].
func TestClassicalS2(t *testing.T) {
	a := tridiagonal()
	s := strength.Classical(1.5, a)
	require.Equal(t, [][]float64{
		{2, 0, 0},
		{0, 2, 0},
		{0, 0, 2},
	}, toDense(s))
}

// Property 1: row-pointer monotonicity and Xp[0]=0, for every theta.
func TestClassicalRowptrMonotone(t *testing.T) {
	a := tridiagonal()
	for _, theta := range []float64{0, 0.5, 1, 1.5, 2} {
		s := strength.Classical(theta, a)
		require.Equal(t, 0, s.Rowptr[0])
		for i := 0; i < s.Rows; i++ {
			require.LessOrEqual(t, s.Rowptr[i], s.Rowptr[i+1])
		}
	}
}

// Property 2: S contains exactly the off-diagonal entries passing the
// row-relative threshold, plus every present diagonal.
func TestClassicalFilterCorrectness(t *testing.T) {
	a := fromDense(3, 3, [][]float64{
		{4, -1, -3},
		{-2, 5, 0},
		{0, -1, 6},
	})
	const theta = 0.5
	s := strength.Classical(theta, a)

	for i := 0; i < a.Rows; i++ {
		cols, vals := a.Row(i)
		maxOffDiag := 0.0
		for k, c := range cols {
			if c != i {
				m := vals[k]
				if m < 0 {
					m = -m
				}
				if m > maxOffDiag {
					maxOffDiag = m
				}
			}
		}
		for k, c := range cols {
			v := vals[k]
			mag := v
			if mag < 0 {
				mag = -mag
			}
			admitted := c == i || mag >= theta*maxOffDiag
			got := s.Get(i, c)
			if admitted {
				require.Equal(t, v, got, "row %d col %d should be admitted", i, c)
			} else {
				require.Equal(t, 0.0, got, "row %d col %d should be filtered", i, c)
			}
		}
	}
}

// Property 3: every admitted entry's value is a bit-exact copy of A's value.
func TestClassicalValuesAreExactCopies(t *testing.T) {
	a := tridiagonal()
	s := strength.Classical(0.5, a)
	_, svals := s.Row(1)
	for _, v := range svals {
		require.Contains(t, []float64{-1, 2}, v)
	}
}

func TestSymmetricStrengthDiagonalAlwaysAdmitted(t *testing.T) {
	a := tridiagonal()
	s := strength.SymmetricStrength(2.0, a)
	for i := 0; i < a.Rows; i++ {
		require.Equal(t, a.Get(i, i), s.Get(i, i))
	}
}

func TestSymmetricStrengthZeroDiagonalAdmitsNoOffDiagonal(t *testing.T) {
	a := fromDense(2, 2, [][]float64{
		{0, -1},
		{-1, 3},
	})
	s := strength.SymmetricStrength(0.1, a)
	require.Equal(t, 0.0, s.Get(0, 1))
	require.Equal(t, 0.0, s.Get(1, 0))
}

func TestMaxRowValue(t *testing.T) {
	a := tridiagonal()
	x := strength.MaxRowValue(a)
	require.Equal(t, []float64{2, 2, 2}, x)
}

func TestMaxRowValueEmptyRow(t *testing.T) {
	a := sparse.New[float64](1, 1, 0)
	a.Rowptr = []int{0, 0}
	x := strength.MaxRowValue(a)
	require.Len(t, x, 1)
	require.True(t, x[0] < 0) // NegInf convention for an empty row
}
