// Package restrict builds the restriction operator R from the strength
// matrix and fine-grid operator A via approximate ideal restriction (AIR):
// a dense least-squares system solved per C-point over its strongly
// connected F-point neighborhood.
package restrict

import (
	"sort"

	"rsamg/coarsen"
	"rsamg/collab"
	"rsamg/scalar"
	"rsamg/sparse"
)

// strongWeakEpsilon is the magnitude threshold below which a strength
// entry is treated as structurally absent, per spec.md §4.7 ("|C_data[pos]|
// > 1e-16").
const strongWeakEpsilon = 1e-16

// AIRPass1 determines R's sparsity: row cp's neighborhood is the strongly
// connected F-points in C's row for cp, capped at maxRow entries (the
// weakest entries are zeroed out of c.Data in place and dropped from the
// neighborhood when it overflows maxRow). rowptr must be preallocated to
// length len(cpts)+1. Pass maxRow = -1 for "no cap" (math.MaxInt semantics).
func AIRPass1[T scalar.Number](c *sparse.Matrix[T], cpts []int, splitting []coarsen.Label, maxRow int) (rowptr []int) {
	if maxRow < 0 {
		maxRow = len(splitting) + 1
	}
	rowptr = make([]int, len(cpts)+1)
	nnz := 0
	rowptr[0] = 0

	for row, cp := range cpts {
		cols, vals := c.Row(cp)
		type entry struct {
			pos int
			val float64
		}
		var neighborhood []entry
		for k, j := range cols {
			if splitting[j] == coarsen.FNode && scalar.Magnitude(vals[k]) > strongWeakEpsilon {
				neighborhood = append(neighborhood, entry{pos: c.Rowptr[cp] + k, val: scalar.Real(vals[k])})
			}
		}

		size := len(neighborhood)
		if size > maxRow {
			// Ascending by raw (signed) value, matching pyamg's sort_2nd: for
			// the ordinary negative-dominant off-diagonal case this puts the
			// strongest (most negative) entries first, so the surviving
			// [0, maxRow) prefix is the strongest and the zeroed
			// [maxRow, size) tail is the weakest.
			sort.Slice(neighborhood, func(a, b int) bool { return neighborhood[a].val < neighborhood[b].val })
			for i := maxRow; i < size; i++ {
				c.Data[neighborhood[i].pos] = 0
			}
			size = maxRow
		}

		nnz += 1 + size
		rowptr[row+1] = nnz
	}
	return rowptr
}

// AIRPass2 fills R's column indices and values. rowptr must be the array
// AIRPass1 produced (after its in-place zeroing of c.Data); colinds and
// data must be preallocated to rowptr[len(cpts)]. solve is the
// least_squares collaborator (see collab.LeastSquaresFunc); pass
// collab.NormalEquations[T]() for a dependency-free fallback or a
// gonum-backed solver for float64.
func AIRPass2[T scalar.Number](rowptr []int, a, c *sparse.Matrix[T], cpts []int, splitting []coarsen.Label, colinds []int, data []T, solve collab.LeastSquaresFunc[T]) {
	for row, cp := range cpts {
		ind := rowptr[row]
		cCols, cVals := c.Row(cp)
		for k, j := range cCols {
			if splitting[j] == coarsen.FNode && scalar.Magnitude(cVals[k]) > strongWeakEpsilon {
				colinds[ind] = j
				ind++
			}
		}

		sizeN := ind - rowptr[row]
		nf := colinds[rowptr[row]:ind]

		// A0 column-major: A0[i,j] = A[nf[j], nf[i]].
		a0 := make([]T, sizeN*sizeN)
		for j, colNode := range nf {
			rowCols, rowVals := a.Row(colNode)
			for i, targetCol := range nf {
				var v T
				for k, col := range rowCols {
					if col == targetCol {
						v = rowVals[k]
						break
					}
				}
				a0[j*sizeN+i] = v
			}
		}

		b0 := make([]T, sizeN)
		cpCols, cpVals := a.Row(cp)
		for i, targetCol := range nf {
			for k, col := range cpCols {
				if col == targetCol {
					b0[i] = cpVals[k]
					break
				}
			}
		}

		if sizeN > 0 {
			solve(a0, b0, data[rowptr[row]:rowptr[row]+sizeN], sizeN, sizeN, true)
		}

		colinds[ind] = cp
		data[ind] = 1
	}
}
