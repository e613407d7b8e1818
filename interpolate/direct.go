// Package interpolate builds the prolongation operator P from a fine-grid
// matrix A, its strength-of-connection graph S, and a C/F splitting, via
// either direct or standard Ruge-Stuben interpolation.
package interpolate

import (
	"rsamg/coarsen"
	"rsamg/scalar"
	"rsamg/sparse"
)

// DirectInterpolatorPass1 computes P's row pointer (length n+1) and total
// nonzero count: one entry per C-point (the identity row), one entry per
// strongly-connected C-neighbor for every F-point. bp must be preallocated
// to length n+1.
func DirectInterpolatorPass1[T scalar.Number](splitting []coarsen.Label, s *sparse.Matrix[T], bp []int) (nnz int) {
	n := len(splitting)
	bp[0] = 0
	for i := 0; i < n; i++ {
		if splitting[i] == coarsen.CNode {
			nnz++
		} else {
			for _, j := range s.Colind[s.Rowptr[i]:s.Rowptr[i+1]] {
				if j != i && splitting[j] == coarsen.CNode {
					nnz++
				}
			}
		}
		bp[i+1] = nnz
	}
	return nnz
}

// coarseIndexMap returns, for every fine node i, the column index it
// occupies in the coarse-grid numbering: the count of C-points preceding i.
// Grounded on ruge_stuben.h's rs_direct_interpolation_pass2 std::vector<I> map.
func coarseIndexMap(splitting []coarsen.Label) []int {
	m := make([]int, len(splitting))
	sum := 0
	for i, l := range splitting {
		m[i] = sum
		if l == coarsen.CNode {
			sum++
		}
	}
	return m
}

// DirectInterpolator builds P via the classical direct-interpolation
// formula: a C-point row is the identity; an F-point row distributes its
// strong C-neighbor weights scaled by the ratio of full-row to strong-row
// sums of each sign, per spec.md §4.4. bj and bx must be preallocated to
// the nnz returned by DirectInterpolatorPass1, and bp must be the row
// pointer it produced.
func DirectInterpolator[T scalar.Number](a, s *sparse.Matrix[T], splitting []coarsen.Label, bp []int, bj []int, bx []T) {
	n := len(splitting)

	for i := 0; i < n; i++ {
		if splitting[i] == coarsen.CNode {
			bj[bp[i]] = i
			bx[bp[i]] = 1
			continue
		}

		var sumStrongPos, sumStrongNeg T
		sCols, sVals := s.Row(i)
		for k, j := range sCols {
			if j == i || splitting[j] != coarsen.CNode {
				continue
			}
			if scalar.IsNegative(sVals[k]) {
				sumStrongNeg += sVals[k]
			} else {
				sumStrongPos += sVals[k]
			}
		}

		var sumAllPos, sumAllNeg, diag T
		aCols, aVals := a.Row(i)
		for k, j := range aCols {
			if j == i {
				diag += aVals[k]
				continue
			}
			if scalar.IsNegative(aVals[k]) {
				sumAllNeg += aVals[k]
			} else {
				sumAllPos += aVals[k]
			}
		}

		alpha := sumAllNeg / sumStrongNeg
		beta := sumAllPos / sumStrongPos
		if sumStrongPos == 0 {
			diag += sumAllPos
			beta = 0
		}

		negCoeff := -alpha / diag
		posCoeff := -beta / diag

		nnz := bp[i]
		for k, j := range sCols {
			if j == i || splitting[j] != coarsen.CNode {
				continue
			}
			bj[nnz] = j
			if scalar.IsNegative(sVals[k]) {
				bx[nnz] = negCoeff * sVals[k]
			} else {
				bx[nnz] = posCoeff * sVals[k]
			}
			nnz++
		}
	}

	m := coarseIndexMap(splitting)
	total := bp[n]
	for i := 0; i < total; i++ {
		bj[i] = m[bj[i]]
	}
}
