package interpolate

import (
	"rsamg/coarsen"
	"rsamg/diag"
	"rsamg/scalar"
	"rsamg/sparse"
)

// StandardInterpolatorPass1 has the same row-pointer shape as
// DirectInterpolatorPass1 — the two interpolators agree on P's sparsity
// pattern, differing only in how they weight strongly-connected
// C-neighbors — so it is implemented by delegation.
func StandardInterpolatorPass1[T scalar.Number](splitting []coarsen.Label, s *sparse.Matrix[T], bp []int) (nnz int) {
	return DirectInterpolatorPass1(splitting, s, bp)
}

// StandardInterpolator builds P via the standard Ruge-Stuben interpolation
// formula (A Multigrid Tutorial, p. 144): an F-point row's weight to
// strong C-neighbor j accounts for every strongly-connected F-neighbor k's
// indirect influence on j, weighted by the same-sign inner sum a_kl over
// k's strong C-neighbors, per spec.md §4.5. bj/bx must be preallocated to
// the nnz from StandardInterpolatorPass1 and bp must be its row pointer.
// Zero inner or outer denominators are reported via logger rather than
// silently producing NaN/Inf, though the resulting IEEE value is still
// written to bx (per spec.md §7, propagation is permitted, not suppressed).
func StandardInterpolator[T scalar.Number](a, s *sparse.Matrix[T], splitting []coarsen.Label, bp []int, bj []int, bx []T, logger diag.Logger) {
	logger = diag.OrNop(logger)
	n := len(splitting)

	for i := 0; i < n; i++ {
		if splitting[i] == coarsen.CNode {
			bj[bp[i]] = i
			bx[bp[i]] = 1
			continue
		}

		var denominator T
		_, aVals := a.Row(i)
		for _, v := range aVals {
			denominator += v
		}
		sCols, sVals := s.Row(i)
		for k, j := range sCols {
			if j != i {
				denominator -= sVals[k]
			}
		}
		if denominator == 0 {
			logger.Warnf("interpolate: StandardInterpolator row %d has zero outer denominator (diagonal plus weak connections)", i)
		}

		nnz := bp[i]
		for k, j := range sCols {
			if j == i || splitting[j] != coarsen.CNode {
				continue
			}
			bj[nnz] = j

			numerator := sVals[k]
			for kk, sj := range sCols {
				if sj == i || splitting[sj] != coarsen.FNode {
					continue
				}
				fNode := sj

				var aKJ T
				fCols, fVals := a.Row(fNode)
				for fi, col := range fCols {
					if col == j {
						aKJ = fVals[fi]
						break
					}
				}
				if aKJ == 0 {
					continue
				}

				var innerDenominator T
				innerAdded := false
				for _, l := range sCols {
					if l == i || splitting[l] != coarsen.CNode {
						continue
					}
					for fi, col := range fCols {
						if col == l && scalar.SameSign(aKJ, fVals[fi]) {
							innerAdded = true
							innerDenominator += fVals[fi]
						}
					}
				}
				if innerDenominator == 0 {
					if innerAdded {
						logger.Warnf("interpolate: StandardInterpolator row %d, C-point %d: inner denominator zero due to cancellation", i, j)
					} else {
						logger.Warnf("interpolate: StandardInterpolator row %d, C-point %d: strongly connected F-point %d has no connection to C_i", i, j, fNode)
					}
				}
				numerator += sVals[kk] * aKJ / innerDenominator
			}

			bx[nnz] = -numerator / denominator
			nnz++
		}
	}

	m := coarseIndexMap(splitting)
	total := bp[n]
	for i := 0; i < total; i++ {
		bj[i] = m[bj[i]]
	}
}
