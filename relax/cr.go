// Package relax implements compatible-relaxation helpers that promote
// additional coarse points from a candidate fine-point pool, as an optional
// refinement step between a C/F splitter and interpolation.
package relax

import (
	"rsamg/coarsen"
	"rsamg/scalar"
)

// CRHelper runs one step of the compatible-relaxation candidate-promotion
// pass (Falgout/Brannick 2010, steps 3.1d-3.1f), per spec.md §4.6. A in CSR
// gives the fine-grid connectivity; b is the target near-null-space vector;
// e is the relaxed error vector, overwritten in place with |e[p]/b[p]| for
// every current F-point. indices is the packed index array: indices[0] is
// the current F-point count nf, indices[1..nf] are F-point ids, and
// indices[nf+1..n] are C-point ids; it is rebuilt on return. splitting is
// mutated in place (some F-points are promoted to C-points). gamma must be
// preallocated to length n and is used as scratch for the candidate set
// measure. cost[0] accumulates relative work units, matching the teacher's
// convention of an explicit running cost counter rather than a timer.
func CRHelper[T scalar.Number](rowptr, colind []int, b []T, e []T, indices []int, splitting []coarsen.Label, gamma []T, thetaCS float64, cost []float64) {
	n := len(splitting)
	nnz := len(colind)
	numF := indices[0]

	var infNorm float64
	for i := 1; i <= numF; i++ {
		p := indices[i]
		v := scalar.Magnitude(e[p] / b[p])
		e[p] = scalar.FromReal[T](v)
		if v > infNorm {
			infNorm = v
		}
	}
	cost[0] += float64(numF) / float64(nnz)

	candidates := make([]int, 0, numF)
	for i := 1; i <= numF; i++ {
		p := indices[i]
		g := scalar.Magnitude(e[p])
		if infNorm != 0 {
			g /= infNorm
		}
		gamma[p] = scalar.FromReal[T](g)
		if g > thetaCS {
			candidates = append(candidates, p)
		}
	}
	cost[0] += float64(numF) / float64(nnz)

	omega := make([]float64, n)
	for _, p := range candidates {
		numNeighbors := 0
		for _, q := range colind[rowptr[p]:rowptr[p+1]] {
			if splitting[q] == coarsen.FNode {
				numNeighbors++
			}
		}
		omega[p] = float64(numNeighbors) + scalar.Magnitude(gamma[p])
	}

	for {
		maxWeight := 0.0
		newPt := -1
		for _, p := range candidates {
			if omega[p] > maxWeight {
				maxWeight = omega[p]
				newPt = p
			}
		}
		if newPt < 0 {
			break
		}
		splitting[newPt] = coarsen.CNode
		gamma[newPt] = 0
		omega[newPt] = 0

		neighbors := append([]int(nil), colind[rowptr[newPt]:rowptr[newPt+1]]...)
		for _, q := range neighbors {
			omega[q] = 0
		}
		for _, q := range neighbors {
			for _, r := range colind[rowptr[q]:rowptr[q+1]] {
				if omega[r] != 0 {
					omega[r]++
				}
			}
		}
	}

	nextF, nextC := 1, n
	newNumF := 0
	for i := 0; i < n; i++ {
		if splitting[i] == coarsen.FNode {
			indices[nextF] = i
			nextF++
			newNumF++
		} else {
			indices[nextC] = i
			nextC--
		}
	}
	indices[0] = newNumF
}
