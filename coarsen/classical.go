package coarsen

import (
	"rsamg/diag"
	"rsamg/scalar"
	"rsamg/sparse"
)

// bucketQueue is the priority-bucket structure from SPEC_FULL.md/DESIGN.md's
// grounding on pyamg's rs_cf_splitting: a flat array indexed by priority
// (lambda) value, combined with a pair of inverse permutations
// (indexToNode, nodeToIndex) so that nodes sharing a priority occupy one
// contiguous interval [intervalPtr[lambda], intervalPtr[lambda]+intervalCount[lambda]).
type bucketQueue struct {
	intervalPtr   []int
	intervalCount []int
	indexToNode   []int
	nodeToIndex   []int
}

// newBucketQueue builds the inverse permutation via counting sort on lambda,
// ascending, so the highest-priority node ends at position n-1.
func newBucketQueue(lambda []int, lambdaMax int) *bucketQueue {
	n := len(lambda)
	q := &bucketQueue{
		intervalPtr:   make([]int, lambdaMax),
		intervalCount: make([]int, lambdaMax),
		indexToNode:   make([]int, n),
		nodeToIndex:   make([]int, n),
	}
	for _, l := range lambda {
		q.intervalCount[l]++
	}
	cumsum := 0
	for i := 0; i < lambdaMax; i++ {
		q.intervalPtr[i] = cumsum
		cumsum += q.intervalCount[i]
		q.intervalCount[i] = 0
	}
	for i, l := range lambda {
		index := q.intervalPtr[l] + q.intervalCount[l]
		q.indexToNode[index] = i
		q.nodeToIndex[i] = index
		q.intervalCount[l]++
	}
	return q
}

// swap exchanges the nodes occupying positions a and b, maintaining the
// inverse permutation.
func (q *bucketQueue) swap(a, b int) {
	q.nodeToIndex[q.indexToNode[a]] = b
	q.nodeToIndex[q.indexToNode[b]] = a
	q.indexToNode[a], q.indexToNode[b] = q.indexToNode[b], q.indexToNode[a]
}

// promote moves node k, currently at priority lambdaK, to the last position
// of its interval and grows the lambdaK+1 interval to absorb it — the
// online-reorder step of §4.2 step 7. Callers must not invoke promote once
// lambda[k] has already reached lambdaMax-1 (the teacher's "invalid write!"
// clamp, enforced by ClassicalSplitter before calling).
func (q *bucketQueue) promote(k, lambdaK int) {
	oldPos := q.nodeToIndex[k]
	newPos := q.intervalPtr[lambdaK] + q.intervalCount[lambdaK] - 1
	q.swap(oldPos, newPos)
	q.intervalCount[lambdaK]--
	q.intervalCount[lambdaK+1]++
	q.intervalPtr[lambdaK+1] = newPos
}

// demote moves node j, currently at priority lambdaJ, to the first position
// of its interval and shrinks the lambdaJ interval in favor of lambdaJ-1 —
// the online-reorder step of §4.2 step 8.
func (q *bucketQueue) demote(j, lambdaJ int) {
	oldPos := q.nodeToIndex[j]
	newPos := q.intervalPtr[lambdaJ]
	q.swap(oldPos, newPos)
	q.intervalCount[lambdaJ]--
	q.intervalCount[lambdaJ-1]++
	q.intervalPtr[lambdaJ]++
	q.intervalPtr[lambdaJ-1] = q.intervalPtr[lambdaJ] - q.intervalCount[lambdaJ-1]
}

// ClassicalSplitter computes a C/F splitting of the n nodes of strength
// graph s (with transpose t), using the Ruge-Stuben first-pass coarsening
// algorithm of spec.md §4.2. influence[i] is added to node i's initial
// priority lambda[i] = |t-row i| + influence[i]; pass a zero slice for the
// unweighted algorithm. splitting must be preallocated to length n; on
// return every entry is FNode or CNode. Only s's and t's column-index
// arrays are read — neither matrix's values participate in the splitting.
func ClassicalSplitter[T scalar.Number](s, t *sparse.Matrix[T], influence []int, splitting []Label, logger diag.Logger) {
	logger = diag.OrNop(logger)
	n := s.Rows

	lambda := make([]int, n)
	lambdaMax := 0
	for i := 0; i < n; i++ {
		lambda[i] = (t.Rowptr[i+1] - t.Rowptr[i]) + influence[i]
		if lambda[i] > lambdaMax {
			lambdaMax = lambda[i]
		}
	}
	lambdaMax *= 2
	if n+1 > lambdaMax {
		lambdaMax = n + 1
	}

	q := newBucketQueue(lambda, lambdaMax)

	for i := range splitting {
		splitting[i] = UNode
	}
	for i := 0; i < n; i++ {
		tRow := t.Colind[t.Rowptr[i]:t.Rowptr[i+1]]
		if lambda[i] == 0 || (lambda[i] == 1 && len(tRow) == 1 && tRow[0] == i) {
			splitting[i] = FNode
		}
	}

	for topIndex := n - 1; topIndex >= 0; topIndex-- {
		i := q.indexToNode[topIndex]
		lambdaI := lambda[i]
		q.intervalCount[lambdaI]--

		if splitting[i] == FNode {
			continue
		}
		if splitting[i] != UNode {
			logger.Warnf("coarsen: ClassicalSplitter encountered node %d in unexpected state %v at top_index %d", i, splitting[i], topIndex)
			continue
		}

		// Tie-break: among nodes remaining in this interval, promote the
		// one with the largest original node index to topIndex.
		maxNode, maxIndex := i, topIndex
		for j := q.intervalPtr[lambdaI]; j < q.intervalPtr[lambdaI]+q.intervalCount[lambdaI]; j++ {
			if q.indexToNode[j] > maxNode {
				maxNode = q.indexToNode[j]
				maxIndex = j
			}
		}
		q.swap(topIndex, maxIndex)
		i = q.indexToNode[topIndex]

		splitting[i] = CNode

		// Two-phase F promotion over T-row i, avoiding processing a node
		// before its own F-status is decided.
		for _, j := range t.Colind[t.Rowptr[i]:t.Rowptr[i+1]] {
			if splitting[j] == UNode {
				splitting[j] = PreFNode
			}
		}
		for _, j := range t.Colind[t.Rowptr[i]:t.Rowptr[i+1]] {
			if splitting[j] != PreFNode {
				continue
			}
			splitting[j] = FNode
			for _, k := range s.Colind[s.Rowptr[j]:s.Rowptr[j+1]] {
				if splitting[k] != UNode {
					continue
				}
				if lambda[k] >= n-1 {
					continue // lambda saturated; no further increment (teacher's "invalid write!" guard)
				}
				q.promote(k, lambda[k])
				lambda[k]++
			}
		}

		// Decrement priority of every remaining strong neighbor of i.
		for _, j := range s.Colind[s.Rowptr[i]:s.Rowptr[i+1]] {
			if splitting[j] != UNode {
				continue
			}
			if lambda[j] == 0 {
				continue
			}
			q.demote(j, lambda[j])
			lambda[j]--
		}
	}
}
