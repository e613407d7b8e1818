package collab

import "rsamg/maths"

// LULeastSquares implements LeastSquaresFunc[float64] over the dense normal
// equations AᵀAx = Aᵀb, factored with maths.NewLU's partial-pivoting LU
// decomposer. It is an alternative to GonumLeastSquares for callers that
// want the module's own dense solver rather than gonum's, at the cost of
// falling back to zero (rather than a regularized minimum-norm solution)
// when the normal equations are singular.
func LULeastSquares(a, b, x []float64, m, n int, isColMajor bool) {
	at := func(row, col int) float64 {
		if isColMajor {
			return a[col*m+row]
		}
		return a[row*n+col]
	}

	g, err := maths.NewLU[float64](n)
	if err != nil {
		return
	}
	gram := maths.NewDenseMatrix[float64](n, n)
	rhs := maths.NewDenseVector[float64](n)
	for i := 0; i < n; i++ {
		var sum float64
		for k := 0; k < m; k++ {
			sum += at(k, i) * b[k]
		}
		rhs.Set(i, sum)
		for j := 0; j < n; j++ {
			var s float64
			for k := 0; k < m; k++ {
				s += at(k, i) * at(k, j)
			}
			gram.Set(i, j, s)
		}
	}

	if err := g.Decompose(gram); err != nil {
		for i := range x[:n] {
			x[i] = 0
		}
		return
	}
	sol := maths.NewDenseVector[float64](n)
	if err := g.SolveReuse(rhs, sol); err != nil {
		for i := range x[:n] {
			x[i] = 0
		}
		return
	}
	for i := 0; i < n; i++ {
		x[i] = sol.Get(i)
	}
}
