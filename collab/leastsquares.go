package collab

import (
	"gonum.org/v1/gonum/mat"

	"rsamg/scalar"
)

// GonumLeastSquares implements LeastSquaresFunc[float64] over gonum's
// mat.Dense, matching the pack's own use of gonum.org/v1/gonum/mat for
// dense linear algebra (see the teacher's types.ValueBase current vectors).
// It solves via QR and falls back to a small Tikhonov-regularized
// normal-equations solve (solveMinNorm) when QR reports a rank-deficient
// system, matching spec.md §4.7's "when rank is
// deficient the least_squares primitive returns the minimum-norm solution".
func GonumLeastSquares(a, b, x []float64, m, n int, isColMajor bool) {
	dense := denseFrom(a, m, n, isColMajor)
	rhs := mat.NewVecDense(m, append([]float64(nil), b...))

	var qr mat.QR
	qr.Factorize(dense)
	var xVec mat.VecDense
	if err := qr.SolveVecTo(&xVec, false, rhs); err != nil || isSingular(&qr) {
		solveMinNorm(dense, rhs, &xVec, n)
	}
	for i := 0; i < n; i++ {
		x[i] = xVec.AtVec(i)
	}
}

func isSingular(qr *mat.QR) bool {
	var r mat.Dense
	qr.RTo(&r)
	rows, cols := r.Dims()
	m := rows
	if cols < m {
		m = cols
	}
	for i := 0; i < m; i++ {
		if r.At(i, i) == 0 {
			return true
		}
	}
	return false
}

// solveMinNorm falls back to a Tikhonov-regularized normal-equations solve
// (AᵀA + eps*I)x = Aᵀb, which converges to the minimum-norm least-squares
// solution as eps -> 0 and stays well-defined for singular AᵀA.
func solveMinNorm(a *mat.Dense, b *mat.VecDense, x *mat.VecDense, n int) {
	var ata mat.Dense
	ata.Mul(a.T(), a)
	const eps = 1e-12
	for i := 0; i < n; i++ {
		ata.Set(i, i, ata.At(i, i)+eps)
	}
	var atb mat.VecDense
	atb.MulVec(a.T(), b)
	x.SolveVec(&ata, &atb)
}

func denseFrom(a []float64, m, n int, isColMajor bool) *mat.Dense {
	if !isColMajor {
		return mat.NewDense(m, n, append([]float64(nil), a...))
	}
	rowMajor := make([]float64, m*n)
	for col := 0; col < n; col++ {
		for row := 0; row < m; row++ {
			rowMajor[row*n+col] = a[col*m+row]
		}
	}
	return mat.NewDense(m, n, rowMajor)
}

// NormalEquations returns a LeastSquaresFunc for any scalar type, solving
// the normal equations AᴴAx = Aᴴb via Gaussian elimination with partial
// pivoting (by magnitude). It is the generic fallback used for complex
// scalar types, which gonum's dense solvers do not support; float64 AIR
// systems should prefer GonumLeastSquares. Grounded on the teacher's own
// generic dense elimination in maths/lu.go, adapted here to a normal-
// equations least-squares solve rather than a square system solve.
func NormalEquations[T scalar.Number]() LeastSquaresFunc[T] {
	return func(a, b, x []T, m, n int, isColMajor bool) {
		at := func(row, col int) T {
			if isColMajor {
				return a[col*m+row]
			}
			return a[row*n+col]
		}

		// Normal equations: G = AᴴA (n x n), rhs = Aᴴb (n).
		g := make([]T, n*n)
		rhs := make([]T, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				var sum T
				for k := 0; k < m; k++ {
					sum += conj(at(k, i)) * at(k, j)
				}
				g[i*n+j] = sum
			}
			var sum T
			for k := 0; k < m; k++ {
				sum += conj(at(k, i)) * b[k]
			}
			rhs[i] = sum
		}

		// Tikhonov-regularize so a rank-deficient neighborhood still yields
		// a (minimum-norm-ish) solution instead of a divide by zero.
		const eps = 1e-12
		for i := 0; i < n; i++ {
			g[i*n+i] += scalar.FromReal[T](eps)
		}

		gaussianSolve(g, rhs, x, n)
	}
}

// conj returns the complex conjugate of v for complex types and v itself
// for real types.
func conj[T scalar.Number](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex64(complexConj(complex128(x)))).(T)
	case complex128:
		return any(complexConj(x)).(T)
	default:
		return v
	}
}

func complexConj(v complex128) complex128 { return complex(real(v), -imag(v)) }

// gaussianSolve solves g*x = rhs in place via Gaussian elimination with
// partial pivoting on scalar.Magnitude, an n x n dense system stored
// row-major in g.
func gaussianSolve[T scalar.Number](g []T, rhs []T, x []T, n int) {
	for col := 0; col < n; col++ {
		pivot := col
		best := scalar.Magnitude(g[col*n+col])
		for row := col + 1; row < n; row++ {
			if m := scalar.Magnitude(g[row*n+col]); m > best {
				best = m
				pivot = row
			}
		}
		if pivot != col {
			for k := 0; k < n; k++ {
				g[col*n+k], g[pivot*n+k] = g[pivot*n+k], g[col*n+k]
			}
			rhs[col], rhs[pivot] = rhs[pivot], rhs[col]
		}
		diag := g[col*n+col]
		if diag == 0 {
			continue // leave the column singular; x[col] resolves to 0 below
		}
		for row := col + 1; row < n; row++ {
			factor := g[row*n+col] / diag
			if factor == 0 {
				continue
			}
			for k := col; k < n; k++ {
				g[row*n+k] -= factor * g[col*n+k]
			}
			rhs[row] -= factor * rhs[col]
		}
	}

	for row := n - 1; row >= 0; row-- {
		diag := g[row*n+row]
		var sum T
		for k := row + 1; k < n; k++ {
			sum += g[row*n+k] * x[k]
		}
		if diag == 0 {
			x[row] = 0
			continue
		}
		x[row] = (rhs[row] - sum) / diag
	}
}
