// Package collab provides concrete implementations of the external
// collaborators named in spec.md §6 — mynorm, vertex_coloring_mis, and
// least_squares — that the setup kernels consume only through function-type
// interfaces. The kernels import collab only for those function types and,
// in coarsen.CLJPSplitter, for the GreedyColoring default used when no
// coloring is passed; callers (setup.Run, tests) choose the implementation.
package collab

import (
	"rsamg/scalar"
)

// MagnitudeFunc is the mynorm collaborator: a real-valued magnitude for a
// scalar of type T. scalar.Magnitude[T] satisfies this directly.
type MagnitudeFunc[T scalar.Number] func(T) float64

// ColoringFunc is the vertex_coloring_mis collaborator: given an n-vertex
// graph in CSR adjacency form (rowptr, colind), fill coloring[i] with a
// color in [0, ncolors) such that no two adjacent vertices share a color.
// GreedyColoring satisfies this.
type ColoringFunc func(n int, rowptr, colind []int, coloring []int)

// LeastSquaresFunc is the least_squares collaborator: solve min ||Ax-b||
// for the m x n dense matrix a (stored column-major if isColMajor, else
// row-major), writing the solution into x (length n). On rank deficiency,
// implementations should return the minimum-norm solution rather than an
// error.
type LeastSquaresFunc[T scalar.Number] func(a []T, b []T, x []T, m, n int, isColMajor bool)
