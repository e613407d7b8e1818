// Package setup orchestrates the leaf kernels (strength, coarsen,
// interpolate, restrict) into the classical Ruge-Stuben setup phase,
// mirroring pyamg's classical.ruge_stuben_solver/extend_hierarchy minus the
// excluded Galerkin product and smoother attachment.
package setup

import (
	"errors"
	"fmt"

	"rsamg/coarsen"
	"rsamg/collab"
	"rsamg/diag"
	"rsamg/interpolate"
	"rsamg/relax"
	"rsamg/restrict"
	"rsamg/scalar"
	"rsamg/sparse"
	"rsamg/strength"
)

// StrengthMeasure selects the strength-of-connection kernel.
type StrengthMeasure int

const (
	ClassicalStrength StrengthMeasure = iota
	SymmetricStrength
)

// SplitterKind selects the C/F splitting algorithm.
type SplitterKind int

const (
	ClassicalSplit SplitterKind = iota
	CLJPSplit
)

// InterpolatorKind selects the prolongation formula.
type InterpolatorKind int

const (
	DirectInterp InterpolatorKind = iota
	StandardInterp
)

// CompatibleRelaxationConfig holds the inputs relax.CRHelper needs, beyond
// what Run already computes. It is optional: a nil CompatibleRelax in
// Config skips the refinement entirely.
type CompatibleRelaxationConfig[T scalar.Number] struct {
	B       []T
	E       []T
	ThetaCS float64
}

// Config parameterizes a single call to Run.
type Config[T scalar.Number] struct {
	Theta           float64
	Strength        StrengthMeasure
	Splitter        SplitterKind
	Influence       []int // ClassicalSplitter's optional per-node lambda boost; nil for unweighted
	UseColoring     bool  // CLJPSplitter only
	Coloring        collab.ColoringFunc
	Interpolator    InterpolatorKind
	CompatibleRelax *CompatibleRelaxationConfig[T]
	MaxRowAIR       int // <0 means unbounded
	LeastSquares    collab.LeastSquaresFunc[T]
	Logger          diag.Logger
}

// Result holds every output of the setup phase.
type Result[T scalar.Number] struct {
	S         *sparse.Matrix[T]
	Splitting []coarsen.Label
	P         *sparse.Matrix[T]
	R         *sparse.Matrix[T]
}

// Run executes the full classical setup pipeline against A, returning the
// strength matrix, C/F splitting, prolongator P, and restriction R.
func Run[T scalar.Number](cfg Config[T], a *sparse.Matrix[T]) (Result[T], error) {
	if err := a.Validate(); err != nil {
		return Result[T]{}, fmt.Errorf("setup: invalid input matrix: %w", err)
	}
	if a.Rows != a.Cols {
		return Result[T]{}, errors.New("setup: A must be square")
	}
	logger := diag.OrNop(cfg.Logger)
	n := a.Rows

	var s *sparse.Matrix[T]
	switch cfg.Strength {
	case SymmetricStrength:
		s = strength.SymmetricStrength(cfg.Theta, a)
	default:
		s = strength.Classical(cfg.Theta, a)
	}
	if err := s.Validate(); err != nil {
		return Result[T]{}, fmt.Errorf("setup: strength matrix invalid: %w", err)
	}

	t := sparse.Transpose(s)

	influence := cfg.Influence
	if influence == nil {
		influence = make([]int, n)
	}

	splitting := make([]coarsen.Label, n)
	switch cfg.Splitter {
	case CLJPSplit:
		coarsen.CLJPSplitter(s, t, splitting, cfg.UseColoring, cfg.Coloring, logger)
	default:
		coarsen.ClassicalSplitter(s, t, influence, splitting, logger)
	}

	if cr := cfg.CompatibleRelax; cr != nil {
		indices := buildIndices(splitting)
		gamma := make([]T, n)
		cost := make([]float64, 1)
		relax.CRHelper(a.Rowptr, a.Colind, cr.B, cr.E, indices, splitting, gamma, cr.ThetaCS, cost)
	}

	nc := 0
	for _, l := range splitting {
		if l == coarsen.CNode {
			nc++
		}
	}

	bp := make([]int, n+1)
	var pnnz int
	switch cfg.Interpolator {
	case StandardInterp:
		pnnz = interpolate.StandardInterpolatorPass1(splitting, s, bp)
	default:
		pnnz = interpolate.DirectInterpolatorPass1(splitting, s, bp)
	}
	bj := make([]int, pnnz)
	bx := make([]T, pnnz)
	switch cfg.Interpolator {
	case StandardInterp:
		interpolate.StandardInterpolator(a, s, splitting, bp, bj, bx, logger)
	default:
		interpolate.DirectInterpolator(a, s, splitting, bp, bj, bx)
	}
	p := &sparse.Matrix[T]{Rows: n, Cols: nc, Rowptr: bp, Colind: bj, Data: bx}

	cpts := make([]int, 0, nc)
	for i, l := range splitting {
		if l == coarsen.CNode {
			cpts = append(cpts, i)
		}
	}

	leastSquares := cfg.LeastSquares
	if leastSquares == nil {
		leastSquares = collab.NormalEquations[T]()
	}
	rRowptr := restrict.AIRPass1(s, cpts, splitting, cfg.MaxRowAIR)
	rNnz := rRowptr[len(cpts)]
	rColind := make([]int, rNnz)
	rData := make([]T, rNnz)
	restrict.AIRPass2(rRowptr, a, s, cpts, splitting, rColind, rData, leastSquares)
	r := &sparse.Matrix[T]{Rows: nc, Cols: n, Rowptr: rRowptr, Colind: rColind, Data: rData}

	return Result[T]{S: s, Splitting: splitting, P: p, R: r}, nil
}

// buildIndices packs splitting into the indices[] layout relax.CRHelper
// expects: indices[0] = F-count, F-point ids ascending in 1..nf, C-point
// ids descending in the tail.
func buildIndices(splitting []coarsen.Label) []int {
	n := len(splitting)
	indices := make([]int, n+1)
	nextF, nextC, numF := 1, n, 0
	for i, l := range splitting {
		if l == coarsen.FNode {
			indices[nextF] = i
			nextF++
			numF++
		} else {
			indices[nextC] = i
			nextC--
		}
	}
	indices[0] = numF
	return indices
}
