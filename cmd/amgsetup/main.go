package main

import (
	"flag"
	"log"

	"rsamg/setup"
	"rsamg/sparse"
)

// buildSampleOperator returns the classic 1-D Poisson stencil A = tridiag(-1,
// 2, -1) on n nodes, the textbook example used throughout "A Multigrid
// Tutorial" to walk through Ruge-Stuben coarsening by hand. It is the
// fallback operator when no -matrix file is given.
func buildSampleOperator(n int) *sparse.Matrix[float64] {
	a := sparse.New[float64](n, n, 3*n)
	nnz := 0
	for i := 0; i < n; i++ {
		if i > 0 {
			a.Colind = append(a.Colind, i-1)
			a.Data = append(a.Data, -1)
			nnz++
		}
		a.Colind = append(a.Colind, i)
		a.Data = append(a.Data, 2)
		nnz++
		if i < n-1 {
			a.Colind = append(a.Colind, i+1)
			a.Data = append(a.Data, -1)
			nnz++
		}
		a.Rowptr[i+1] = nnz
	}
	return a
}

func main() {
	matrixPath := flag.String("matrix", "", "path to a sparse-triplet text file (\"rows cols nnz\" header, then \"row col value\" lines); defaults to a 20-node 1-D Poisson operator")
	n := flag.Int("n", 20, "node count for the built-in Poisson operator, used when -matrix is not given")
	theta := flag.Float64("theta", 0.25, "classical strength-of-connection threshold")
	splitter := flag.String("splitter", "classical", "C/F splitter: classical or cljp")
	interpolator := flag.String("interpolator", "direct", "interpolation operator: direct or standard")
	maxRowAIR := flag.Int("max-row-air", -1, "cap on AIR restriction row width; -1 for no cap")
	flag.Parse()

	var a *sparse.Matrix[float64]
	if *matrixPath != "" {
		loaded, err := sparse.LoadTripletsFile(*matrixPath)
		if err != nil {
			log.Fatalf("loading %s: %v", *matrixPath, err)
		}
		a = loaded
	} else {
		a = buildSampleOperator(*n)
	}

	cfg := setup.Config[float64]{
		Theta:     *theta,
		MaxRowAIR: *maxRowAIR,
	}
	switch *splitter {
	case "classical":
		cfg.Splitter = setup.ClassicalSplit
	case "cljp":
		cfg.Splitter = setup.CLJPSplit
	default:
		log.Fatalf("unknown -splitter %q: want classical or cljp", *splitter)
	}
	switch *interpolator {
	case "direct":
		cfg.Interpolator = setup.DirectInterp
	case "standard":
		cfg.Interpolator = setup.StandardInterp
	default:
		log.Fatalf("unknown -interpolator %q: want direct or standard", *interpolator)
	}

	result, err := setup.Run(cfg, a)
	if err != nil {
		log.Fatalf("setup failed: %v", err)
	}

	nc := result.P.Cols
	log.Printf("n=%d coarse points=%d", a.Rows, nc)
	log.Printf("P: %d x %d, nnz=%d", result.P.Rows, result.P.Cols, result.P.Nnz())
	log.Printf("R: %d x %d, nnz=%d", result.R.Rows, result.R.Cols, result.R.Nnz())
}
