package diag

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// LambdaHistogram renders the distribution of ClassicalSplitter's initial
// priority values lambda[] as a bar chart, following the teacher's
// mna/debug.Charts.Render(w io.Writer) error shape (io.Writer sink, single
// Render call) but backed by gonum.org/v1/plot instead of go-echarts, since
// this is a static numerical diagnostic rather than an interactive circuit
// trace viewer.
func LambdaHistogram(lambda []int) *plot.Plot {
	p := plot.New()
	p.Title.Text = "ClassicalSplitter lambda priority distribution"
	p.X.Label.Text = "lambda"
	p.Y.Label.Text = "count"

	if len(lambda) == 0 {
		return p
	}
	lambdaMax := 0
	for _, l := range lambda {
		if l > lambdaMax {
			lambdaMax = l
		}
	}
	counts := make(plotter.Values, lambdaMax+1)
	for _, l := range lambda {
		counts[l]++
	}
	bars, err := plotter.NewBarChart(counts, vg.Points(6))
	if err != nil {
		return p
	}
	p.Add(bars)
	return p
}

// SparsityPattern renders a CSR matrix's nonzero locations as a scatter
// plot, row index on Y (inverted so row 0 is at the top, matching the usual
// spy() convention) against column index on X.
func SparsityPattern(rows int, rowptr, colind []int) *plot.Plot {
	p := plot.New()
	p.Title.Text = "sparsity pattern"
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"

	pts := make(plotter.XYs, len(colind))
	idx := 0
	for row := 0; row < rows; row++ {
		for _, j := range colind[rowptr[row]:rowptr[row+1]] {
			pts[idx] = plotter.XY{X: float64(j), Y: float64(rows - row)}
			idx++
		}
	}
	scatter, err := plotter.NewScatter(pts[:idx])
	if err != nil {
		return p
	}
	scatter.GlyphStyle.Radius = vg.Points(1)
	p.Add(scatter)
	return p
}

// RenderPNG writes p to w as a PNG at the given size, the plot-package
// equivalent of the teacher's Charts.Render(w io.Writer) error.
func RenderPNG(p *plot.Plot, width, height vg.Length, w io.Writer) error {
	writerTo, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("diag: render plot: %w", err)
	}
	_, err = writerTo.WriteTo(w)
	return err
}
