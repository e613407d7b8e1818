package diag_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"rsamg/diag"
)

func TestLambdaHistogramEmptyInput(t *testing.T) {
	p := diag.LambdaHistogram(nil)
	require.NotNil(t, p)
}

func TestLambdaHistogramRenders(t *testing.T) {
	p := diag.LambdaHistogram([]int{1, 2, 2, 2, 1})
	var buf bytes.Buffer
	err := diag.RenderPNG(p, 4*vg.Inch, 4*vg.Inch, &buf)
	require.NoError(t, err)
	require.NotEmpty(t, buf.Bytes())
}

func TestSparsityPatternRenders(t *testing.T) {
	rowptr := []int{0, 1, 3, 4}
	colind := []int{0, 0, 2, 1}
	p := diag.SparsityPattern(3, rowptr, colind)
	var buf bytes.Buffer
	err := diag.RenderPNG(p, 4*vg.Inch, 4*vg.Inch, &buf)
	require.NoError(t, err)
	require.NotEmpty(t, buf.Bytes())
}
