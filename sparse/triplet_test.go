package sparse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rsamg/sparse"
)

func TestLoadTripletsBasic(t *testing.T) {
	m, err := sparse.LoadTriplets(strings.NewReader(
		"3 3 5\n" +
			"0 0 2\n" +
			"0 1 -1\n" +
			"1 0 -1\n" +
			"1 1 2\n" +
			"2 2 2\n",
	))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.Equal(t, 3, m.Rows)
	require.Equal(t, 3, m.Cols)
	require.Equal(t, 5, m.Nnz())
	require.Equal(t, 2.0, m.Get(0, 0))
	require.Equal(t, -1.0, m.Get(0, 1))
	require.Equal(t, -1.0, m.Get(1, 0))
	require.Equal(t, 0.0, m.Get(0, 2))
}

func TestLoadTripletsOutOfOrderRowsAreSorted(t *testing.T) {
	m, err := sparse.LoadTriplets(strings.NewReader(
		"2 2 2\n" +
			"1 1 4\n" +
			"0 0 3\n",
	))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.Equal(t, 3.0, m.Get(0, 0))
	require.Equal(t, 4.0, m.Get(1, 1))
}

func TestLoadTripletsSumsDuplicateEntries(t *testing.T) {
	m, err := sparse.LoadTriplets(strings.NewReader(
		"1 1 2\n" +
			"0 0 1\n" +
			"0 0 4\n",
	))
	require.NoError(t, err)
	require.Equal(t, 1, m.Nnz())
	require.Equal(t, 5.0, m.Get(0, 0))
}

func TestLoadTripletsSkipsBlankLines(t *testing.T) {
	m, err := sparse.LoadTriplets(strings.NewReader(
		"1 1 1\n" +
			"\n" +
			"0 0 7\n" +
			"\n",
	))
	require.NoError(t, err)
	require.Equal(t, 7.0, m.Get(0, 0))
}

func TestLoadTripletsRejectsMalformedHeader(t *testing.T) {
	_, err := sparse.LoadTriplets(strings.NewReader("2 2\n0 0 1\n"))
	require.Error(t, err)
}

func TestLoadTripletsRejectsOutOfRangeEntry(t *testing.T) {
	_, err := sparse.LoadTriplets(strings.NewReader("2 2 1\n5 0 1\n"))
	require.Error(t, err)
}

func TestLoadTripletsRejectsMalformedValue(t *testing.T) {
	_, err := sparse.LoadTriplets(strings.NewReader("1 1 1\n0 0 notanumber\n"))
	require.Error(t, err)
}

func TestLoadTripletsRejectsEmptyInput(t *testing.T) {
	_, err := sparse.LoadTriplets(strings.NewReader(""))
	require.Error(t, err)
}

func TestLoadTripletsFileMissingPath(t *testing.T) {
	_, err := sparse.LoadTripletsFile("/nonexistent/path/does-not-exist.triplets")
	require.Error(t, err)
}
