package sparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// LoadTriplets reads a matrix from a sparse-triplet text format: a header
// line "rows cols nnz" followed by nnz lines of "row col value" (0-indexed,
// any order; repeated (row, col) pairs are summed). It is the CLI-facing
// counterpart to sparse.Matrix's flat CSR arrays — the equivalent of the
// teacher's netlist Load, but for a bare numerical operator instead of a
// circuit description.
func LoadTriplets(r io.Reader) (*Matrix[float64], error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("sparse: empty triplet input")
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 3 {
		return nil, fmt.Errorf("sparse: header line must be \"rows cols nnz\", got %q", scanner.Text())
	}
	rows, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("sparse: invalid row count %q: %w", header[0], err)
	}
	cols, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("sparse: invalid column count %q: %w", header[1], err)
	}
	nnzHint, err := strconv.Atoi(header[2])
	if err != nil {
		return nil, fmt.Errorf("sparse: invalid nnz count %q: %w", header[2], err)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("sparse: negative dimensions %dx%d", rows, cols)
	}

	type triplet struct {
		row, col int
		val      float64
	}
	triplets := make([]triplet, 0, nnzHint)

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("sparse: line %d: expected \"row col value\", got %q", lineNo, text)
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("sparse: line %d: invalid row %q: %w", lineNo, fields[0], err)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("sparse: line %d: invalid column %q: %w", lineNo, fields[1], err)
		}
		val, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("sparse: line %d: invalid value %q: %w", lineNo, fields[2], err)
		}
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return nil, fmt.Errorf("sparse: line %d: entry (%d, %d) out of bounds for a %dx%d matrix", lineNo, row, col, rows, cols)
		}
		triplets = append(triplets, triplet{row, col, val})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sparse: reading triplets: %w", err)
	}

	sort.SliceStable(triplets, func(i, j int) bool {
		if triplets[i].row != triplets[j].row {
			return triplets[i].row < triplets[j].row
		}
		return triplets[i].col < triplets[j].col
	})

	m := New[float64](rows, cols, len(triplets))
	count := 0
	i := 0
	for row := 0; row < rows; row++ {
		for i < len(triplets) && triplets[i].row == row {
			if count > m.Rowptr[row] && m.Colind[count-1] == triplets[i].col {
				m.Data[count-1] += triplets[i].val
			} else {
				m.Colind = append(m.Colind, triplets[i].col)
				m.Data = append(m.Data, triplets[i].val)
				count++
			}
			i++
		}
		m.Rowptr[row+1] = count
	}
	return m, nil
}

// LoadTripletsFile opens path and parses it via LoadTriplets.
func LoadTripletsFile(path string) (*Matrix[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadTriplets(f)
}
