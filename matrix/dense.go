// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support one-way freezing so that shared matrices cannot be mutated in place.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Submatrix: O(r'*c').
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxSubmatrix = "Submatrix"
	ctxFrom      = "NewDenseFrom"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Once frozen, a Dense never changes again and is safe for concurrent reads.
type Dense struct {
	r, c   int       // number of rows and columns
	data   []float64 // flat backing storage, length == r*c
	frozen bool      // set once by Freeze; never cleared
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a new Dense.
// Returns ErrInvalidDimensions for an empty input and ErrRagged when rows
// differ in length.
// Complexity: O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFrom, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxFrom, ErrRagged)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): reject frozen storage, then bounds check.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if m.frozen {
		return denseErrorf(ctxSet, row, col, ErrFrozen)
	}
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Freeze marks the matrix read-only. It is idempotent and cannot be undone;
// use Clone to obtain a writable copy.
func (m *Dense) Freeze() { m.frozen = true }

// Frozen reports whether Freeze has been called.
func (m *Dense) Frozen() bool { return m.frozen }

// Clone returns a deep, writable copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone with the concrete return type.
func (m *Dense) CloneDense() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawRows returns a deep copy of the contents as [][]float64.
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Submatrix materializes the rows×cols selection of m (numpy's ix_ indexing).
// Index order is preserved, duplicates are allowed.
// Returns ErrInvalidDimensions for an empty selection and ErrOutOfRange for
// any index outside m.
// Complexity: O(len(rows)*len(cols)).
func (m *Dense) Submatrix(rows, cols []int) (*Dense, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, matrixErrorf(ctxSubmatrix, ErrInvalidDimensions)
	}
	out := &Dense{r: len(rows), c: len(cols), data: make([]float64, len(rows)*len(cols))}
	for i, ri := range rows {
		for j, cj := range cols {
			idx, err := m.indexOf(ctxSubmatrix, ri, cj)
			if err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = m.data[idx]
		}
	}

	return out, nil
}

// RowSums returns the sum of every row.
func (m *Dense) RowSums() []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out[i] += m.data[i*m.c+j]
		}
	}

	return out
}

// ColSums returns the sum of every column.
func (m *Dense) ColSums() []float64 {
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out[j] += m.data[i*m.c+j]
		}
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
