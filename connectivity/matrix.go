// SPDX-License-Identifier: MIT

package connectivity

import (
	"encoding/json"
	"errors"

	"github.com/katalvlaran/phinet/matrix"
)

// Matrix is a validated, frozen N×N binary connectivity matrix.
type Matrix struct {
	d    *matrix.Dense // frozen
	hash uint64        // content hash, computed once
}

// Validate checks that d is square and binary.
// Errors: ErrEmpty, ErrNonSquare, ErrNonBinary (the matrix sentinel stays
// matchable as well).
func Validate(d *matrix.Dense) error {
	if err := matrix.ValidateNotNil(d); err != nil {
		return cmErrorf("Validate", ErrEmpty)
	}
	if err := matrix.ValidateSquare(d); err != nil {
		return cmErrorf("Validate", errors.Join(ErrNonSquare, err))
	}
	if err := matrix.ValidateBinary(d); err != nil {
		return cmErrorf("Validate", errors.Join(ErrNonBinary, err))
	}

	return nil
}

// New validates rows and returns a frozen connectivity matrix.
func New(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, cmErrorf("New", ErrEmpty)
	}
	d, err := matrix.NewDenseFrom(rows)
	if err != nil {
		if errors.Is(err, matrix.ErrRagged) {
			return nil, cmErrorf("New", errors.Join(ErrNonSquare, err))
		}

		return nil, cmErrorf("New", errors.Join(ErrEmpty, err))
	}

	return fromOwned(d)
}

// FromDense validates a copy of d and returns it frozen.
func FromDense(d *matrix.Dense) (*Matrix, error) {
	if err := matrix.ValidateNotNil(d); err != nil {
		return nil, cmErrorf("FromDense", ErrEmpty)
	}

	return fromOwned(d.CloneDense())
}

func fromOwned(d *matrix.Dense) (*Matrix, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	d.Freeze()

	return &Matrix{d: d, hash: d.Hash()}, nil
}

// Full returns the n×n all-ones matrix: every node influences every node,
// itself included.
func Full(n int) (*Matrix, error) {
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, cmErrorf("Full", errors.Join(ErrEmpty, err))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = d.Set(i, j, 1) // bounds guaranteed by loop limits
		}
	}

	return fromOwned(d)
}

// Size returns N.
func (m *Matrix) Size() int { return m.d.Rows() }

// Connected reports whether node i can influence node j. Out-of-range
// indices report false.
func (m *Matrix) Connected(i, j int) bool {
	v, err := m.d.At(i, j)

	return err == nil && v == 1
}

// Dense returns the frozen backing matrix.
func (m *Matrix) Dense() *matrix.Dense { return m.d }

// Rows returns a deep copy of the entries.
func (m *Matrix) Rows() [][]float64 { return m.d.RawRows() }

// Equal reports element-wise equality.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.hash == o.hash && matrix.Equal(m.d, o.d)
}

// Hash returns the content hash computed at construction.
func (m *Matrix) Hash() uint64 { return m.hash }

// MarshalJSON encodes the matrix as nested 0/1 integer lists.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	n := m.Size()
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
		for j := range out[i] {
			if m.Connected(i, j) {
				out[i][j] = 1
			}
		}
	}

	return json.Marshal(out)
}
