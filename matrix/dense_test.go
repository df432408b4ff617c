// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and freezing.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/phinet/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions rejects non-positive shapes.
func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

// TestNewDenseFrom covers copying, ragged input and empty input.
func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFrom(src)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	src[0][0] = 99 // the matrix must not alias its input
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_AtSetBounds verifies bounds errors instead of panics.
func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.NoError(t, m.Set(1, 1, 0.25))
	v, _ := m.At(1, 1)
	assert.Equal(t, 0.25, v)
}

// TestDense_Freeze checks that a frozen matrix rejects writes and that
// clones are writable and independent.
func TestDense_Freeze(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	m.Freeze()
	require.True(t, m.Frozen())
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrFrozen)

	c := m.CloneDense()
	require.False(t, c.Frozen())
	require.NoError(t, c.Set(0, 0, 1))
	v, _ := m.At(0, 0)
	assert.Equal(t, 0.0, v, "clone writes must not reach the frozen original")

	row, err := m.Row(0)
	require.NoError(t, err)
	row[1] = 42
	v, _ = m.At(0, 1)
	assert.Equal(t, 1.0, v, "Row returns a copy")
}

// TestDense_Submatrix mirrors numpy ix_ selection.
func TestDense_Submatrix(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	sub, err := m.Submatrix([]int{2, 0}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{8, 9}, {2, 3}}, sub.RawRows())

	_, err = m.Submatrix([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Submatrix(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	assert.Equal(t, []float64{6, 15, 24}, m.RowSums())
	assert.Equal(t, []float64{12, 15, 18}, m.ColSums())
}

// TestEqualAndHash covers exact equality, tolerance equality and hashing.
func TestEqualAndHash(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewDenseFrom([][]float64{{0.5, 0}, {1, 0.25}})
	b, _ := matrix.NewDenseFrom([][]float64{{0.5, 0}, {1, 0.25}})
	b.Freeze()
	require.True(t, matrix.Equal(a, b))
	require.Equal(t, a.Hash(), b.Hash(), "frozen flag must not change the hash")

	negZero, _ := matrix.NewDenseFrom([][]float64{{0.5, 0}, {1, 0.25}})
	require.NoError(t, negZero.Set(0, 1, negate(0)))
	require.True(t, matrix.Equal(a, negZero))
	require.Equal(t, a.Hash(), negZero.Hash())

	c, _ := matrix.NewDenseFrom([][]float64{{0.5, 0}, {1, 0.2500001}})
	require.False(t, matrix.Equal(a, c))
	require.True(t, matrix.AllClose(a, c, 1e-6))
	require.NotEqual(t, a.Hash(), c.Hash())

	// same data, different shape
	d, _ := matrix.NewDenseFrom([][]float64{{0.5, 0, 1, 0.25}})
	require.False(t, matrix.Equal(a, d))
	require.NotEqual(t, a.Hash(), d.Hash())

	require.True(t, matrix.Equal(nil, nil))
	require.False(t, matrix.Equal(a, nil))
}

// negate returns -x without letting the compiler fold a constant -0.
func negate(x float64) float64 { return -x }
