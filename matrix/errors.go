// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with a tag) and
// tests check them via errors.Is. No function panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the boundary; callers still use errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRagged signals that row slices passed to NewDenseFrom differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNonBinary signals an entry other than 0 or 1 in a binary matrix.
	ErrNonBinary = errors.New("matrix: non-binary entry")

	// ErrProbability signals an entry outside [0,1] (within eps) or a row that
	// does not sum to 1 where a distribution is required.
	ErrProbability = errors.New("matrix: invalid probability")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrFrozen is returned by Set on a matrix that has been frozen.
	ErrFrozen = errors.New("matrix: matrix is frozen")
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
