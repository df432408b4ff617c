// SPDX-License-Identifier: MIT
// Package connectivity: sentinel error set.

package connectivity

import (
	"errors"
	"fmt"
)

var (
	// ErrNonSquare signals a connectivity matrix that is not N×N.
	ErrNonSquare = errors.New("connectivity: matrix is not square")

	// ErrNonBinary signals an entry other than 0 or 1.
	ErrNonBinary = errors.New("connectivity: matrix is not binary")

	// ErrEmpty signals a matrix with no rows.
	ErrEmpty = errors.New("connectivity: matrix is empty")

	// ErrNodeIndex signals a node index outside [0, N).
	ErrNodeIndex = errors.New("connectivity: node index out of range")
)

// cmErrorf wraps an underlying error with the given tag.
func cmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
