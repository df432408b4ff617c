// SPDX-License-Identifier: MIT
// Package network: sentinel error set.

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the umbrella kind for every construction failure.
	ErrValidation = errors.New("network: validation failed")

	// ErrSizeMismatch signals a CM whose size differs from the TPM's node count.
	ErrSizeMismatch = errors.New("network: connectivity matrix must be NxN for N nodes")

	// ErrPerturbVector signals a perturbation vector of the wrong length or
	// with entries outside [0,1].
	ErrPerturbVector = errors.New("network: invalid perturbation vector")

	// ErrNodeLabels signals labels that are not in bijection with node indices.
	ErrNodeLabels = errors.New("network: invalid node labels")

	// ErrUnknownLabel signals a label that names no node.
	ErrUnknownLabel = errors.New("network: unknown node label")

	// ErrUnknownIndex signals a node index outside [0, N).
	ErrUnknownIndex = errors.New("network: unknown node index")

	// ErrMixedNodes signals node tokens that mix labels and indices.
	ErrMixedNodes = errors.New("network: nodes mix labels and indices")

	// ErrDirection signals an unknown temporal direction.
	ErrDirection = errors.New("network: unknown direction")
)

// invalid wraps err under ErrValidation, keeping err matchable.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// networkErrorf wraps an underlying error with the given tag.
func networkErrorf(tag string, err error) error {
	return fmt.Errorf("network: %s: %w", tag, err)
}

// ErrCacheOwner signals a PurviewCache reused for a network with
// different content.
var ErrCacheOwner = errors.New("network: purview cache belongs to a different network")
