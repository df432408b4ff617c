// SPDX-License-Identifier: MIT
// Package tpm: sentinel error set.

package tpm

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the umbrella kind carried by every validation failure.
	ErrValidation = errors.New("tpm: invalid transition probability matrix")

	// ErrDimensionality signals a shape that matches neither the
	// state-by-state nor the state-by-node layouts, or ragged nested input.
	ErrDimensionality = errors.New("tpm: wrong dimensionality")

	// ErrProbability signals a non-finite entry, an entry outside [0,1]
	// (within eps) or a state-by-state row that does not sum to 1.
	ErrProbability = errors.New("tpm: invalid probability")

	// ErrNotConditionallyIndependent signals a state-by-state TPM that cannot
	// be expressed as independent per-node activation probabilities.
	ErrNotConditionallyIndependent = errors.New("tpm: not conditionally independent")

	// ErrLayout signals that a converter was handed the wrong input layout.
	ErrLayout = errors.New("tpm: unexpected layout for conversion")

	// ErrState signals a malformed or out-of-range state tuple.
	ErrState = errors.New("tpm: invalid state")
)

// invalid wraps detail under ErrValidation and the given sub-kind so callers
// can match either with errors.Is.
func invalid(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrValidation, kind, fmt.Sprintf(format, args...))
}

// invalidFrom is invalid for an underlying error that must stay matchable.
func invalidFrom(kind error, err error) error {
	return fmt.Errorf("%w: %w: %w", ErrValidation, kind, err)
}
