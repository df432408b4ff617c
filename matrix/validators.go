// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     match them with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Each validator scans in row-major order and stops at the first violation.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validatorAtErrorf is validatorErrorf with the offending coordinates attached.
func validatorAtErrorf(tag string, i, j int, v float64, err error) error {
	return fmt.Errorf("%s: entry (%d,%d)=%g: %w", tag, i, j, v, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // bounds guaranteed by loop limits
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorAtErrorf("ValidateFinite", i, j, v, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateBinary requires every entry to be exactly 0 or 1.
// Complexity: O(r*c).
func ValidateBinary(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v != 0 && v != 1 {
				return validatorAtErrorf("ValidateBinary", i, j, v, ErrNonBinary)
			}
		}
	}

	return nil
}

// ValidateProbabilities requires every entry to be finite and within
// [-eps, 1+eps].
// Complexity: O(r*c).
func ValidateProbabilities(m Matrix, eps float64) error {
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateProbabilities", err)
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v < -eps || v > 1+eps {
				return validatorAtErrorf("ValidateProbabilities", i, j, v, ErrProbability)
			}
		}
	}

	return nil
}

// ValidateRowStochastic requires every row to be a probability distribution:
// entries valid per ValidateProbabilities and |Σ row - 1| ≤ eps.
// Complexity: O(r*c).
func ValidateRowStochastic(m Matrix, eps float64) error {
	if err := ValidateProbabilities(m, eps); err != nil {
		return validatorErrorf("ValidateRowStochastic", err)
	}
	var v, sum float64
	for i := 0; i < m.Rows(); i++ {
		sum = 0
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			sum += v
		}
		if math.Abs(sum-1) > eps {
			return fmt.Errorf("ValidateRowStochastic: row %d sums to %g: %w", i, sum, ErrProbability)
		}
	}

	return nil
}
