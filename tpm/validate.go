// SPDX-License-Identifier: MIT

package tpm

import (
	"github.com/katalvlaran/phinet/matrix"
)

// IsStateByState reports whether a is laid out as a square 2-D S×S matrix.
func IsStateByState(a *Array) bool {
	return a != nil && a.NDim() == 2 && a.shape[0] == a.shape[1]
}

// Validate checks that a is a well-formed TPM in one of the three accepted
// layouts.
//
// Implementation:
//   - Stage 1: shape. N is the last extent. 2-D input must be 2^N×N
//     (state-by-node) or square with a power-of-two side (state-by-state);
//     (N+1)-D input must be exactly [2]*N+[N]. Anything else fails with
//     ErrDimensionality.
//   - Stage 2: every entry finite and within [-eps, 1+eps] (ErrProbability).
//     State-by-node entries are per-node activation probabilities, so rows
//     are not required to sum to anything.
//   - Stage 3 (state-by-state only): every row sums to 1 within eps
//     (ErrProbability) and, unless disabled, the matrix survives a round trip
//     through the state-by-node form (ErrNotConditionallyIndependent).
//
// Every returned error also matches ErrValidation.
func Validate(a *Array, opts ...Option) error {
	o := gatherOptions(opts)
	if a == nil {
		return invalid(ErrDimensionality, "nil array")
	}

	// Stage 1: shape
	n := a.shape[a.NDim()-1]
	sbs := false
	switch {
	case a.NDim() == 2:
		rows, cols := a.shape[0], a.shape[1]
		switch {
		case n <= maxNodes && rows == 1<<n:
			// 2-D state-by-node
		case rows == cols && nodesFromStates(rows) > 0:
			sbs = true
		default:
			return invalid(ErrDimensionality,
				"2-D TPM of shape %v: state-by-node needs 2^N rows and N columns, state-by-state must be square with 2^N rows", a.shape)
		}
	case a.NDim() == n+1:
		for k := 0; k < n; k++ {
			if a.shape[k] != 2 {
				return invalid(ErrDimensionality, "N-D TPM of shape %v: want [2]*%d+[%d]", a.shape, n, n)
			}
		}
	default:
		return invalid(ErrDimensionality,
			"TPM of shape %v must be 2-dimensional or %d-dimensional", a.shape, n+1)
	}

	// Stage 2: probabilities
	flat, _ := matrix.NewDenseFrom([][]float64{a.data}) // non-empty: shape already validated
	if err := matrix.ValidateProbabilities(flat, o.eps); err != nil {
		return invalidFrom(ErrProbability, err)
	}
	if !sbs {
		return nil
	}

	// Stage 3: state-by-state rows and conditional independence
	sq := squareDense(a)
	if err := matrix.ValidateRowStochastic(sq, o.eps); err != nil {
		return invalidFrom(ErrProbability, err)
	}
	if o.checkIndependence {
		return conditionallyIndependent(a, o.eps)
	}

	return nil
}

// conditionallyIndependent converts a state-by-state TPM to state-by-node and
// back, and requires the result to match the input within eps.
func conditionallyIndependent(a *Array, eps float64) error {
	sbn := stateByStateToNode(a)
	back := stateByNodeToState(sbn, a.shape[0])
	if !matrix.AllClose(squareDense(a), back, eps) {
		return invalid(ErrNotConditionallyIndependent,
			"state-by-state TPM cannot be factored into independent node probabilities")
	}

	return nil
}

// squareDense views a 2-D array as a Dense copy.
func squareDense(a *Array) *matrix.Dense {
	rows := make([][]float64, a.shape[0])
	for i := range rows {
		rows[i] = a.data[i*a.shape[1] : (i+1)*a.shape[1]]
	}
	d, _ := matrix.NewDenseFrom(rows) // shape validated by caller

	return d
}
