// SPDX-License-Identifier: MIT

package tpm

import (
	"fmt"

	"github.com/katalvlaran/phinet/matrix"
)

// stateByNodeLayout reports N and whether a is in N-D form, for either
// state-by-node layout. ok is false for anything else.
func stateByNodeLayout(a *Array) (n int, nd bool, ok bool) {
	if a == nil {
		return 0, false, false
	}
	n = a.shape[a.NDim()-1]
	if n > maxNodes {
		return 0, false, false
	}
	if a.NDim() == 2 && a.shape[0] == 1<<n {
		return n, false, true
	}
	if a.NDim() == n+1 {
		for k := 0; k < n; k++ {
			if a.shape[k] != 2 {
				return 0, false, false
			}
		}

		return n, true, true
	}

	return 0, false, false
}

// StateByStateToStateByNode marginalises an S×S state-by-state TPM into the
// S×N state-by-node form: entry (i, k) is the total probability mass of the
// successor states of i in which node k is ON.
// Returns ErrLayout unless a is square with a power-of-two side.
// Complexity: O(S²·N).
func StateByStateToStateByNode(a *Array) (*Array, error) {
	if !IsStateByState(a) || nodesFromStates(a.shape[0]) <= 0 {
		return nil, fmt.Errorf("tpm: StateByStateToStateByNode: %w", ErrLayout)
	}

	return stateByStateToNode(a), nil
}

// stateByStateToNode assumes a valid S×S input.
func stateByStateToNode(a *Array) *Array {
	s := a.shape[0]
	n := nodesFromStates(s)
	out := make([]float64, s*n)
	for i := 0; i < s; i++ {
		row := a.data[i*s : (i+1)*s]
		for j, p := range row {
			for k := 0; k < n; k++ {
				if nodeOn(j, k) {
					out[i*n+k] += p
				}
			}
		}
	}

	return &Array{shape: []int{s, n}, data: out}
}

// StateByNodeToStateByState expands a state-by-node TPM (2-D or N-D) into
// the S×S state-by-state form, treating node activations as independent:
// entry (i, j) is Π_k p_ik if node k is ON in j, else (1 - p_ik).
// Returns ErrLayout for any other input layout.
// Complexity: O(S²·N).
func StateByNodeToStateByState(a *Array) (*Array, error) {
	two, err := ToTwoDimensional(a)
	if err != nil {
		return nil, fmt.Errorf("tpm: StateByNodeToStateByState: %w", err)
	}
	s := two.shape[0]
	d := stateByNodeToState(two, s)

	return &Array{shape: []int{s, s}, data: flatDense(d)}, nil
}

// stateByNodeToState assumes a valid 2-D S×N input.
func stateByNodeToState(two *Array, s int) *matrix.Dense {
	n := two.shape[1]
	out, _ := matrix.NewDense(s, s) // s >= 2 for any valid input
	for i := 0; i < s; i++ {
		probs := two.data[i*n : (i+1)*n]
		for j := 0; j < s; j++ {
			p := 1.0
			for k := 0; k < n; k++ {
				if nodeOn(j, k) {
					p *= probs[k]
				} else {
					p *= 1 - probs[k]
				}
			}
			_ = out.Set(i, j, p) // bounds guaranteed by loop limits
		}
	}

	return out
}

func flatDense(d *matrix.Dense) []float64 {
	out := make([]float64, 0, d.Rows()*d.Cols())
	for _, row := range d.RawRows() {
		out = append(out, row...)
	}

	return out
}

// ToNDimensional reshapes a state-by-node TPM into the canonical
// [2]*N+[N] tensor. Row i of the 2-D form lands at index (b_0, ..., b_{N-1})
// with i = Σ b_k·2^k. N-D input is returned as a copy.
// Returns ErrLayout for anything but a state-by-node layout.
// Complexity: O(S·N).
func ToNDimensional(a *Array) (*Array, error) {
	n, nd, ok := stateByNodeLayout(a)
	if !ok {
		return nil, fmt.Errorf("tpm: ToNDimensional: %w", ErrLayout)
	}
	shape := make([]int, n+1)
	for k := 0; k < n; k++ {
		shape[k] = 2
	}
	shape[n] = n
	if nd {
		return NewArray(shape, a.data)
	}

	s := 1 << n
	out := make([]float64, s*n)
	for i := 0; i < s; i++ {
		copy(out[cOrderIndex(i, n)*n:], a.data[i*n:(i+1)*n])
	}

	return &Array{shape: shape, data: out}, nil
}

// ToTwoDimensional is the inverse of ToNDimensional: it returns the S×N
// state-by-node form with little-endian row order. 2-D input is returned as
// a copy.
// Complexity: O(S·N).
func ToTwoDimensional(a *Array) (*Array, error) {
	n, nd, ok := stateByNodeLayout(a)
	if !ok {
		return nil, fmt.Errorf("tpm: ToTwoDimensional: %w", ErrLayout)
	}
	s := 1 << n
	if !nd {
		return NewArray([]int{s, n}, a.data)
	}

	out := make([]float64, s*n)
	for i := 0; i < s; i++ {
		off := cOrderIndex(i, n) * n
		copy(out[i*n:(i+1)*n], a.data[off:off+n])
	}

	return &Array{shape: []int{s, n}, data: out}, nil
}
