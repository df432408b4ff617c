// SPDX-License-Identifier: MIT

package tpm

import "fmt"

// maxNodes bounds N so that 2^N rows (and 2^N×2^N state-by-state input)
// stay addressable.
const maxNodes = 30

// StateIndex maps a binary state tuple to its little-endian row index
// Σ b_k·2^k. Returns ErrState for non-binary entries or too many nodes.
func StateIndex(state []int) (int, error) {
	if len(state) > maxNodes {
		return 0, fmt.Errorf("tpm: StateIndex: %d nodes: %w", len(state), ErrState)
	}
	idx := 0
	for k, b := range state {
		switch b {
		case 0:
		case 1:
			idx |= 1 << k
		default:
			return 0, fmt.Errorf("tpm: StateIndex: node %d has value %d: %w", k, b, ErrState)
		}
	}

	return idx, nil
}

// IndexState is the inverse of StateIndex for an n-node system.
func IndexState(i, n int) []int {
	out := make([]int, n)
	for k := 0; k < n; k++ {
		out[k] = (i >> k) & 1
	}

	return out
}

// nodeOn reports whether node k is ON in the little-endian state index i.
func nodeOn(i, k int) bool { return (i>>k)&1 == 1 }

// cOrderIndex converts a little-endian state index of an n-node system into
// the C-order offset of the same state in a [2]*n array, where dimension 0
// is the most significant.
func cOrderIndex(i, n int) int {
	off := 0
	for k := 0; k < n; k++ {
		off = off<<1 | (i>>k)&1
	}

	return off
}

// nodesFromStates returns n such that 2^n == s, or -1.
func nodesFromStates(s int) int {
	for n := 0; n <= maxNodes; n++ {
		if 1<<n == s {
			return n
		}
	}

	return -1
}
