// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/phinet/connectivity"
)

// IrreduciblePurviews keeps the purviews whose connections with mechanism
// are not block-reducible over cm. For Cause the connections run
// purview→mechanism; for Effect mechanism→purview. Order is preserved.
// Errors: ErrDirection, connectivity.ErrNodeIndex.
// Complexity: O(P·(m+p)²) for P purviews.
func IrreduciblePurviews(cm *connectivity.Matrix, dir Direction, mechanism []int, purviews [][]int) ([][]int, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("network: IrreduciblePurviews: %w: %d", ErrDirection, int(dir))
	}
	out := make([][]int, 0, len(purviews))
	for _, p := range purviews {
		from, to := p, mechanism
		if dir == Effect {
			from, to = mechanism, p
		}
		reducible, err := connectivity.BlockReducible(cm, from, to)
		if err != nil {
			return nil, fmt.Errorf("network: IrreduciblePurviews: %w", err)
		}
		if !reducible {
			out = append(out, slices.Clone(p))
		}
	}

	return out, nil
}

// Powerset returns every subset of nodes (assumed sorted and distinct),
// ordered by size then lexicographically. The empty set comes first.
// Complexity: O(2^k·k).
func Powerset(nodes []int) [][]int {
	out := make([][]int, 0, 1<<len(nodes))
	out = append(out, []int{})
	for size := 1; size <= len(nodes); size++ {
		out = appendCombinations(out, nodes, size)
	}

	return out
}

// appendCombinations appends the size-k combinations of nodes in
// lexicographic order.
func appendCombinations(out [][]int, nodes []int, k int) [][]int {
	pos := make([]int, k)
	for i := range pos {
		pos[i] = i
	}
	for {
		combo := make([]int, k)
		for i, p := range pos {
			combo[i] = nodes[p]
		}
		out = append(out, combo)

		// advance the rightmost position that still has room
		i := k - 1
		for i >= 0 && pos[i] == len(nodes)-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		pos[i]++
		for j := i + 1; j < k; j++ {
			pos[j] = pos[j-1] + 1
		}
	}
}

// PotentialPurviews returns every purview over the network's nodes that is
// not block-reducible with mechanism in direction dir, ascending by size
// then lexicographically. The mechanism is sorted and deduplicated first.
// Results are memoized per (dir, mechanism) unless caching is disabled;
// the returned slices are always fresh copies.
// Errors: ErrDirection, ErrUnknownIndex.
func (n *Network) PotentialPurviews(dir Direction, mechanism []int) ([][]int, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("network: PotentialPurviews: %w: %d", ErrDirection, int(dir))
	}
	if err := n.checkIndices("PotentialPurviews", mechanism); err != nil {
		return nil, err
	}
	mech := canonical(slices.Clone(mechanism))

	compute := func() ([][]int, error) {
		out, err := IrreduciblePurviews(n.cm, dir, mech, Powerset(n.NodeIndices()))
		if err == nil && n.logger != nil {
			n.logger.Debug("computed potential purviews",
				"direction", dir.String(),
				"mechanism", mech,
				"purviews", len(out))
		}

		return out, err
	}
	if !n.caching {
		return compute()
	}

	return n.cache.Get(dir, mech, compute)
}
