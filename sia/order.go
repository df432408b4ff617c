// SPDX-License-Identifier: MIT

package sia

import (
	"fmt"
	"math"
	"slices"
)

// Compare orders a against b: -1, 0 or +1.
// Phi decides first, with differences within tolerance counted as ties;
// then the larger subsystem ranks greater; then subsystem node indices
// compare lexicographically.
// Errors: ErrIncomparable when the networks differ in content.
func Compare(a, b *Analysis) (int, error) {
	if !a.Network().Equal(b.Network()) {
		return 0, fmt.Errorf("sia: Compare: %w", ErrIncomparable)
	}
	eps := math.Max(a.eps, b.eps)
	if d := a.phi - b.phi; math.Abs(d) > eps {
		if d < 0 {
			return -1, nil
		}

		return 1, nil
	}
	if la, lb := a.sub.Len(), b.sub.Len(); la != lb {
		if la < lb {
			return -1, nil
		}

		return 1, nil
	}

	return slices.Compare(a.sub.NodeIndices(), b.sub.NodeIndices()), nil
}

// Less reports whether a ranks strictly below b.
func (a *Analysis) Less(b *Analysis) (bool, error) {
	c, err := Compare(a, b)

	return c < 0, err
}

// Max returns the highest-ranked analysis; ties keep the earliest.
// Nil entries are skipped.
// Errors: ErrEmpty, ErrIncomparable.
func Max(as ...*Analysis) (*Analysis, error) {
	return extreme("Max", 1, as)
}

// Min returns the lowest-ranked analysis; ties keep the earliest.
// Nil entries are skipped.
// Errors: ErrEmpty, ErrIncomparable.
func Min(as ...*Analysis) (*Analysis, error) {
	return extreme("Min", -1, as)
}

func extreme(tag string, want int, as []*Analysis) (*Analysis, error) {
	var best *Analysis
	for _, a := range as {
		if a == nil {
			continue
		}
		if best == nil {
			best = a

			continue
		}
		c, err := Compare(a, best)
		if err != nil {
			return nil, fmt.Errorf("sia: %s: %w", tag, err)
		}
		if c == want {
			best = a
		}
	}
	if best == nil {
		return nil, fmt.Errorf("sia: %s: %w", tag, ErrEmpty)
	}

	return best, nil
}

// Sort orders as ascending in place; equal analyses keep their order.
// Errors: ErrEmpty for a nil entry, ErrIncomparable when any two entries
// belong to different networks. On error as is left untouched.
// Complexity: O(k log k) comparisons.
func Sort(as []*Analysis) error {
	for i, a := range as {
		if a == nil {
			return fmt.Errorf("sia: Sort: entry %d is nil: %w", i, ErrEmpty)
		}
	}
	for i := 1; i < len(as); i++ {
		if !as[0].Network().Equal(as[i].Network()) {
			return fmt.Errorf("sia: Sort: %w", ErrIncomparable)
		}
	}
	slices.SortStableFunc(as, func(a, b *Analysis) int {
		c, _ := Compare(a, b) // networks checked above

		return c
	})

	return nil
}
