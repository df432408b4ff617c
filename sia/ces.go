// SPDX-License-Identifier: MIT

package sia

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/phinet/network"
)

// Concept is the plain Distinction: a mechanism with one purview per
// direction and its small-phi value.
type Concept struct {
	mechanism []int
	cause     []int
	effect    []int
	phi       float64
}

// NewConcept copies its inputs.
func NewConcept(mechanism, cause, effect []int, phi float64) *Concept {
	return &Concept{
		mechanism: slices.Clone(mechanism),
		cause:     slices.Clone(cause),
		effect:    slices.Clone(effect),
		phi:       phi,
	}
}

// Mechanism returns a copy of the mechanism's node indices.
func (c *Concept) Mechanism() []int { return slices.Clone(c.mechanism) }

// Purview returns a copy of the cause or effect purview; nil for an
// unknown direction.
func (c *Concept) Purview(dir network.Direction) []int {
	switch dir {
	case network.Cause:
		return slices.Clone(c.cause)
	case network.Effect:
		return slices.Clone(c.effect)
	default:
		return nil
	}
}

// Phi returns the small-phi value.
func (c *Concept) Phi() float64 { return c.phi }

// MarshalJSON emits {"mechanism", "cause_purview", "effect_purview", "phi"}.
func (c *Concept) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Mechanism []int   `json:"mechanism"`
		Cause     []int   `json:"cause_purview"`
		Effect    []int   `json:"effect_purview"`
		Phi       float64 `json:"phi"`
	}{c.mechanism, c.cause, c.effect, c.phi})
}

// CauseEffectStructure is an ordered collection of distinctions. It may be
// empty.
type CauseEffectStructure []Distinction

// NewCauseEffectStructure orders ds by mechanism: ascending size, then
// lexicographically. Equal mechanisms keep their input order.
func NewCauseEffectStructure(ds ...Distinction) CauseEffectStructure {
	out := make(CauseEffectStructure, 0, len(ds))
	for _, d := range ds {
		if d != nil {
			out = append(out, d)
		}
	}
	slices.SortStableFunc(out, func(a, b Distinction) int {
		ma, mb := a.Mechanism(), b.Mechanism()
		if len(ma) != len(mb) {
			return len(ma) - len(mb)
		}

		return slices.Compare(ma, mb)
	})

	return out
}

// Mechanisms lists the mechanism of every distinction, in order.
func (c CauseEffectStructure) Mechanisms() [][]int {
	out := make([][]int, len(c))
	for i, d := range c {
		out[i] = d.Mechanism()
	}

	return out
}

// Phis lists the small-phi value of every distinction, in order.
func (c CauseEffectStructure) Phis() []float64 {
	out := make([]float64, len(c))
	for i, d := range c {
		out[i] = d.Phi()
	}

	return out
}

// Equal reports pairwise equality: same mechanisms and purviews, phi
// within eps.
// Complexity: O(len(c)·N).
func (c CauseEffectStructure) Equal(o CauseEffectStructure, eps float64) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if !sameDistinction(c[i], o[i], eps) {
			return false
		}
	}

	return true
}

func sameDistinction(a, b Distinction, eps float64) bool {
	return slices.Equal(a.Mechanism(), b.Mechanism()) &&
		slices.Equal(a.Purview(network.Cause), b.Purview(network.Cause)) &&
		slices.Equal(a.Purview(network.Effect), b.Purview(network.Effect)) &&
		math.Abs(a.Phi()-b.Phi()) <= eps
}

// Hash covers mechanisms and purviews. Phi values are left out so that
// structures equal within tolerance hash identically.
func (c CauseEffectStructure) Hash() uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}
	put(len(c))
	for _, d := range c {
		for _, group := range [][]int{d.Mechanism(), d.Purview(network.Cause), d.Purview(network.Effect)} {
			put(len(group))
			for _, v := range group {
				put(v)
			}
		}
	}

	return h.Sum64()
}

// MarshalJSON emits the distinctions as a list; an empty structure is [].
func (c CauseEffectStructure) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("[]"), nil
	}

	return json.Marshal([]Distinction(c))
}
