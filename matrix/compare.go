// SPDX-License-Identifier: MIT

// Package matrix: equality and content hashing for Dense.
package matrix

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b have the same shape and bit-for-bit equal
// values (with -0 == +0). Nil matrices are equal only to each other.
// Complexity: O(r*c).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether a and b have the same shape and every pair of
// entries differs by at most eps.
// Complexity: O(r*c).
func AllClose(a, b *Dense, eps float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if math.Abs(a.data[i]-b.data[i]) > eps {
			return false
		}
	}

	return true
}

// Hash returns a 64-bit content hash over shape and values. Matrices that are
// Equal hash identically; the frozen flag does not participate.
// Complexity: O(r*c).
func (m *Dense) Hash() uint64 {
	h := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m.r))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.c))
	_, _ = h.Write(buf[:])
	for _, v := range m.data {
		if v == 0 {
			v = 0 // fold -0 into +0 so Equal implies equal hashes
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}
