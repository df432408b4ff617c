// SPDX-License-Identifier: MIT

package network

import (
	"strconv"
	"strings"
)

// NodeRef names a set of nodes either by label or by index, never both.
// Build one with ByLabel, ByIndex or ParseNodeRef.
type NodeRef struct {
	labels  []string
	indices []int
	byLabel bool
}

// ByLabel refers to nodes by their human-readable labels.
func ByLabel(labels ...string) NodeRef {
	return NodeRef{labels: append([]string(nil), labels...), byLabel: true}
}

// ByIndex refers to nodes by position.
func ByIndex(indices ...int) NodeRef {
	return NodeRef{indices: append([]int(nil), indices...)}
}

// IsLabel reports whether the reference holds labels.
func (r NodeRef) IsLabel() bool { return r.byLabel }

// Len returns the number of referenced nodes, duplicates included.
func (r NodeRef) Len() int {
	if r.byLabel {
		return len(r.labels)
	}

	return len(r.indices)
}

// ParseNodeRef classifies textual tokens (for example split from a
// command-line flag). All-integer tokens become ByIndex, all non-integer
// tokens become ByLabel; a mix fails with ErrMixedNodes. Empty input is an
// empty ByIndex reference.
func ParseNodeRef(tokens []string) (NodeRef, error) {
	var (
		indices []int
		labels  []string
	)
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if i, err := strconv.Atoi(tok); err == nil {
			indices = append(indices, i)
		} else {
			labels = append(labels, tok)
		}
	}
	switch {
	case len(indices) > 0 && len(labels) > 0:
		return NodeRef{}, networkErrorf("ParseNodeRef", ErrMixedNodes)
	case len(labels) > 0:
		return ByLabel(labels...), nil
	default:
		return ByIndex(indices...), nil
	}
}
