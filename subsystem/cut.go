// SPDX-License-Identifier: MIT

package subsystem

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/katalvlaran/phinet/connectivity"
)

// Cut severs every connection from the From nodes to the To nodes. A cut
// with an empty side severs nothing.
type Cut struct {
	From []int
	To   []int
}

// NewCut returns a cut with both sides sorted and deduplicated.
func NewCut(from, to []int) Cut {
	return Cut{From: canonical(from), To: canonical(to)}
}

// NullCut returns the cut that severs nothing.
func NullCut() Cut { return Cut{From: []int{}, To: []int{}} }

// IsNull reports whether the cut severs nothing.
func (c Cut) IsNull() bool { return len(c.From) == 0 || len(c.To) == 0 }

// Indices returns the sorted union of both sides.
func (c Cut) Indices() []int {
	return canonical(append(slices.Clone(c.From), c.To...))
}

// Severs reports whether the cut removes the connection i → j.
func (c Cut) Severs(i, j int) bool {
	return slices.Contains(c.From, i) && slices.Contains(c.To, j)
}

// Apply returns cm with every From → To entry cleared.
// Errors: connectivity.ErrNodeIndex for indices outside cm.
// Complexity: O(N²).
func (c Cut) Apply(cm *connectivity.Matrix) (*connectivity.Matrix, error) {
	if c.IsNull() {
		return cm, nil
	}
	n := cm.Size()
	for _, i := range c.Indices() {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("subsystem: Cut.Apply: %w: %d", connectivity.ErrNodeIndex, i)
		}
	}
	d := cm.Dense().CloneDense()
	for _, i := range c.From {
		for _, j := range c.To {
			_ = d.Set(i, j, 0) // bounds checked above
		}
	}

	return connectivity.FromDense(d)
}

// Equal reports whether both sides match.
func (c Cut) Equal(o Cut) bool {
	if c.IsNull() && o.IsNull() {
		return true
	}

	return slices.Equal(c.From, o.From) && slices.Equal(c.To, o.To)
}

// String renders the cut as "[0 1] -/-> [2]".
func (c Cut) String() string {
	if c.IsNull() {
		return "NullCut"
	}

	return fmt.Sprintf("%v -/-> %v", c.From, c.To)
}

// MarshalJSON emits {"from": [...], "to": [...]}.
func (c Cut) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		From []int `json:"from"`
		To   []int `json:"to"`
	}{From: nonNil(c.From), To: nonNil(c.To)})
}

func canonical(idx []int) []int {
	out := slices.Clone(idx)
	if out == nil {
		return []int{}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

func nonNil(idx []int) []int {
	if idx == nil {
		return []int{}
	}

	return idx
}
