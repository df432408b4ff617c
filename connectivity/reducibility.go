// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"

	"github.com/katalvlaran/phinet/matrix"
)

// walker encapsulates mutable BFS state over an implicit graph of n
// vertices whose neighbours are produced by next.
type walker struct {
	next    func(v int, visit func(u int))
	queue   []int
	visited []bool
	seen    int
}

func newWalker(n int, next func(v int, visit func(u int))) *walker {
	return &walker{next: next, queue: make([]int, 0, n), visited: make([]bool, n)}
}

// enqueue marks v visited and adds it to the queue.
func (w *walker) enqueue(v int) {
	if w.visited[v] {
		return
	}
	w.visited[v] = true
	w.seen++
	w.queue = append(w.queue, v)
}

// run explores everything reachable from start and returns how many
// vertices were reached.
func (w *walker) run(start int) int {
	w.enqueue(start)
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		w.next(v, w.enqueue)
	}

	return w.seen
}

// BlockConnected reports whether the bipartite graph induced by sub is
// connected: rows are sources, columns are sinks, and sub[i][j] != 0 joins
// source i to sink j. A row or column with no entries makes the graph
// disconnected.
// Complexity: O(r·c·(r+c)) worst case, O((r+c)·(r+c)) typical.
func BlockConnected(sub *matrix.Dense) bool {
	if sub == nil {
		return false
	}
	r, c := sub.Rows(), sub.Cols()
	w := newWalker(r+c, func(v int, visit func(int)) {
		var x float64
		if v < r { // source: visit its sinks
			for j := 0; j < c; j++ {
				if x, _ = sub.At(v, j); x != 0 {
					visit(r + j)
				}
			}

			return
		}
		for i := 0; i < r; i++ { // sink: visit its sources
			if x, _ = sub.At(i, v-r); x != 0 {
				visit(i)
			}
		}
	})

	return w.run(0) == r+c
}

// BlockReducible reports whether the connections from nodes `from` to nodes
// `to` are trivially reducible: either side is empty, or the bipartite
// from→to adjacency splits into independent blocks (which includes any
// node on one side with no connection to the other side).
//
// Inputs must be valid node indices of cm; out-of-range indices make the
// connection set undefined and are reported as reducible with an error.
func BlockReducible(cm *Matrix, from, to []int) (bool, error) {
	if len(from) == 0 || len(to) == 0 {
		return true, nil
	}
	sub, err := cm.d.Submatrix(from, to)
	if err != nil {
		return true, fmt.Errorf("connectivity: BlockReducible: %w", errJoinIndex(err))
	}

	return !BlockConnected(sub), nil
}

// IsStrong reports whether the subgraph of cm induced by nodes is strongly
// connected. Fewer than two nodes are trivially strong.
// Complexity: O(n²) for n = len(nodes).
func IsStrong(cm *Matrix, nodes []int) (bool, error) {
	if len(nodes) < 2 {
		return true, nil
	}
	sub, err := cm.d.Submatrix(nodes, nodes)
	if err != nil {
		return false, fmt.Errorf("connectivity: IsStrong: %w", errJoinIndex(err))
	}
	n := len(nodes)
	edge := func(i, j int) bool { v, _ := sub.At(i, j); return v != 0 }

	forward := newWalker(n, func(v int, visit func(int)) {
		for u := 0; u < n; u++ {
			if edge(v, u) {
				visit(u)
			}
		}
	})
	if forward.run(0) != n {
		return false, nil
	}
	backward := newWalker(n, func(v int, visit func(int)) {
		for u := 0; u < n; u++ {
			if edge(u, v) {
				visit(u)
			}
		}
	})

	return backward.run(0) == n, nil
}

func errJoinIndex(err error) error {
	return fmt.Errorf("%w: %w", ErrNodeIndex, err)
}
