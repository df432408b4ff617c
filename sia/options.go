// SPDX-License-Identifier: MIT

package sia

import "github.com/katalvlaran/phinet/matrix"

// DefaultSingleNodeSelfLoopPhi keeps single-node subsystems at zero phi even
// when the node has a self-loop.
const DefaultSingleNodeSelfLoopPhi = false

// Option configures New, Null and Degenerate.
type Option func(*options)

type options struct {
	eps         float64 // matrix.DefaultEpsilon
	selfLoopPhi bool    // DefaultSingleNodeSelfLoopPhi
}

func gatherOptions(opts []Option) options {
	o := options{eps: matrix.DefaultEpsilon, selfLoopPhi: DefaultSingleNodeSelfLoopPhi}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon sets the tolerance used for phi comparisons. Panics on
// invalid eps.
func WithEpsilon(eps float64) Option {
	eps = matrix.NewOptions(matrix.WithEpsilon(eps)).Epsilon()

	return func(o *options) { o.eps = eps }
}

// WithSingleNodeSelfLoopPhi lets a single node with a self-loop bypass the
// Degenerate shortcut.
func WithSingleNodeSelfLoopPhi(enabled bool) Option {
	return func(o *options) { o.selfLoopPhi = enabled }
}
