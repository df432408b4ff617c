// SPDX-License-Identifier: MIT

package sia

import (
	"log/slog"

	"github.com/katalvlaran/phinet/connectivity"
)

// Degenerate returns the null analysis when sub's phi is zero by structure
// alone, and ok = false otherwise. The structural cases are:
//   - the subsystem has no nodes;
//   - its cut connectivity restricted to its nodes is not strongly connected;
//   - it is a single node without a self-loop, or with one unless
//     WithSingleNodeSelfLoopPhi(true) is given.
//
// The reason is logged at Info when logger is non-nil.
func Degenerate(sub Subsystem, logger *slog.Logger, opts ...Option) (*Analysis, bool) {
	if sub == nil {
		return nil, false
	}
	o := gatherOptions(opts)
	nodes := sub.NodeIndices()

	reason := ""
	switch strong, err := connectivity.IsStrong(sub.ConnectivityMatrix(), nodes); {
	case len(nodes) == 0:
		reason = "subsystem is empty"
	case err != nil:
		if logger != nil {
			logger.Warn("cannot check strong connectivity", "nodes", nodes, "err", err)
		}

		return nil, false
	case !strong:
		reason = "subsystem is not strongly connected"
	case len(nodes) == 1 && !sub.ConnectivityMatrix().Connected(nodes[0], nodes[0]):
		reason = "single node without a self-loop"
	case len(nodes) == 1 && !o.selfLoopPhi:
		reason = "single node with a self-loop"
	default:
		return nil, false
	}

	if logger != nil {
		logger.Info("returning null analysis", "reason", reason, "nodes", nodes)
	}
	a, err := Null(sub, opts...)
	if err != nil {
		return nil, false
	}

	return a, true
}
