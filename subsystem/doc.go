// Package subsystem provides the concrete subsystem and cut values that the
// analysis layer consumes.
//
// A Subsystem is a set of nodes of a Network observed in one network state,
// optionally with a Cut applied. A Cut severs every connection from its
// From nodes to its To nodes; applying it zeroes those entries of the
// connectivity matrix. Both types are immutable values: WithCut returns a
// new Subsystem.
package subsystem
