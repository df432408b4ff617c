// Package connectivity holds the binary connectivity matrix (CM) of a
// network and the purely structural tests run against it.
//
// What
//
//   - Matrix: a frozen N×N binary adjacency; entry (i, j) == 1 means node i
//     can influence node j. Full(n) is the all-ones default, self-loops
//     included.
//   - BlockReducible: whether the connections from one node set to another
//     fall apart into independent blocks, making any mechanism/purview pair
//     over them trivially reducible without touching the TPM.
//   - IsStrong: strong connectivity of an induced subgraph.
//
// Why
//
//	Both tests are cheap graph reachability checks, so the purview cache and
//	the degenerate-subsystem shortcut can discard candidates before any
//	numeric evaluation. They are conservative: a false result never hides a
//	candidate that could matter.
//
// Complexity (n = |from|+|to| or |nodes|)
//
//   - BlockReducible: O(n²) to extract the sub-matrix plus O(n²) BFS.
//   - IsStrong: two BFS passes, O(n²).
package connectivity
