// Package sia holds the result of a system irreducibility analysis: the
// big-phi value of a subsystem, the cause-effect structures it was derived
// from, and the cut subsystem that makes the least difference.
//
// What
//
//   - Analysis is immutable. Build it with New from Fields, or with Null for
//     a reducible subsystem (phi = 0, empty structures, cut subsystem equal
//     to the subsystem).
//   - Irreducible reports phi > tolerance; values below the tolerance count
//     as zero.
//   - Equal compares phi within tolerance plus both cause-effect structures
//     and both subsystems. Timings never participate. Hash covers the same
//     fields through their structural content only, so equal analyses
//     always hash equally.
//   - Compare orders by phi (ties within tolerance), then subsystem size,
//     then subsystem node indices. Analyses over networks with different
//     content are not comparable (ErrIncomparable).
//   - Degenerate returns the null analysis straight away for subsystems
//     whose phi is zero by structure: empty, not strongly connected, or a
//     single node.
//
// The package consumes subsystems and distinctions through the Subsystem
// and Distinction interfaces; package subsystem and Concept provide the
// concrete values.
package sia
