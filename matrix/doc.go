// Package matrix provides the frozen numeric storage shared by the phinet
// network model.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors.
//   - Freeze, which turns a Dense into a read-only value: every later Set
//     fails with ErrFrozen, so TPMs and connectivity matrices cannot change
//     after a Network has been built from them.
//   - Content hashing (xxhash over shape and IEEE-754 bits) and exact or
//     tolerance-based equality.
//   - Validators for the numeric policy used by TPM and CM ingestion:
//     finiteness, binary entries, probabilities and row-stochastic rows.
//
// Determinism:
//
//	All loops run in fixed row-major order. No map iteration, no randomness.
//
// Complexity:
//
//	At/Set are O(1). Clone, Equal, Hash and the validators are O(r*c).
package matrix
