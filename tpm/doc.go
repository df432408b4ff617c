// Package tpm validates and canonicalises transition probability matrices.
//
// What
//
//   - Array: a C-order n-dimensional float64 array, decoded from nested
//     JSON or YAML lists exactly as they appear in a network file.
//   - Validate: shape, probability and (for state-by-state input)
//     row-sum and conditional-independence checks.
//   - Converters between the three accepted layouts:
//     state-by-state (S×S), 2-D state-by-node (S×N) and N-D state-by-node
//     ([2]*N+[N]), where S = 2^N.
//   - TPM: the frozen canonical form every other package consumes.
//
// Indexing convention
//
//	Prior states are enumerated little-endian ("low index, low order"):
//	row i of a 2-D TPM is the state whose node k is ON iff bit k of i is set,
//	so the N-D index (b_0, ..., b_{N-1}) corresponds to row Σ b_k·2^k.
//	ToNDimensional is the single place where this mapping is fixed.
//
// Complexity (N = nodes, S = 2^N)
//
//   - Validate: O(S·N) for state-by-node, O(S²·N) for state-by-state.
//   - StateByStateToStateByNode: O(S²·N). StateByNodeToStateByState: O(S²·N).
//   - ToNDimensional / ToTwoDimensional: O(S·N).
package tpm
