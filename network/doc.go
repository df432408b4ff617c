// Package network is the model every integrated-information computation
// runs against: a validated, frozen pair of transition probability matrix
// and connectivity matrix, plus a per-instance cache of the purviews that
// can ever matter for a given mechanism.
//
// What
//
//   - New validates the TPM (any of the three layouts, see package tpm) and
//     the CM, converts the TPM to canonical N-D state-by-node form, freezes
//     TPM, CM and perturbation vector, and hashes them once.
//   - Equal and Hash depend only on that numeric content, so networks built
//     from state-by-state and state-by-node input compare equal.
//   - Node identifiers can be given by label or by index through the
//     tagged NodeRef (ByLabel / ByIndex); they are resolved before any
//     indexing logic runs.
//   - PotentialPurviews(direction, mechanism) returns every purview that is
//     not block-reducible over the CM, memoized per Network in a
//     PurviewCache that is safe for concurrent use.
//   - FromFile / FromJSON / FromYAML load {tpm, cm} documents; MarshalJSON
//     emits {tpm, cm, size}.
//
// Concurrency
//
//	A Network is immutable after New and may be shared across goroutines
//	without locking. Its PurviewCache serializes writes internally and
//	de-duplicates concurrent computations of the same key.
//
// Errors
//
//	Construction failures match ErrValidation plus a sub-kind
//	(tpm.ErrDimensionality, tpm.ErrProbability, connectivity.ErrNonSquare,
//	connectivity.ErrNonBinary, ErrSizeMismatch, ErrPerturbVector,
//	ErrNodeLabels). Label and index translation fails with ErrUnknownLabel
//	or ErrUnknownIndex.
package network
