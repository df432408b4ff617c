// Package phinet is the network layer of an integrated-information toolkit:
// it validates and canonicalizes the discrete dynamical systems that Φ
// analyses run over, and carries the result type those analyses produce.
//
// What is in the box?
//
//   - tpm/: transition probability matrices. Layout detection,
//     state-by-state ⇄ state-by-node ⇄ N-D conversion, validation of
//     probabilities and conditional independence.
//   - connectivity/: binary connectivity matrices, block reducibility,
//     strong connectivity.
//   - network/: Network (TPM + CM + labels + perturbation vector),
//     irreducible purviews, the shared PurviewCache, JSON/YAML loading and
//     golden-stable serialization.
//   - subsystem/: node subsets in a fixed state, with optional cuts.
//   - sia/: SystemIrreducibilityAnalysis ordering, equality and hashing, and
//     null results for degenerate subsystems.
//   - matrix/: frozen row-major float64 storage shared by all of the above.
//   - config/: YAML configuration (precision, caching, logging).
//
// Node and state conventions:
//
//	States are little-endian: in state index i, node k is ON iff bit k of i
//	is set. Node 0 therefore changes fastest along the rows of a 2-D TPM.
//
// Quick example (a two-node copy network, each node copies the other):
//
//	n0 ──▶ n1
//	 ▲      │
//	 └──────┘
//
//	net, err := network.NewFromRows([][]float64{
//		{0, 0},
//		{0, 1},
//		{1, 0},
//		{1, 1},
//	})
//
// The cmd/phinet binary wraps the same API: validate, inspect, convert,
// purviews and sia subcommands over JSON or YAML network files.
//
//	go install github.com/katalvlaran/phinet/cmd/phinet@latest
package phinet
