// SPDX-License-Identifier: MIT

package network

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/phinet/connectivity"
	"github.com/katalvlaran/phinet/matrix"
	"github.com/katalvlaran/phinet/tpm"
)

// Network is an immutable pair of TPM and connectivity matrix together with
// the perturbation vector and node labels.
//
// The zero value is not usable; build one with New.
type Network struct {
	tpm     *tpm.TPM
	cm      *connectivity.Matrix
	perturb *matrix.Dense // 1×N, frozen
	labels  []string
	byLabel map[string]int
	eps     float64
	hash    uint64

	caching bool
	cache   *PurviewCache
	logger  *slog.Logger
}

// New validates a and the options, converts a to canonical form and freezes
// every numeric component.
// Stage 1 (TPM): tpm.New with the configured tolerance.
// Stage 2 (CM): explicit rows or the fully connected default; size must
// equal the TPM's node count.
// Stage 3 (Perturbation, labels): lengths and ranges.
// Stage 4 (Finalize): hash once, bind the purview cache.
// Errors always match ErrValidation plus a sub-kind.
func New(a *tpm.Array, opts ...Option) (*Network, error) {
	o := gatherOptions(opts)

	t, err := tpm.New(a, tpm.WithEpsilon(o.eps), tpm.WithIndependenceCheck(o.checkIndependence))
	if err != nil {
		return nil, invalid(err)
	}
	n := t.Size()

	var cm *connectivity.Matrix
	if o.cm == nil {
		cm, err = connectivity.Full(n)
	} else {
		cm, err = connectivity.New(o.cm)
	}
	if err != nil {
		return nil, invalid(err)
	}
	if cm.Size() != n {
		return nil, invalid(fmt.Errorf("%w: cm is %dx%d, tpm has %d nodes", ErrSizeMismatch, cm.Size(), cm.Size(), n))
	}

	perturb, err := buildPerturb(o.perturb, n, o.eps)
	if err != nil {
		return nil, invalid(err)
	}
	labels, byLabel, err := buildLabels(o.labels, n)
	if err != nil {
		return nil, invalid(err)
	}

	net := &Network{
		tpm:     t,
		cm:      cm,
		perturb: perturb,
		labels:  labels,
		byLabel: byLabel,
		eps:     o.eps,
		caching: o.caching,
		cache:   o.cache,
		logger:  o.logger,
	}
	net.hash = combineHashes(t.Hash(), cm.Hash(), perturb.Hash())

	if net.cache == nil {
		net.cache = NewPurviewCache()
	}
	if err = net.cache.bind(net.hash); err != nil {
		return nil, networkErrorf("New", err)
	}

	return net, nil
}

// NewFromRows is New over a 2-D state-by-state or state-by-node TPM.
func NewFromRows(rows [][]float64, opts ...Option) (*Network, error) {
	a, err := tpm.NewArrayFromRows(rows)
	if err != nil {
		return nil, invalid(err)
	}

	return New(a, opts...)
}

func buildPerturb(v []float64, n int, eps float64) (*matrix.Dense, error) {
	if v == nil {
		v = make([]float64, n)
		for i := range v {
			v[i] = DefaultPerturbation
		}
	}
	if err := matrix.ValidateVecLen(v, n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPerturbVector, err)
	}
	d, err := matrix.NewDenseFrom([][]float64{v})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPerturbVector, err)
	}
	if err = matrix.ValidateProbabilities(d, eps); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPerturbVector, err)
	}
	d.Freeze()

	return d, nil
}

func buildLabels(labels []string, n int) ([]string, map[string]int, error) {
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = "n" + strconv.Itoa(i)
		}
	}
	if len(labels) != n {
		return nil, nil, fmt.Errorf("%w: %d labels for %d nodes", ErrNodeLabels, len(labels), n)
	}
	byLabel := make(map[string]int, n)
	for i, l := range labels {
		if l == "" {
			return nil, nil, fmt.Errorf("%w: empty label for node %d", ErrNodeLabels, i)
		}
		if _, dup := byLabel[l]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate label %q", ErrNodeLabels, l)
		}
		if _, err := strconv.Atoi(l); err == nil {
			return nil, nil, fmt.Errorf("%w: label %q looks like an index", ErrNodeLabels, l)
		}
		byLabel[l] = i
	}

	return labels, byLabel, nil
}

func combineHashes(hs ...uint64) uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, v := range hs {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

// TPM returns the canonical, frozen TPM.
func (n *Network) TPM() *tpm.TPM { return n.tpm }

// ConnectivityMatrix returns the frozen connectivity matrix.
func (n *Network) ConnectivityMatrix() *connectivity.Matrix { return n.cm }

// PerturbVector returns a copy of the per-node perturbation probabilities.
func (n *Network) PerturbVector() []float64 {
	v, _ := n.perturb.Row(0) // 1×N by construction

	return v
}

// PerturbMatrix returns the frozen 1×N perturbation vector.
func (n *Network) PerturbMatrix() *matrix.Dense { return n.perturb }

// Size returns the number of nodes N.
func (n *Network) Size() int { return n.tpm.Size() }

// NumStates returns 2^N.
func (n *Network) NumStates() int { return n.tpm.NumStates() }

// Epsilon returns the numeric tolerance the network was built with.
func (n *Network) Epsilon() float64 { return n.eps }

// NodeIndices returns 0..N-1.
func (n *Network) NodeIndices() []int {
	out := make([]int, n.Size())
	for i := range out {
		out[i] = i
	}

	return out
}

// NodeLabels returns a copy of the node labels. Networks built without
// labels use n0, n1, ...
func (n *Network) NodeLabels() []string { return slices.Clone(n.labels) }

// PurviewCache returns the network's purview cache.
func (n *Network) PurviewCache() *PurviewCache { return n.cache }

// Labels2Indices maps labels to node indices, preserving order.
// Returns ErrUnknownLabel for a label that names no node.
func (n *Network) Labels2Indices(labels ...string) ([]int, error) {
	out := make([]int, len(labels))
	for k, l := range labels {
		i, ok := n.byLabel[l]
		if !ok {
			return nil, fmt.Errorf("network: Labels2Indices: %w: %q", ErrUnknownLabel, l)
		}
		out[k] = i
	}

	return out, nil
}

// Indices2Labels maps node indices to labels, preserving order.
// Returns ErrUnknownIndex for an index outside [0, N).
func (n *Network) Indices2Labels(indices ...int) ([]string, error) {
	out := make([]string, len(indices))
	for k, i := range indices {
		if i < 0 || i >= len(n.labels) {
			return nil, fmt.Errorf("network: Indices2Labels: %w: %d", ErrUnknownIndex, i)
		}
		out[k] = n.labels[i]
	}

	return out, nil
}

// GenerateNodeIndices resolves ref to a deduplicated, ascending index list.
// Errors: ErrUnknownLabel, ErrUnknownIndex.
// Complexity: O(k log k) for k referenced nodes.
func (n *Network) GenerateNodeIndices(ref NodeRef) ([]int, error) {
	var (
		idx []int
		err error
	)
	if ref.byLabel {
		if idx, err = n.Labels2Indices(ref.labels...); err != nil {
			return nil, err
		}
	} else {
		idx = slices.Clone(ref.indices)
	}
	if err = n.checkIndices("GenerateNodeIndices", idx); err != nil {
		return nil, err
	}

	return canonical(idx), nil
}

func (n *Network) checkIndices(tag string, idx []int) error {
	for _, i := range idx {
		if i < 0 || i >= n.Size() {
			return fmt.Errorf("network: %s: %w: %d", tag, ErrUnknownIndex, i)
		}
	}

	return nil
}

// canonical sorts and deduplicates idx in place and never returns nil.
func canonical(idx []int) []int {
	if idx == nil {
		return []int{}
	}
	slices.Sort(idx)

	return slices.Compact(idx)
}

// Equal reports whether n and o hold the same TPM, CM and perturbation
// vector. Labels, options and cache state do not participate.
func (n *Network) Equal(o *Network) bool {
	if n == nil || o == nil {
		return n == o
	}

	return n.hash == o.hash &&
		n.tpm.Equal(o.tpm) &&
		n.cm.Equal(o.cm) &&
		matrix.Equal(n.perturb, o.perturb)
}

// Hash returns the content hash computed at construction.
func (n *Network) Hash() uint64 { return n.hash }

// String returns a short description, e.g. "Network(3 nodes, 8 states)".
func (n *Network) String() string {
	return fmt.Sprintf("Network(%d nodes, %d states)", n.Size(), n.NumStates())
}
