// SPDX-License-Identifier: MIT

package subsystem

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/phinet/connectivity"
	"github.com/katalvlaran/phinet/network"
)

// Subsystem is a set of network nodes in a given network state, possibly
// with a cut applied.
type Subsystem struct {
	net   *network.Network
	state []int // one entry per network node
	nodes []int // sorted, distinct
	cut   Cut
	cm    *connectivity.Matrix // network CM with cut applied
	hash  uint64
}

// New builds the subsystem of net made of nodes, observed in state.
// Stage 1 (Validate): net non-nil; state binary with one entry per network
// node; nodes resolvable.
// Stage 2 (Finalize): canonical node order, null cut, hash.
// Errors: ErrNilNetwork, ErrInvalidState, network.ErrUnknownLabel,
// network.ErrUnknownIndex.
func New(net *network.Network, state []int, nodes network.NodeRef) (*Subsystem, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if len(state) != net.Size() {
		return nil, fmt.Errorf("%w: %d entries for %d nodes", ErrInvalidState, len(state), net.Size())
	}
	for i, s := range state {
		if s != 0 && s != 1 {
			return nil, fmt.Errorf("%w: node %d has state %d", ErrInvalidState, i, s)
		}
	}
	idx, err := net.GenerateNodeIndices(nodes)
	if err != nil {
		return nil, fmt.Errorf("subsystem: New: %w", err)
	}

	return build(net, slices.Clone(state), idx, NullCut(), net.ConnectivityMatrix()), nil
}

// All returns the subsystem made of every node of net.
func All(net *network.Network, state []int) (*Subsystem, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	return New(net, state, network.ByIndex(net.NodeIndices()...))
}

func build(net *network.Network, state, nodes []int, cut Cut, cm *connectivity.Matrix) *Subsystem {
	s := &Subsystem{net: net, state: state, nodes: nodes, cut: cut, cm: cm}
	s.hash = s.computeHash()

	return s
}

func (s *Subsystem) computeHash() uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	put(s.net.Hash())
	for _, group := range [][]int{s.state, s.nodes, s.cut.From, s.cut.To} {
		put(uint64(len(group)))
		for _, v := range group {
			put(uint64(v))
		}
	}

	return h.Sum64()
}

// WithCut returns a copy of s with cut applied to its connectivity.
// Errors: ErrInvalidCut when the cut names nodes outside the subsystem.
func (s *Subsystem) WithCut(cut Cut) (*Subsystem, error) {
	cut = NewCut(cut.From, cut.To)
	if cut.IsNull() {
		cut = NullCut()
	}
	for _, i := range cut.Indices() {
		if _, found := slices.BinarySearch(s.nodes, i); !found {
			return nil, fmt.Errorf("%w: node %d is not in %v", ErrInvalidCut, i, s.nodes)
		}
	}
	cm, err := cut.Apply(s.net.ConnectivityMatrix())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCut, err)
	}

	return build(s.net, s.state, s.nodes, cut, cm), nil
}

// Network returns the network the subsystem belongs to.
func (s *Subsystem) Network() *network.Network { return s.net }

// State returns a copy of the network state.
func (s *Subsystem) State() []int { return slices.Clone(s.state) }

// NodeIndices returns a copy of the sorted node indices.
func (s *Subsystem) NodeIndices() []int { return slices.Clone(s.nodes) }

// NodeLabels returns the labels of the subsystem's nodes.
func (s *Subsystem) NodeLabels() []string {
	labels, _ := s.net.Indices2Labels(s.nodes...) // indices validated in New

	return labels
}

// Len returns the number of nodes.
func (s *Subsystem) Len() int { return len(s.nodes) }

// Cut returns a copy of the applied cut.
func (s *Subsystem) Cut() Cut { return NewCut(s.cut.From, s.cut.To) }

// IsCut reports whether a non-null cut is applied.
func (s *Subsystem) IsCut() bool { return !s.cut.IsNull() }

// ConnectivityMatrix returns the network's N×N connectivity matrix with the
// cut applied.
func (s *Subsystem) ConnectivityMatrix() *connectivity.Matrix { return s.cm }

// Equal reports whether both subsystems have the same network content,
// state, nodes and cut.
func (s *Subsystem) Equal(o *Subsystem) bool {
	if s == nil || o == nil {
		return s == o
	}

	return s.hash == o.hash &&
		s.net.Equal(o.net) &&
		slices.Equal(s.state, o.state) &&
		slices.Equal(s.nodes, o.nodes) &&
		s.cut.Equal(o.cut)
}

// Hash returns the content hash computed at construction.
func (s *Subsystem) Hash() uint64 { return s.hash }

// String renders e.g. "Subsystem[n0 n1]".
func (s *Subsystem) String() string {
	return fmt.Sprintf("Subsystem%v", s.NodeLabels())
}

// MarshalJSON emits {"network", "state", "nodes", "cut"}.
func (s *Subsystem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Network *network.Network `json:"network"`
		State   []int            `json:"state"`
		Nodes   []int            `json:"nodes"`
		Cut     Cut              `json:"cut"`
	}{Network: s.net, State: s.state, Nodes: s.nodes, Cut: s.cut})
}
