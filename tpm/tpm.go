// SPDX-License-Identifier: MIT

package tpm

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/phinet/matrix"
)

// TPM is a validated transition probability matrix in canonical
// state-by-node form. It is immutable: the backing matrix is frozen and
// every accessor returns copies or read-only views.
//
// The zero value is not usable; build one with New.
type TPM struct {
	sbn  *matrix.Dense // S×N, little-endian rows, frozen
	n    int           // number of nodes
	hash uint64        // content hash of sbn, computed once
}

// New validates a, converts it to canonical form and freezes it.
// Stage 1 (Validate): Validate(a, opts...).
// Stage 2 (Convert): state-by-state input is marginalised first; every
// state-by-node form is then brought to S×N little-endian rows.
// Stage 3 (Finalize): copy into a frozen Dense and hash once.
// Complexity: dominated by Validate.
func New(a *Array, opts ...Option) (*TPM, error) {
	if err := Validate(a, opts...); err != nil {
		return nil, err
	}

	src := a
	if IsStateByState(a) {
		src = stateByStateToNode(a)
	}
	two, err := ToTwoDimensional(src)
	if err != nil {
		return nil, invalidFrom(ErrDimensionality, err)
	}

	s, n := two.shape[0], two.shape[1]
	rows := make([][]float64, s)
	for i := range rows {
		rows[i] = two.data[i*n : (i+1)*n]
	}
	d, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, invalidFrom(ErrDimensionality, err)
	}
	d.Freeze()

	return &TPM{sbn: d, n: n, hash: d.Hash()}, nil
}

// FromRows is New over a 2-D [][]float64 (state-by-state or state-by-node).
func FromRows(rows [][]float64, opts ...Option) (*TPM, error) {
	a, err := NewArrayFromRows(rows)
	if err != nil {
		return nil, err
	}

	return New(a, opts...)
}

// Size returns the number of nodes N.
func (t *TPM) Size() int { return t.n }

// NumStates returns 2^N.
func (t *TPM) NumStates() int { return t.sbn.Rows() }

// At returns the probability that node is ON at t+1 given prior state.
func (t *TPM) At(state []int, node int) (float64, error) {
	if len(state) != t.n {
		return 0, fmt.Errorf("tpm: At: state has %d nodes, want %d: %w", len(state), t.n, ErrState)
	}
	i, err := StateIndex(state)
	if err != nil {
		return 0, err
	}

	return t.sbn.At(i, node)
}

// Row returns a copy of the per-node ON probabilities for the prior state
// with little-endian index i.
func (t *TPM) Row(i int) ([]float64, error) { return t.sbn.Row(i) }

// StateByNode returns the frozen S×N matrix. Set on it fails with
// matrix.ErrFrozen.
func (t *TPM) StateByNode() *matrix.Dense { return t.sbn }

// Array returns a fresh copy of the canonical [2]*N+[N] tensor.
func (t *TPM) Array() *Array {
	s := t.sbn.Rows()
	data := make([]float64, 0, s*t.n)
	for _, row := range t.sbn.RawRows() {
		data = append(data, row...)
	}
	nd, _ := ToNDimensional(&Array{shape: []int{s, t.n}, data: data}) // canonical by construction

	return nd
}

// Equal reports element-wise equality of two TPMs.
func (t *TPM) Equal(o *TPM) bool {
	if t == nil || o == nil {
		return t == o
	}

	return t.hash == o.hash && matrix.Equal(t.sbn, o.sbn)
}

// Hash returns the content hash computed at construction.
func (t *TPM) Hash() uint64 { return t.hash }

// MarshalJSON encodes the canonical N-D tensor as nested lists.
func (t *TPM) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Array())
}
