// SPDX-License-Identifier: MIT

package network

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/phinet/connectivity"
	"github.com/katalvlaran/phinet/tpm"
)

// document is the on-disk form. Only tpm is required.
type document struct {
	TPM           *tpm.Array  `json:"tpm" yaml:"tpm"`
	CM            [][]float64 `json:"cm,omitempty" yaml:"cm,omitempty"`
	Size          int         `json:"size,omitempty" yaml:"size,omitempty"`
	NodeLabels    []string    `json:"node_labels,omitempty" yaml:"node_labels,omitempty"`
	PerturbVector []float64   `json:"perturb_vector,omitempty" yaml:"perturb_vector,omitempty"`
}

// serialized is the emitted form.
type serialized struct {
	TPM  *tpm.TPM             `json:"tpm"`
	CM   *connectivity.Matrix `json:"cm"`
	Size int                  `json:"size"`
}

// MarshalJSON emits {"tpm": <N-D nested lists>, "cm": <0/1 rows>, "size": N}.
func (n *Network) MarshalJSON() ([]byte, error) {
	return json.Marshal(serialized{TPM: n.tpm, CM: n.cm, Size: n.Size()})
}

// UnmarshalJSON rebuilds a network from its serialized form with default
// options.
func (n *Network) UnmarshalJSON(b []byte) error {
	built, err := FromJSON(bytes.NewReader(b))
	if err != nil {
		return err
	}
	*n = *built

	return nil
}

// FromJSON reads a {tpm, cm} document. Optional keys size, node_labels and
// perturb_vector are honoured; opts are applied after the document's own
// settings and win over them.
func FromJSON(r io.Reader, opts ...Option) (*Network, error) {
	dec := json.NewDecoder(r)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, decodeError("FromJSON", err)
	}

	return doc.build(opts)
}

// FromYAML reads the same document as FromJSON, written in YAML.
func FromYAML(r io.Reader, opts ...Option) (*Network, error) {
	dec := yaml.NewDecoder(r)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, decodeError("FromYAML", err)
	}

	return doc.build(opts)
}

// FromFile loads a network from path. Files ending in .yml or .yaml are
// read as YAML, everything else as JSON.
func FromFile(path string, opts ...Option) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, networkErrorf("FromFile", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FromYAML(f, opts...)
	default:
		return FromJSON(f, opts...)
	}
}

func (doc document) build(opts []Option) (*Network, error) {
	if doc.TPM == nil {
		return nil, invalid(fmt.Errorf("%w: document has no tpm", tpm.ErrDimensionality))
	}
	base := make([]Option, 0, 3+len(opts))
	if doc.CM != nil {
		base = append(base, WithConnectivity(doc.CM))
	}
	if doc.NodeLabels != nil {
		base = append(base, WithNodeLabels(doc.NodeLabels...))
	}
	if doc.PerturbVector != nil {
		base = append(base, WithPerturbVector(doc.PerturbVector...))
	}

	if n := impliedNodes(doc.TPM); doc.Size != 0 && doc.Size != n {
		return nil, invalid(fmt.Errorf("%w: size %d, tpm has %d nodes", ErrSizeMismatch, doc.Size, n))
	}

	return New(doc.TPM, append(base, opts...)...)
}

// impliedNodes reads the node count off the raw tpm shape: log2 of the side
// for a square state-by-state matrix, the last extent otherwise.
func impliedNodes(a *tpm.Array) int {
	shape := a.Shape()
	if tpm.IsStateByState(a) {
		return bits.Len(uint(shape[0])) - 1
	}

	return shape[len(shape)-1]
}

// decodeError keeps validation failures raised while decoding the tpm under
// ErrValidation and tags everything else as a read failure.
func decodeError(tag string, err error) error {
	if errors.Is(err, tpm.ErrValidation) {
		return invalid(err)
	}

	return networkErrorf(tag, err)
}
