// SPDX-License-Identifier: MIT

package tpm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Array is a C-order (row-major) n-dimensional float64 array. It is the raw
// form a TPM arrives in before validation: nested lists from JSON/YAML or
// rows built in code.
type Array struct {
	shape []int     // extent of every dimension, all > 0
	data  []float64 // len == product(shape)
}

// NewArray copies shape and data into a new Array.
// Returns ErrDimensionality when shape is empty, holds a non-positive extent,
// or does not match len(data).
func NewArray(shape []int, data []float64) (*Array, error) {
	if len(shape) == 0 {
		return nil, invalid(ErrDimensionality, "array has no dimensions")
	}
	size := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, invalid(ErrDimensionality, "non-positive extent in shape %v", shape)
		}
		size *= d
	}
	if size != len(data) {
		return nil, invalid(ErrDimensionality, "shape %v needs %d values, got %d", shape, size, len(data))
	}

	a := &Array{shape: make([]int, len(shape)), data: make([]float64, len(data))}
	copy(a.shape, shape)
	copy(a.data, data)

	return a, nil
}

// NewArrayFromRows builds a 2-D Array from a rectangular [][]float64.
func NewArrayFromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 {
		return nil, invalid(ErrDimensionality, "no rows")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, invalid(ErrDimensionality, "row %d has %d columns, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}

	return NewArray([]int{len(rows), cols}, data)
}

// FromNested builds an Array from nested []any lists whose leaves are
// numbers (float64, float32, int, int64, uint64, json.Number). The nesting
// must be rectangular.
// Complexity: O(number of leaves).
func FromNested(v any) (*Array, error) {
	var shape []int
	for cur := v; ; {
		list, ok := cur.([]any)
		if !ok {
			break
		}
		if len(list) == 0 {
			return nil, invalid(ErrDimensionality, "empty list at depth %d", len(shape))
		}
		shape = append(shape, len(list))
		cur = list[0]
	}
	if len(shape) == 0 {
		return nil, invalid(ErrDimensionality, "expected a nested list, got %T", v)
	}

	size := 1
	for _, d := range shape {
		size *= d
	}
	data := make([]float64, 0, size)
	if err := flatten(v, shape, 0, &data); err != nil {
		return nil, err
	}

	return &Array{shape: shape, data: data}, nil
}

// flatten appends the leaves of v in C order, checking every list against
// the expected extent at its depth.
func flatten(v any, shape []int, depth int, out *[]float64) error {
	if depth == len(shape) {
		f, err := toFloat(v)
		if err != nil {
			return err
		}
		*out = append(*out, f)

		return nil
	}
	list, ok := v.([]any)
	if !ok || len(list) != shape[depth] {
		return invalid(ErrDimensionality, "ragged nesting at depth %d", depth)
	}
	for _, item := range list {
		if err := flatten(item, shape, depth+1, out); err != nil {
			return err
		}
	}

	return nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case json.Number:
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return 0, invalidFrom(ErrProbability, err)
		}

		return f, nil
	case []any:
		return 0, invalid(ErrDimensionality, "ragged nesting: list where a number was expected")
	default:
		return 0, invalid(ErrProbability, "non-numeric entry of type %T", v)
	}
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() []int {
	out := make([]int, len(a.shape))
	copy(out, a.shape)

	return out
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int { return len(a.shape) }

// Len returns the number of stored values.
func (a *Array) Len() int { return len(a.data) }

// Data returns a copy of the flat C-order values.
func (a *Array) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// At returns the value at the full index idx.
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("tpm: Array.At: %d indices for %d dimensions: %w", len(idx), len(a.shape), ErrState)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, fmt.Errorf("tpm: Array.At: index %d out of range in dimension %d: %w", i, k, ErrState)
		}
		off = off*a.shape[k] + i
	}

	return a.data[off], nil
}

// Nested returns the array as nested []any lists of float64 leaves.
func (a *Array) Nested() any {
	pos := 0

	return a.nest(0, &pos)
}

func (a *Array) nest(depth int, pos *int) any {
	if depth == len(a.shape) {
		v := a.data[*pos]
		*pos++

		return v
	}
	out := make([]any, a.shape[depth])
	for i := range out {
		out[i] = a.nest(depth+1, pos)
	}

	return out
}

// MarshalJSON encodes the array as nested lists.
func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Nested())
}

// UnmarshalJSON decodes nested lists into the array.
func (a *Array) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	parsed, err := FromNested(v)
	if err != nil {
		return err
	}
	*a = *parsed

	return nil
}

// UnmarshalYAML decodes a YAML sequence of sequences into the array.
func (a *Array) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	parsed, err := FromNested(v)
	if err != nil {
		return err
	}
	*a = *parsed

	return nil
}
