// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// DefaultEpsilon is the tolerance used by probability and closeness checks.
// It equals 10^-6, the default numeric precision of the network model.
const DefaultEpsilon = 1e-6

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the numeric tolerance eps used by probability checks.
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }
