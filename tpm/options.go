// SPDX-License-Identifier: MIT

package tpm

import "github.com/katalvlaran/phinet/matrix"

// DefaultCheckIndependence enables the conditional-independence check on
// state-by-state input.
const DefaultCheckIndependence = true

// Option configures validation and conversion.
type Option func(*options)

type options struct {
	eps               float64 // matrix.DefaultEpsilon
	checkIndependence bool    // DefaultCheckIndependence
}

func gatherOptions(opts []Option) options {
	o := options{eps: matrix.DefaultEpsilon, checkIndependence: DefaultCheckIndependence}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon sets the probability tolerance. It panics on invalid eps,
// like matrix.WithEpsilon.
func WithEpsilon(eps float64) Option {
	eps = matrix.NewOptions(matrix.WithEpsilon(eps)).Epsilon()

	return func(o *options) { o.eps = eps }
}

// WithIndependenceCheck toggles the conditional-independence check applied
// to state-by-state input.
func WithIndependenceCheck(enabled bool) Option {
	return func(o *options) { o.checkIndependence = enabled }
}
