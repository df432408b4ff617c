// SPDX-License-Identifier: MIT

package network

import (
	"log/slog"

	"github.com/katalvlaran/phinet/matrix"
	"github.com/katalvlaran/phinet/tpm"
)

// DefaultPerturbation is the ON probability used for every node when no
// perturbation vector is given.
const DefaultPerturbation = 0.5

// DefaultPurviewCaching enables memoization of potential purviews.
const DefaultPurviewCaching = true

// Option configures New.
type Option func(*options)

type options struct {
	cm                [][]float64 // nil = fully connected
	labels            []string    // nil = n0..n{N-1}
	perturb           []float64   // nil = DefaultPerturbation everywhere
	eps               float64     // matrix.DefaultEpsilon
	checkIndependence bool        // tpm.DefaultCheckIndependence
	caching           bool        // DefaultPurviewCaching
	cache             *PurviewCache
	logger            *slog.Logger
}

func gatherOptions(opts []Option) options {
	o := options{
		eps:               matrix.DefaultEpsilon,
		checkIndependence: tpm.DefaultCheckIndependence,
		caching:           DefaultPurviewCaching,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithConnectivity sets the connectivity matrix rows. Row i, column j is 1
// when node i can influence node j.
func WithConnectivity(rows [][]float64) Option {
	cp := make([][]float64, len(rows))
	for i, r := range rows {
		cp[i] = append([]float64(nil), r...)
	}

	return func(o *options) { o.cm = cp }
}

// WithNodeLabels sets the human-readable node labels, one per node.
func WithNodeLabels(labels ...string) Option {
	cp := append([]string(nil), labels...)

	return func(o *options) { o.labels = cp }
}

// WithPerturbVector sets the per-node ON probability used when a node is
// perturbed into an unconstrained state.
func WithPerturbVector(v ...float64) Option {
	cp := append([]float64(nil), v...)

	return func(o *options) { o.perturb = cp }
}

// WithEpsilon sets the numeric tolerance. Panics on invalid eps.
func WithEpsilon(eps float64) Option {
	eps = matrix.NewOptions(matrix.WithEpsilon(eps)).Epsilon()

	return func(o *options) { o.eps = eps }
}

// WithIndependenceCheck toggles the conditional-independence check applied
// to state-by-state TPM input.
func WithIndependenceCheck(enabled bool) Option {
	return func(o *options) { o.checkIndependence = enabled }
}

// WithPurviewCaching toggles memoization of PotentialPurviews.
func WithPurviewCaching(enabled bool) Option {
	return func(o *options) { o.caching = enabled }
}

// WithPurviewCache reuses c instead of allocating a fresh cache. A cache
// binds to the content hash of the first Network built with it; New fails
// with ErrCacheOwner when c is already bound to different content.
func WithPurviewCache(c *PurviewCache) Option {
	return func(o *options) { o.cache = c }
}

// WithLogger routes debug output (cache misses) to l. Nil keeps the
// network silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
