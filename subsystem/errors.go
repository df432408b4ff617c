// SPDX-License-Identifier: MIT
// Package subsystem: sentinel error set.

package subsystem

import "errors"

var (
	// ErrInvalidState signals a state that is not a binary vector with one
	// entry per network node.
	ErrInvalidState = errors.New("subsystem: invalid state")

	// ErrInvalidCut signals a cut naming nodes outside the subsystem.
	ErrInvalidCut = errors.New("subsystem: invalid cut")

	// ErrNilNetwork signals a missing network.
	ErrNilNetwork = errors.New("subsystem: nil network")
)
