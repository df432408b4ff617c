// SPDX-License-Identifier: MIT
// Package sia: sentinel error set.

package sia

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the umbrella kind for New failures.
	ErrValidation = errors.New("sia: validation failed")

	// ErrPhi signals a phi that is not finite or is negative.
	ErrPhi = errors.New("sia: invalid phi")

	// ErrSubsystem signals a missing subsystem, or a cut subsystem on a
	// different network.
	ErrSubsystem = errors.New("sia: invalid subsystem")

	// ErrDuration signals a negative timing.
	ErrDuration = errors.New("sia: negative duration")

	// ErrIncomparable signals ordering across networks with different content.
	ErrIncomparable = errors.New("sia: analyses belong to different networks")

	// ErrEmpty signals Min or Max over no analyses, or a nil entry passed
	// to Sort.
	ErrEmpty = errors.New("sia: no analyses")
)

func invalid(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrValidation, kind, fmt.Sprintf(format, args...))
}
