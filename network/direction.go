// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"strings"
)

// Direction is the temporal direction of a cause-effect query.
type Direction int

const (
	// Cause looks into the past: purview nodes at t-1 constrain the
	// mechanism at t.
	Cause Direction = iota

	// Effect looks into the future: the mechanism at t constrains purview
	// nodes at t+1.
	Effect
)

// Directions lists both directions in canonical order.
var Directions = [...]Direction{Cause, Effect}

// String returns "cause" or "effect".
func (d Direction) String() string {
	switch d {
	case Cause:
		return "cause"
	case Effect:
		return "effect"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is Cause or Effect.
func (d Direction) Valid() bool { return d == Cause || d == Effect }

// ParseDirection accepts "cause"/"past" and "effect"/"future", case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cause", "past":
		return Cause, nil
	case "effect", "future":
		return Effect, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrDirection, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrDirection, int(d))
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}
