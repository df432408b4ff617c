// SPDX-License-Identifier: MIT

package sia

import (
	"slices"

	"github.com/katalvlaran/phinet/connectivity"
	"github.com/katalvlaran/phinet/network"
	"github.com/katalvlaran/phinet/subsystem"
)

// Subsystem is what an analysis needs from the subsystem it describes.
// *subsystem.Subsystem implements it.
type Subsystem interface {
	Network() *network.Network
	NodeIndices() []int
	NodeLabels() []string
	State() []int
	Len() int
	Cut() subsystem.Cut
	// ConnectivityMatrix is the network's N×N matrix with the cut applied.
	ConnectivityMatrix() *connectivity.Matrix
	Hash() uint64
}

var _ Subsystem = (*subsystem.Subsystem)(nil)

// sameSubsystem compares two subsystems by content.
func sameSubsystem(a, b Subsystem) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Hash() == b.Hash() &&
		a.Network().Equal(b.Network()) &&
		slices.Equal(a.NodeIndices(), b.NodeIndices()) &&
		slices.Equal(a.State(), b.State()) &&
		a.Cut().Equal(b.Cut())
}

// Distinction is one entry of a cause-effect structure: a mechanism, its
// cause and effect purviews, and its small-phi value.
type Distinction interface {
	Mechanism() []int
	Purview(dir network.Direction) []int
	Phi() float64
}
