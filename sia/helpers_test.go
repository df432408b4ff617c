package sia_test

import (
	"testing"

	"github.com/katalvlaran/phinet/network"
	"github.com/katalvlaran/phinet/sia"
	"github.com/katalvlaran/phinet/subsystem"
	"github.com/stretchr/testify/require"
)

// uniformNetwork returns an n-node network whose nodes fire with
// probability 0.5 regardless of the prior state.
func uniformNetwork(t *testing.T, n int, opts ...network.Option) *network.Network {
	t.Helper()
	rows := make([][]float64, 1<<n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for k := range rows[i] {
			rows[i][k] = 0.5
		}
	}
	net, err := network.NewFromRows(rows, opts...)
	require.NoError(t, err)

	return net
}

func mustSubsystem(t *testing.T, net *network.Network, nodes ...int) *subsystem.Subsystem {
	t.Helper()
	sub, err := subsystem.New(net, make([]int, net.Size()), network.ByIndex(nodes...))
	require.NoError(t, err)

	return sub
}

func mustAnalysis(t *testing.T, phi float64, sub sia.Subsystem) *sia.Analysis {
	t.Helper()
	a, err := sia.New(sia.Fields{Phi: phi, Subsystem: sub})
	require.NoError(t, err)

	return a
}
