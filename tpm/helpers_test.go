package tpm_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/phinet/tpm"
	"github.com/stretchr/testify/require"
)

// twoNodeSBN is a 2-node state-by-node TPM (little-endian rows) where each
// node copies the other.
var twoNodeSBN = [][]float64{
	{0, 0},
	{0, 1},
	{1, 0},
	{1, 1},
}

// twoNodeSBS is twoNodeSBN written state-by-state.
var twoNodeSBS = [][]float64{
	{1, 0, 0, 0},
	{0, 0, 1, 0},
	{0, 1, 0, 0},
	{0, 0, 0, 1},
}

// mustArray builds a 2-D Array or fails the test.
func mustArray(t *testing.T, rows [][]float64) *tpm.Array {
	t.Helper()
	a, err := tpm.NewArrayFromRows(rows)
	require.NoError(t, err)

	return a
}

// dyadicSBN draws an n-node state-by-node TPM whose entries are multiples of
// 1/4, so that every conversion is exact in float64.
func dyadicSBN(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, 1<<n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for k := range rows[i] {
			rows[i][k] = float64(rng.Intn(5)) / 4
		}
	}

	return rows
}
