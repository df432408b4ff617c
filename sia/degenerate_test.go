package sia_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/phinet/network"
	"github.com/katalvlaran/phinet/sia"
	"github.com/katalvlaran/phinet/subsystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegenerate(t *testing.T) {
	t.Parallel()

	full := uniformNetwork(t, 3)
	// 0 ⇄ 1, 2 only listens; 2 has no self-loop, 0 has one
	sparse := uniformNetwork(t, 3, network.WithConnectivity([][]float64{
		{1, 1, 1},
		{1, 0, 1},
		{0, 0, 0},
	}))

	cutFull, err := mustSubsystem(t, full, 0, 1).WithCut(subsystem.NewCut([]int{0}, []int{1}))
	require.NoError(t, err)

	cases := []struct {
		name   string
		sub    sia.Subsystem
		opts   []sia.Option
		isNull bool
		reason string
	}{
		{"empty", mustSubsystem(t, full), nil, true, "subsystem is empty"},
		{"not strongly connected", mustSubsystem(t, sparse, 0, 1, 2), nil, true, "not strongly connected"},
		{"cut breaks the cycle", cutFull, nil, true, "not strongly connected"},
		{"single node without self-loop", mustSubsystem(t, sparse, 2), nil, true, "without a self-loop"},
		{"single node with self-loop", mustSubsystem(t, sparse, 0), nil, true, "with a self-loop"},
		{"single node with self-loop allowed", mustSubsystem(t, sparse, 0),
			[]sia.Option{sia.WithSingleNodeSelfLoopPhi(true)}, false, ""},
		{"strongly connected pair", mustSubsystem(t, sparse, 0, 1), nil, false, ""},
		{"full network", mustSubsystem(t, full, 0, 1, 2), nil, false, ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			a, ok := sia.Degenerate(tc.sub, logger, tc.opts...)
			require.Equal(t, tc.isNull, ok)
			if !tc.isNull {
				require.Nil(t, a)
				assert.Empty(t, buf.String())

				return
			}
			require.NotNil(t, a)
			assert.Zero(t, a.Phi())
			assert.Same(t, tc.sub, a.CutSubsystem())
			assert.Contains(t, buf.String(), tc.reason)
		})
	}

	a, ok := sia.Degenerate(nil, nil)
	assert.Nil(t, a)
	assert.False(t, ok)
}
