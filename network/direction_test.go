package network_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/phinet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	t.Parallel()

	cases := map[string]network.Direction{
		"cause":      network.Cause,
		"past":       network.Cause,
		"PAST":       network.Cause,
		"effect":     network.Effect,
		"future":     network.Effect,
		" Effect ":   network.Effect,
		"\tfuture\n": network.Effect,
	}
	for in, want := range cases {
		got, err := network.ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := network.ParseDirection("sideways")
	require.ErrorIs(t, err, network.ErrDirection)
}

func TestDirection_Text(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(map[string]network.Direction{"d": network.Effect})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"effect"}`, string(b))

	var d network.Direction
	require.NoError(t, d.UnmarshalText([]byte("past")))
	assert.Equal(t, network.Cause, d)

	_, err = network.Direction(7).MarshalText()
	require.ErrorIs(t, err, network.ErrDirection)
	assert.Equal(t, "Direction(7)", network.Direction(7).String())
	assert.False(t, network.Direction(-1).Valid())
}
