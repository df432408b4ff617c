package subsystem_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/phinet/connectivity"
	"github.com/katalvlaran/phinet/matrix"
	"github.com/katalvlaran/phinet/network"
	"github.com/katalvlaran/phinet/subsystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestNew(t *testing.T) {
	t.Parallel()

	net := uniformNetwork(t, 3, network.WithNodeLabels("A", "B", "C"))
	sub, err := subsystem.New(net, []int{1, 0, 1}, network.ByLabel("C", "A"))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, sub.NodeIndices())
	assert.Equal(t, []string{"A", "C"}, sub.NodeLabels())
	assert.Equal(t, []int{1, 0, 1}, sub.State())
	assert.Equal(t, 2, sub.Len())
	assert.Same(t, net, sub.Network())
	assert.False(t, sub.IsCut())
	assert.True(t, sub.Cut().IsNull())
	assert.True(t, sub.ConnectivityMatrix().Equal(net.ConnectivityMatrix()))
	assert.Equal(t, "Subsystem[A C]", sub.String())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	net := uniformNetwork(t, 2)
	cases := []struct {
		name  string
		state []int
		nodes network.NodeRef
		want  error
	}{
		{"short state", []int{0}, network.ByIndex(0), subsystem.ErrInvalidState},
		{"non-binary state", []int{0, 2}, network.ByIndex(0), subsystem.ErrInvalidState},
		{"unknown label", []int{0, 0}, network.ByLabel("Z"), network.ErrUnknownLabel},
		{"unknown index", []int{0, 0}, network.ByIndex(4), network.ErrUnknownIndex},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sub, err := subsystem.New(net, tc.state, tc.nodes)
			require.Nil(t, sub)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := subsystem.New(nil, nil, network.ByIndex())
	require.ErrorIs(t, err, subsystem.ErrNilNetwork)
}

func TestWithCut(t *testing.T) {
	t.Parallel()

	net := uniformNetwork(t, 3)
	sub, err := subsystem.All(net, []int{0, 0, 0})
	require.NoError(t, err)

	cut, err := sub.WithCut(subsystem.NewCut([]int{1, 0}, []int{2}))
	require.NoError(t, err)
	require.True(t, cut.IsCut())
	assert.Equal(t, "[0 1] -/-> [2]", cut.Cut().String())

	cm := cut.ConnectivityMatrix()
	assert.False(t, cm.Connected(0, 2))
	assert.False(t, cm.Connected(1, 2))
	assert.True(t, cm.Connected(2, 0))
	assert.True(t, cm.Connected(0, 1))
	require.ErrorIs(t, cm.Dense().Set(0, 0, 0), matrix.ErrFrozen)

	// the original is untouched
	assert.True(t, sub.ConnectivityMatrix().Connected(0, 2))
	assert.False(t, sub.Equal(cut))
	assert.NotEqual(t, sub.Hash(), cut.Hash())

	part, err := subsystem.New(net, []int{0, 0, 0}, network.ByIndex(0, 1))
	require.NoError(t, err)
	_, err = part.WithCut(subsystem.NewCut([]int{0}, []int{2}))
	require.ErrorIs(t, err, subsystem.ErrInvalidCut)
}

func TestSubsystem_CutReturnsCopy(t *testing.T) {
	t.Parallel()

	sub, err := subsystem.All(uniformNetwork(t, 3), []int{0, 0, 0})
	require.NoError(t, err)
	from, to := []int{0}, []int{1, 2}
	cut, err := sub.WithCut(subsystem.NewCut(from, to))
	require.NoError(t, err)
	hash := cut.Hash()

	from[0] = 1 // caller input is copied on the way in
	got := cut.Cut()
	got.From[0] = 2
	got.To[1] = 0

	assert.Equal(t, "[0] -/-> [1 2]", cut.Cut().String())
	assert.True(t, cut.Cut().Severs(0, 1))
	assert.True(t, cut.Cut().Severs(0, 2))
	assert.False(t, cut.Cut().Severs(2, 1))
	assert.False(t, cut.ConnectivityMatrix().Connected(0, 1))
	assert.Equal(t, hash, cut.Hash())

	twin, err := sub.WithCut(subsystem.NewCut([]int{0}, []int{1, 2}))
	require.NoError(t, err)
	assert.True(t, cut.Equal(twin))
}

func TestWithCut_NullCutKeepsIdentity(t *testing.T) {
	t.Parallel()

	net := uniformNetwork(t, 2)
	sub, err := subsystem.All(net, []int{0, 1})
	require.NoError(t, err)
	same, err := sub.WithCut(subsystem.NewCut([]int{0}, nil))
	require.NoError(t, err)

	assert.True(t, sub.Equal(same))
	assert.Equal(t, sub.Hash(), same.Hash())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, err := subsystem.All(uniformNetwork(t, 2), []int{0, 1})
	require.NoError(t, err)
	b, err := subsystem.All(uniformNetwork(t, 2, network.WithNodeLabels("X", "Y")), []int{0, 1})
	require.NoError(t, err)
	c, err := subsystem.All(uniformNetwork(t, 2), []int{1, 1})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestCut(t *testing.T) {
	t.Parallel()

	c := subsystem.NewCut([]int{2, 0, 2}, []int{1})
	assert.Equal(t, []int{0, 2}, c.From)
	assert.Equal(t, []int{0, 1, 2}, c.Indices())
	assert.True(t, c.Severs(0, 1))
	assert.False(t, c.Severs(1, 0))
	assert.True(t, subsystem.NullCut().Equal(subsystem.NewCut(nil, []int{1})))
	assert.Equal(t, "NullCut", subsystem.NullCut().String())

	b, err := json.Marshal(subsystem.NullCut())
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":[],"to":[]}`, string(b))

	cm, err := connectivity.Full(2)
	require.NoError(t, err)
	_, err = subsystem.NewCut([]int{0}, []int{3}).Apply(cm)
	require.ErrorIs(t, err, connectivity.ErrNodeIndex)
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	sub, err := subsystem.New(uniformNetwork(t, 2), []int{1, 0}, network.ByIndex(1))
	require.NoError(t, err)
	b, err := json.Marshal(sub)
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Len(t, got, 4)
	assert.JSONEq(t, `[1,0]`, string(got["state"]))
	assert.JSONEq(t, `[1]`, string(got["nodes"]))
	assert.JSONEq(t, `{"from":[],"to":[]}`, string(got["cut"]))
	assert.JSONEq(t, `{"tpm":[[[0.5,0.5],[0.5,0.5]],[[0.5,0.5],[0.5,0.5]]],"cm":[[1,1],[1,1]],"size":2}`, string(got["network"]))
}
