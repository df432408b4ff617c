package network_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/phinet/network"
	"github.com/katalvlaran/phinet/tpm"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestMarshalJSON_Golden(t *testing.T) {
	t.Parallel()

	net := mustNetwork(t, copySBS)
	data, err := json.MarshalIndent(net, "", "  ")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "network_copy", data)
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	nets := []*network.Network{
		mustNetwork(t, copySBN),
		mustNetwork(t, copySBS),
		mustNetwork(t, uniformSBN(3), network.WithConnectivity(chainCM)),
	}
	for _, net := range nets {
		data, err := json.Marshal(net)
		require.NoError(t, err)

		var keys map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &keys))
		assert.Len(t, keys, 3)
		assert.Contains(t, keys, "tpm")
		assert.Contains(t, keys, "cm")
		assert.Equal(t, strconv.Itoa(net.Size()), string(keys["size"]))

		var back network.Network
		require.NoError(t, json.Unmarshal(data, &back))
		require.True(t, net.Equal(&back))
		require.Equal(t, net.Hash(), back.Hash())
	}
}

func TestFromJSON(t *testing.T) {
	t.Parallel()

	doc := `{
		"tpm": [[0, 0], [0, 1], [1, 0], [1, 1]],
		"cm": [[0, 1], [1, 0]],
		"node_labels": ["A", "B"],
		"perturb_vector": [0.5, 0.25]
	}`
	net, err := network.FromJSON(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, net.NodeLabels())
	assert.Equal(t, []float64{0.5, 0.25}, net.PerturbVector())
	assert.False(t, net.ConnectivityMatrix().Connected(0, 0))
	assert.True(t, net.ConnectivityMatrix().Connected(0, 1))

	// caller options win over the document
	net, err = network.FromJSON(strings.NewReader(doc), network.WithNodeLabels("X", "Y"))
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, net.NodeLabels())
}

func TestFromJSON_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"missing tpm", `{"cm": [[1]]}`, tpm.ErrDimensionality},
		{"ragged tpm", `{"tpm": [[0, 0], [0]]}`, tpm.ErrDimensionality},
		{"non-numeric tpm", `{"tpm": [["a", 0], [0, 1]]}`, tpm.ErrProbability},
		{"probability out of range", `{"tpm": [[0, 0], [0, 2], [1, 0], [1, 1]]}`, tpm.ErrProbability},
		{"size mismatch", `{"tpm": [[0, 0], [0, 1], [1, 0], [1, 1]], "size": 3}`, network.ErrSizeMismatch},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := network.FromJSON(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, network.ErrValidation)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := network.FromJSON(strings.NewReader(`{"tpm": [`))
	require.Error(t, err)
	require.NotErrorIs(t, err, network.ErrValidation)
}

// TestFromJSON_SizeCheckedFirst rejects a wrong size before a caller's
// cache gets bound to a network that is never returned.
func TestFromJSON_SizeCheckedFirst(t *testing.T) {
	t.Parallel()

	cache := network.NewPurviewCache()
	for _, doc := range []string{
		`{"tpm": [[0, 0], [0, 1], [1, 0], [1, 1]], "size": 3}`,
		`{"tpm": [[1, 0, 0, 0], [0, 0, 1, 0], [0, 1, 0, 0], [0, 0, 0, 1]], "size": 4}`,
	} {
		_, err := network.FromJSON(strings.NewReader(doc), network.WithPurviewCache(cache))
		require.ErrorIs(t, err, network.ErrSizeMismatch)
	}

	// the cache is still free for a network with different content
	net := mustNetwork(t, uniformSBN(3), network.WithPurviewCache(cache))
	assert.Same(t, cache, net.PurviewCache())

	// state-by-state documents declare their node count, not their side
	net, err := network.FromJSON(strings.NewReader(
		`{"tpm": [[1, 0, 0, 0], [0, 0, 1, 0], [0, 1, 0, 0], [0, 0, 0, 1]], "size": 2}`))
	require.NoError(t, err)
	assert.True(t, net.Equal(mustNetwork(t, copySBN)))
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "copy.json")
	yamlPath := filepath.Join(dir, "copy.yml")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"tpm": [[1,0,0,0],[0,0,1,0],[0,1,0,0],[0,0,0,1]]}`), 0o600))
	require.NoError(t, os.WriteFile(yamlPath, []byte(
		"tpm:\n"+
			"  - [0, 0]\n"+
			"  - [0, 1]\n"+
			"  - [1, 0]\n"+
			"  - [1, 1]\n"+
			"cm:\n"+
			"  - [1, 1]\n"+
			"  - [1, 1]\n"+
			"node_labels: [A, B]\n"), 0o600))

	fromJSON, err := network.FromFile(jsonPath)
	require.NoError(t, err)
	fromYAML, err := network.FromFile(yamlPath)
	require.NoError(t, err)
	require.True(t, fromJSON.Equal(fromYAML))
	assert.Equal(t, []string{"A", "B"}, fromYAML.NodeLabels())

	_, err = network.FromFile(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
