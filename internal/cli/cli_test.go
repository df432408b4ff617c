package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phinet/network"
)

// writeFile writes content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// copyNetwork is a two-node network, written state-by-state, in which each
// node copies the other.
const copyNetwork = `{
  "tpm": [[1,0,0,0],[0,0,1,0],[0,1,0,0],[0,0,0,1]],
  "node_labels": ["A", "B"]
}`

// isolatedNetwork has two nodes that ignore each other.
const isolatedNetwork = `tpm:
  - [0.5, 0.5]
  - [0.5, 0.5]
  - [0.5, 0.5]
  - [0.5, 0.5]
cm:
  - [0, 0]
  - [0, 0]
`

// run executes cmd with args and returns stdout.
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestValidate(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "copy.json", copyNetwork)
	out, err := run(t, NewValidateCommand(&RootOptions{Format: "text"}), path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ "+path+": valid network with 2 nodes")
}

func TestValidate_JSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "copy.json", copyNetwork)
	out, err := run(t, NewValidateCommand(&RootOptions{Format: "json"}), path)
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, ValidationResult{File: path, Valid: true, Size: 2}, resp.Data)
}

func TestValidate_Invalid(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bad.json", `{"tpm": [[0, 0], [0, 1.5], [1, 0], [1, 1]]}`)
	out, err := run(t, NewValidateCommand(&RootOptions{Format: "json"}), path)
	require.Error(t, err)
	require.ErrorIs(t, err, network.ErrValidation)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "probability")
}

func TestValidate_MissingFile(t *testing.T) {
	t.Parallel()

	out, err := run(t, NewValidateCommand(&RootOptions{Format: "text"}), filepath.Join(t.TempDir(), "none.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "is not a valid network")
}

func TestInspect(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "copy.json", copyNetwork)
	out, err := run(t, NewInspectCommand(&RootOptions{Format: "text"}), path)
	require.NoError(t, err)
	assert.Contains(t, out, "Network "+path)
	assert.Contains(t, out, "states:      4")
	assert.Contains(t, out, "labels:      A, B")
	assert.Contains(t, out, "A:           1 1")

	out, err = run(t, NewInspectCommand(&RootOptions{Format: "json"}), path)
	require.NoError(t, err)
	var resp struct {
		Data InspectResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 4, resp.Data.NumStates)
	assert.Equal(t, []float64{0.5, 0.5}, resp.Data.PerturbVector)
	assert.Len(t, resp.Data.Hash, 16)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "copy.json", copyNetwork)
	out, err := run(t, NewConvertCommand(&RootOptions{Format: "text"}), path)
	require.NoError(t, err)

	converted, err := network.FromJSON(strings.NewReader(out))
	require.NoError(t, err)
	original, err := network.FromFile(path)
	require.NoError(t, err)
	assert.True(t, original.Equal(converted))

	target := filepath.Join(t.TempDir(), "canonical.json")
	_, err = run(t, NewConvertCommand(&RootOptions{Format: "text"}), path, "--output", target)
	require.NoError(t, err)
	fromFile, err := network.FromFile(target)
	require.NoError(t, err)
	assert.True(t, original.Equal(fromFile))
}

func TestPurviews(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "copy.json", copyNetwork)
	out, err := run(t, NewPurviewsCommand(&RootOptions{Format: "text"}), path,
		"--direction", "past", "--mechanism", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "cause purviews of {A}: 3")
	assert.Contains(t, out, "{A, B}")

	out, err = run(t, NewPurviewsCommand(&RootOptions{Format: "json"}), path, "-d", "effect", "-m", "1")
	require.NoError(t, err)
	var resp struct {
		Data PurviewsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, network.Effect, resp.Data.Direction)
	assert.Equal(t, []int{1}, resp.Data.Mechanism)
	assert.Equal(t, [][]int{{0}, {1}, {0, 1}}, resp.Data.Purviews)
}

func TestPurviews_BadArguments(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "copy.json", copyNetwork)
	cases := map[string][]string{
		"direction": {path, "--direction", "sideways", "--mechanism", "0"},
		"mixed":     {path, "--mechanism", "A,1"},
		"unknown":   {path, "--mechanism", "Z"},
	}
	for name, args := range cases {
		out, err := run(t, NewPurviewsCommand(&RootOptions{Format: "json"}), args...)
		require.Error(t, err, name)
		assert.Equal(t, ExitCommandError, GetExitCode(err), name)
		assert.Contains(t, out, ErrCodeArgument, name)
	}
}

func TestSIA_Degenerate(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "isolated.yml", isolatedNetwork)
	out, err := run(t, NewSIACommand(&RootOptions{Format: "json"}), path, "--state", "1,0")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Nodes    []int                      `json:"nodes"`
			Resolved bool                       `json:"resolved"`
			Analysis map[string]json.RawMessage `json:"analysis"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Data.Resolved)
	assert.Equal(t, []int{0, 1}, resp.Data.Nodes)
	assert.JSONEq(t, "0", string(resp.Data.Analysis["phi"]))
	assert.JSONEq(t, "[]", string(resp.Data.Analysis["unpartitioned_ces"]))
	assert.JSONEq(t, string(resp.Data.Analysis["subsystem"]), string(resp.Data.Analysis["cut_subsystem"]))

	out, err = run(t, NewSIACommand(&RootOptions{Format: "text"}), path)
	require.NoError(t, err)
	assert.Contains(t, out, "phi = 0 (null analysis)")
}

func TestSIA_NeedsSearch(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "copy.json", copyNetwork)
	out, err := run(t, NewSIACommand(&RootOptions{Format: "text"}), path, "--nodes", "A,B")
	require.NoError(t, err)
	assert.Contains(t, out, "not structurally reducible")

	_, err = run(t, NewSIACommand(&RootOptions{Format: "text"}), path, "--state", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRoot_FlagsAndConfig(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "copy.json", copyNetwork)
	_, err := run(t, NewRootCommand(), "--format", "xml", "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")

	cfg := writeFile(t, "phinet.yml", "precision: 3\nlog:\n  color: false\n")
	out, err := run(t, NewRootCommand(), "--config", cfg, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "valid network with 2 nodes")

	badCfg := writeFile(t, "phinet.yml", "precision: 99\n")
	_, err = run(t, NewRootCommand(), "--config", badCfg, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
