package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// InspectResult is the JSON payload of the inspect command.
type InspectResult struct {
	File          string      `json:"file"`
	Size          int         `json:"size"`
	NumStates     int         `json:"num_states"`
	Labels        []string    `json:"labels"`
	PerturbVector []float64   `json:"perturb_vector"`
	Hash          string      `json:"hash"`
	CM            [][]float64 `json:"cm"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "inspect <network-file>",
		Short:         "Summarise a network: size, states, labels, hash and connectivity",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}
}

func runInspect(opts *RootOptions, path string, cmd *cobra.Command) error {
	net, cfg, _, err := opts.loadNetwork(cmd, path)
	if err != nil {
		return newFormatter(opts, cmd.OutOrStdout(), false).Fail("✗ cannot inspect "+path, err)
	}
	f := newFormatter(opts, cmd.OutOrStdout(), *cfg.Log.Color)
	res := InspectResult{
		File:          path,
		Size:          net.Size(),
		NumStates:     net.NumStates(),
		Labels:        net.NodeLabels(),
		PerturbVector: net.PerturbVector(),
		Hash:          fmt.Sprintf("%016x", net.Hash()),
		CM:            net.ConnectivityMatrix().Rows(),
	}
	if f.JSON() {
		return f.Success(res)
	}

	p := f.Printer
	p.Header("Network " + path)
	p.Field("nodes", res.Size)
	p.Field("states", humanize.Comma(int64(res.NumStates)))
	p.Field("labels", strings.Join(res.Labels, ", "))
	p.Field("perturb", res.PerturbVector)
	p.Field("hash", res.Hash)
	p.Header("Connectivity")
	for i, row := range res.CM {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%.0f", v)
		}
		p.Field(res.Labels[i], strings.Join(cells, " "))
	}

	return nil
}
