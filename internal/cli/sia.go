package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phinet/network"
	"github.com/katalvlaran/phinet/sia"
	"github.com/katalvlaran/phinet/subsystem"
)

// SIAResult is the JSON payload of the sia command.
type SIAResult struct {
	Nodes    []int         `json:"nodes"`
	Resolved bool          `json:"resolved"`
	Analysis *sia.Analysis `json:"analysis,omitempty"`
}

// NewSIACommand creates the sia command.
func NewSIACommand(rootOpts *RootOptions) *cobra.Command {
	var (
		state []int
		nodes []string
	)

	cmd := &cobra.Command{
		Use:   "sia <network-file>",
		Short: "Return the null analysis of a structurally reducible subsystem",
		Long: `Build the subsystem of the given nodes in the given network state
and check whether its big phi is zero by structure alone: the subsystem is
empty, not strongly connected, or a single node. In that case the null
analysis is printed; otherwise the subsystem needs the full cause-effect
search, which this tool does not perform.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSIA(rootOpts, args[0], state, nodes, cmd)
		},
	}
	cmd.Flags().IntSliceVarP(&state, "state", "s", nil, "network state, one 0/1 per node (default all 0)")
	cmd.Flags().StringSliceVarP(&nodes, "nodes", "n", nil, "subsystem nodes, indices or labels (default all)")

	return cmd
}

func runSIA(opts *RootOptions, path string, state []int, nodes []string, cmd *cobra.Command) error {
	ref, err := network.ParseNodeRef(nodes)
	if err != nil {
		return newFormatter(opts, cmd.OutOrStdout(), false).Fail("✗ bad --nodes", &codedError{code: ErrCodeArgument, err: err})
	}
	net, cfg, logger, err := opts.loadNetwork(cmd, path)
	if err != nil {
		return newFormatter(opts, cmd.OutOrStdout(), false).Fail("✗ cannot load "+path, err)
	}
	f := newFormatter(opts, cmd.OutOrStdout(), *cfg.Log.Color)

	if state == nil {
		state = make([]int, net.Size())
	}
	if len(nodes) == 0 {
		ref = network.ByIndex(net.NodeIndices()...)
	}
	sub, err := subsystem.New(net, state, ref)
	if err != nil {
		return f.Fail("✗ invalid subsystem", &codedError{code: ErrCodeArgument, err: err})
	}

	a, ok := sia.Degenerate(sub, logger, cfg.SIAOptions()...)
	if f.JSON() {
		return f.Success(SIAResult{Nodes: sub.NodeIndices(), Resolved: ok, Analysis: a})
	}
	if !ok {
		f.Printer.Warning("%v is not structurally reducible; its phi needs the full cause-effect search", sub)

		return nil
	}
	f.Printer.Success("%v: phi = %s (null analysis)", sub, strconv.FormatFloat(a.Phi(), 'g', -1, 64))

	return nil
}
