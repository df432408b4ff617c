package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phinet/network"
)

// PurviewsResult is the JSON payload of the purviews command.
type PurviewsResult struct {
	Direction network.Direction `json:"direction"`
	Mechanism []int             `json:"mechanism"`
	Purviews  [][]int           `json:"purviews"`
}

// NewPurviewsCommand creates the purviews command.
func NewPurviewsCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		direction string
		mechanism []string
	)

	cmd := &cobra.Command{
		Use:   "purviews <network-file>",
		Short: "List the purviews a mechanism can reach",
		Long: `List every purview that is not block-reducible with the mechanism
over the connectivity matrix. Nodes are given either all by index or all
by label.

Example:
  phinet purviews net.yml --direction effect --mechanism A,B`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPurviews(rootOpts, args[0], direction, mechanism, cmd)
		},
	}
	cmd.Flags().StringVarP(&direction, "direction", "d", "effect", "cause|past or effect|future")
	cmd.Flags().StringSliceVarP(&mechanism, "mechanism", "m", nil, "mechanism nodes (indices or labels)")
	_ = cmd.MarkFlagRequired("mechanism")

	return cmd
}

func runPurviews(opts *RootOptions, path, direction string, mechanism []string, cmd *cobra.Command) error {
	dir, err := network.ParseDirection(direction)
	if err != nil {
		return newFormatter(opts, cmd.OutOrStdout(), false).Fail("✗ bad --direction", &codedError{code: ErrCodeArgument, err: err})
	}
	ref, err := network.ParseNodeRef(mechanism)
	if err != nil {
		return newFormatter(opts, cmd.OutOrStdout(), false).Fail("✗ bad --mechanism", &codedError{code: ErrCodeArgument, err: err})
	}

	net, cfg, _, err := opts.loadNetwork(cmd, path)
	if err != nil {
		return newFormatter(opts, cmd.OutOrStdout(), false).Fail("✗ cannot load "+path, err)
	}
	f := newFormatter(opts, cmd.OutOrStdout(), *cfg.Log.Color)

	mech, err := net.GenerateNodeIndices(ref)
	if err != nil {
		return f.Fail("✗ bad --mechanism", &codedError{code: ErrCodeArgument, err: err})
	}
	purviews, err := net.PotentialPurviews(dir, mech)
	if err != nil {
		return f.Fail("✗ cannot compute purviews", err)
	}
	if f.JSON() {
		return f.Success(PurviewsResult{Direction: dir, Mechanism: mech, Purviews: purviews})
	}

	labels, _ := net.Indices2Labels(mech...) // resolved above
	f.Printer.Header(fmt.Sprintf("%s purviews of {%s}: %d", dir, strings.Join(labels, ", "), len(purviews)))
	for _, p := range purviews {
		names, _ := net.Indices2Labels(p...) // produced by the network
		f.Printer.Info("  {%s}", strings.Join(names, ", "))
	}

	return nil
}
