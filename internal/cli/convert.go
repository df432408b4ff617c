package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "convert <network-file>",
		Short: "Write the canonical {tpm, cm, size} JSON form of a network",
		Long: `Load a network in any supported TPM layout (state-by-state,
2-D state-by-node or N-D state-by-node) and write it back in canonical
N-D state-by-node form. The output is always JSON.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args[0], outPath, cmd)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

func runConvert(opts *RootOptions, path, outPath string, cmd *cobra.Command) error {
	net, _, logger, err := opts.loadNetwork(cmd, path)
	if err != nil {
		return newFormatter(opts, cmd.OutOrStdout(), false).Fail("✗ cannot convert "+path, err)
	}
	data, err := json.MarshalIndent(net, "", "  ")
	if err != nil {
		return WrapExitError(ExitCommandError, "encode network", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err = cmd.OutOrStdout().Write(data)

		return err
	}
	if err = os.WriteFile(outPath, data, 0o644); err != nil {
		return newFormatter(opts, cmd.OutOrStdout(), false).Fail("✗ cannot write "+outPath, err)
	}
	logger.Info("wrote canonical network", "path", outPath, "bytes", len(data))

	return nil
}
