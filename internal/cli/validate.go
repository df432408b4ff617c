package cli

import (
	"github.com/spf13/cobra"
)

// ValidationResult is the JSON payload of the validate command.
type ValidationResult struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Size  int    `json:"size"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <network-file>",
		Short: "Check that a network file describes a valid network",
		Long: `Load a {tpm, cm} document (.json, .yml or .yaml) and run every
construction check: TPM shape and probabilities, CM shape and values,
and the TPM/CM size match.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	net, cfg, _, err := opts.loadNetwork(cmd, path)
	if err != nil {
		return newFormatter(opts, cmd.OutOrStdout(), false).Fail("✗ "+path+" is not a valid network", err)
	}
	f := newFormatter(opts, cmd.OutOrStdout(), *cfg.Log.Color)
	if f.JSON() {
		return f.Success(ValidationResult{File: path, Valid: true, Size: net.Size()})
	}
	f.Printer.Success("%s: valid network with %d nodes", path, net.Size())

	return nil
}
