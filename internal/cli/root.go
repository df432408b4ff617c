// Package cli implements the phinet command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/phinet/config"
	"github.com/katalvlaran/phinet/network"
)

// DefaultConfigPath is read when --config is not given and the file exists.
const DefaultConfigPath = "phinet.yml"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string // "json" | "text"

	cfg    *config.Config
	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the phinet CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "phinet",
		SilenceErrors: true,
		Short:         "phinet - integrated information network tooling",
		Long: `Validate, inspect and convert network models (transition probability
matrix plus connectivity matrix), list the purviews a mechanism can reach,
and short-circuit the analysis of structurally reducible subsystems.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default "+DefaultConfigPath+" if present)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewPurviewsCommand(opts))
	cmd.AddCommand(NewSIACommand(opts))

	return cmd
}

// resolve loads the configuration and builds the logger once per run.
func (o *RootOptions) resolve(logOut io.Writer) (*config.Config, *slog.Logger, error) {
	if o.cfg != nil {
		return o.cfg, o.logger, nil
	}

	path := o.ConfigPath
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); err == nil {
			path = DefaultConfigPath
		}
	}
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "cannot load configuration", err)
		}
	}

	level := cfg.SlogLevel()
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.cfg = cfg
	o.logger = slog.New(tint.NewHandler(logOut, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !*cfg.Log.Color,
	}))

	return o.cfg, o.logger, nil
}

// loadNetwork reads path with the configured options.
func (o *RootOptions) loadNetwork(cmd *cobra.Command, path string) (*network.Network, *config.Config, *slog.Logger, error) {
	cfg, logger, err := o.resolve(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, nil, err
	}
	opts := append(cfg.NetworkOptions(), network.WithLogger(logger))
	net, err := network.FromFile(path, opts...)
	if err != nil {
		code := ErrCodeRead
		if errors.Is(err, network.ErrValidation) {
			code = ErrCodeValidation
		}

		return nil, nil, nil, &codedError{code: code, err: err}
	}
	logger.Debug("loaded network", "path", path, "nodes", net.Size(), "hash", fmt.Sprintf("%016x", net.Hash()))

	return net, cfg, logger, nil
}
