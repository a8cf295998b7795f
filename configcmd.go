package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tictactoe-local/config"
)

// ConfigOptions holds flags for the config command.
type ConfigOptions struct {
	*RootOptions
	Write  bool
	Format string // "json" | "yaml"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"json", "yaml"}

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConfigOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration the game would start with: defaults, the config
file and environment overrides (TICTACTOE_LOG_LEVEL, TICTACTOE_LOG_FILE).

With --write, the default configuration is written to the user's config
directory instead, as a starting point for editing.`,
		Args: commandArgs(cobra.NoArgs),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Write {
				// the config file on disk may be the broken one being replaced
				return opts.setup(config.Default)
			}
			return opts.setup(opts.loadConfig)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Write, "write", false, "write the default config to the XDG config dir")
	cmd.Flags().StringVar(&opts.Format, "format", "json", "output format (json|yaml)")

	return cmd
}

func runConfig(opts *ConfigOptions, cmd *cobra.Command) error {
	if opts.Write {
		defaults := config.DefaultConfig
		path, err := defaults.Save()
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to write config", err)
		}
		opts.logger.Info("wrote default config", "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	}

	var (
		data []byte
		err  error
	)
	switch opts.Format {
	case "json":
		data, err = json.MarshalIndent(opts.cfg, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(opts.cfg)
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to encode config", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
