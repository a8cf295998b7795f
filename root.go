package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tictactoe-local/config"
)

// RootOptions holds global flags and the state set up before every command.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Focus      bool

	cfg     *config.Config
	logger  *slog.Logger
	logFile io.Closer
}

// NewRootCommand creates the root command. Run without a subcommand it starts
// the game. The caller closes opts after Execute returns.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tictactoe-local",
		Short:   "Tic-tac-toe in the terminal",
		Long:    "Two players take turns on one keyboard (or mouse) placing X and O on a 3x3 board.",
		Version: Version,
		Args:    commandArgs(cobra.NoArgs),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(opts.loadConfig)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (json or yaml), instead of the XDG search")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level override (debug|info|warn|error)")
	cmd.Flags().BoolVar(&opts.Focus, "focus", false, "start in focus mode (board only)")

	cmd.SetFlagErrorFunc(flagError)

	cmd.AddCommand(NewReplayCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

// loadConfig reads the --config file, or searches the XDG config dirs.
func (o *RootOptions) loadConfig() (*config.Config, error) {
	if o.ConfigPath != "" {
		return config.LoadFile(o.ConfigPath)
	}
	return config.InitConfig()
}

// setup loads the config with load and opens the log file.
func (o *RootOptions) setup(load func() (*config.Config, error)) error {
	cfg, err := load()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
		if err := cfg.Validate(); err != nil {
			return WrapExitError(ExitCommandError, "invalid --log-level", err)
		}
	}

	logger, closer, err := initLogger(cfg.Log)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open log file", err)
	}
	o.cfg, o.logger, o.logFile = cfg, logger, closer
	return nil
}

// Close closes the log file opened by setup. It is safe to call more than once.
func (o *RootOptions) Close() error {
	if o.logFile == nil {
		return nil
	}
	err := o.logFile.Close()
	o.logFile = nil
	return err
}

// initLogger writes JSON logs to the configured file, since the terminal
// belongs to the UI.
func initLogger(conf config.LogConfig) (*slog.Logger, io.Closer, error) {
	var level slog.Level

	switch strings.ToLower(conf.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if err := os.MkdirAll(filepath.Dir(conf.File), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(conf.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", conf.File, err)
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}
