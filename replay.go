package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tictactoe-local/engine"
	"tictactoe-local/ui"
)

// NewReplayCommand creates the replay command.
func NewReplayCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay [move...]",
		Short: "Play moves on a fresh board and print the result",
		Long: `Play a sequence of moves on a fresh board, starting with X, and print
the final board and game status.

A move is a board index 0-8 or a coordinate a1-c3 (column a-c from the left,
row 1-3 from the top).

Exit codes:
  0 - All moves were accepted
  1 - A move was rejected (no such cell, cell taken, game over)
  2 - Command error (bad config, etc.)

Examples:
  tictactoe-local replay 0 3 1 4 2
  tictactoe-local replay b2 a1 c3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd, args)
		},
	}
}

func runReplay(opts *RootOptions, cmd *cobra.Command, moves []string) error {
	eng := engine.New(engine.WithLogger(opts.logger))
	out := cmd.OutOrStdout()
	symbols := opts.cfg.Theme.Symbols

	for i, move := range moves {
		index, err := engine.ParseCell(move)
		if err == nil {
			err = eng.ApplyMove(index)
		}
		if err != nil {
			// show how far the game got before the bad move
			fmt.Fprint(out, ui.RenderText(eng.Snapshot(), symbols))
			return WrapExitError(ExitFailure, fmt.Sprintf("move %d (%s) rejected", i+1, move), err)
		}
	}

	fmt.Fprint(out, ui.RenderText(eng.Snapshot(), symbols))
	return nil
}
