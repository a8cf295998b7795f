package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-local/config"
	"tictactoe-local/engine"
	"tictactoe-local/ui"
)

// isolateXDG points the XDG base dirs at temp dirs for the duration of the test.
func isolateXDG(t *testing.T) (configHome, stateHome string) {
	t.Helper()
	configHome = t.TempDir()
	stateHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_CONFIG_DIRS", configHome)
	t.Setenv("XDG_STATE_HOME", stateHome)
	for _, env := range []string{"TICTACTOE_LOG_LEVEL", "TICTACTOE_LOG_FILE"} {
		// Setenv restores the old value after the test
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return configHome, stateHome
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	opts := &RootOptions{}
	t.Cleanup(func() { opts.Close() })
	return executeWith(opts, args...)
}

func executeWith(opts *RootOptions, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(&RootOptions{})
	require.NotNil(t, cmd)
	assert.Equal(t, "tictactoe-local", cmd.Use)
	assert.Equal(t, Version, cmd.Version)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(&RootOptions{})

	for _, cmdName := range []string{"replay", "config"} {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(&RootOptions{})

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)

	levelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, levelFlag)
	assert.Equal(t, "", levelFlag.DefValue)

	focusFlag := cmd.Flags().Lookup("focus")
	require.NotNil(t, focusFlag)
	assert.Equal(t, "false", focusFlag.DefValue)
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
	}{
		{"replay_x_wins", []string{"0", "3", "1", "4", "2"}},
		{"replay_draw", []string{"a1", "b1", "c1", "b2", "a2", "c2", "b3", "a3", "C3"}},
	}

	g := goldie.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateXDG(t)

			out, err := execute(t, append([]string{"replay"}, tt.moves...)...)
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(out))
		})
	}
}

func TestReplayEmpty(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "replay")
	require.NoError(t, err)
	assert.Contains(t, out, "X to move")
}

func TestReplayRejectedMove(t *testing.T) {
	tests := []struct {
		name    string
		moves   []string
		want    error
		message string
	}{
		{"occupied", []string{"4", "b2"}, engine.ErrCellOccupied, "move 2 (b2) rejected"},
		{"after win", []string{"0", "3", "1", "4", "2", "5"}, engine.ErrGameAlreadyFinished, "move 6 (5) rejected"},
		{"index off the board", []string{"9"}, engine.ErrInvalidIndex, "move 1 (9) rejected"},
		{"bad coordinate", []string{"4", "d1"}, engine.ErrInvalidIndex, "move 2 (d1) rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateXDG(t)

			out, err := execute(t, append([]string{"replay"}, tt.moves...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			// board up to the rejected move is still printed
			assert.Contains(t, out, "───┼───┼───")
		})
	}
}

func TestReplayWritesLog(t *testing.T) {
	_, stateHome := isolateXDG(t)

	_, err := execute(t, "--log-level", "debug", "replay", "4", "4")
	require.Error(t, err)

	data, err := os.ReadFile(filepath.Join(stateHome, "tictactoe-local", "tictactoe.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"move rejected"`)
}

func TestConfigCommand(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		isolateXDG(t)

		out, err := execute(t, "config")
		require.NoError(t, err)
		assert.Contains(t, out, `"level": "info"`)
		assert.Contains(t, out, `"symbols"`)
	})

	t.Run("yaml", func(t *testing.T) {
		isolateXDG(t)

		out, err := execute(t, "config", "--format", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "level: info")
		assert.Contains(t, out, "draw_cursor_bg:")
	})

	t.Run("env override", func(t *testing.T) {
		isolateXDG(t)
		t.Setenv("TICTACTOE_LOG_LEVEL", "warn")

		out, err := execute(t, "config")
		require.NoError(t, err)
		assert.Contains(t, out, `"level": "warn"`)
	})

	t.Run("invalid format", func(t *testing.T) {
		isolateXDG(t)

		_, err := execute(t, "config", "--format", "toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})
}

func TestConfigWrite(t *testing.T) {
	configHome, _ := isolateXDG(t)

	out, err := execute(t, "config", "--write")
	require.NoError(t, err)

	path := filepath.Join(configHome, "tictactoe-local", "config.json")
	assert.Contains(t, out, path)

	loaded, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTheme, loaded.Theme)
}

func TestExplicitConfigFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  symbols:\n    x: 35\n    o: 64\n    empty: 46\n"), 0644))

	out, err := execute(t, "--config", path, "replay", "4")
	require.NoError(t, err)
	assert.Contains(t, out, " . │ # │ .")
}

func TestBadLogLevel(t *testing.T) {
	isolateXDG(t)

	_, err := execute(t, "--log-level", "loud", "replay")
	require.Error(t, err)
	var invalid *config.InvalidConfig
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMissingConfigFile(t *testing.T) {
	isolateXDG(t)

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.json"), "config")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGameKeys(t *testing.T) {
	cfg := config.DefaultConfig
	hint := tview.NewTextView()
	board := ui.NewBoard(engine.New(), &cfg, hint)
	frame := ui.CreateGameLayout(board, hint)

	quit := false
	keys := gameKeys(func() { quit = true }, frame, board, hint)
	press := func(r rune) *tcell.EventKey {
		return keys(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}

	// f switches to the board-only layout and back
	assert.Nil(t, press('f'))
	assert.True(t, board.IsFocusMode())
	assert.Equal(t, 3, frame.GetItemCount())
	assert.Nil(t, press('f'))
	assert.False(t, board.IsFocusMode())
	assert.Equal(t, 2, frame.GetItemCount())

	// other keys reach the board
	assert.Nil(t, press('5'))
	assert.Equal(t, 4, board.Snapshot.LastMove)

	// q first drops the cursor, then quits
	keys(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	require.NotEqual(t, -1, board.SelectedCell())
	press('q')
	assert.Equal(t, -1, board.SelectedCell())
	assert.False(t, quit)
	press('q')
	assert.True(t, quit)
}

func TestUsageErrorsAreCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown replay flag", []string{"replay", "--bogus"}},
		{"unknown root flag", []string{"--bogus"}},
		{"unknown command", []string{"nosuch"}},
		{"config argument", []string{"config", "extra"}},
		{"bad flag value", []string{"config", "--write=maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateXDG(t)

			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestLogFileClosedAfterFailedCommand(t *testing.T) {
	isolateXDG(t)
	opts := &RootOptions{}

	_, err := executeWith(opts, "replay", "4", "4")
	require.Error(t, err)
	f, ok := opts.logFile.(*os.File)
	require.True(t, ok, "log file stays open until Close")

	require.NoError(t, opts.Close())
	_, err = f.WriteString("x")
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.NoError(t, opts.Close())
}

func TestConfigWriteReplacesBrokenConfig(t *testing.T) {
	// Given a config file that does not validate
	configHome, _ := isolateXDG(t)
	path := filepath.Join(configHome, "tictactoe-local", "config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`{"log": {"level": "loud"}}`), 0644))

	_, err := execute(t, "config")
	require.Error(t, err)
	require.Equal(t, ExitCommandError, GetExitCode(err))

	// When the defaults are written over it
	_, err = execute(t, "config", "--write")
	require.NoError(t, err)

	// Then the config loads again
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, `"level": "info"`)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	assert.Equal(t, ExitFailure, GetExitCode(WrapExitError(ExitFailure, "wrapped", assert.AnError)))
}
