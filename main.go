// tictactoe-local is a terminal application to play tic-tac-toe with two
// players on one keyboard.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/engine"
	"tictactoe-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	opts := &RootOptions{}
	err := NewRootCommand(opts).Execute()
	opts.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(GetExitCode(err))
	}
}

// runGame builds the terminal UI around a fresh engine and blocks until the
// player quits.
func runGame(opts *RootOptions) error {
	eng := engine.New(engine.WithLogger(opts.logger))

	app := tview.NewApplication().EnableMouse(true)
	rootPage := tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" # tictactoe ")

	// Game view setup
	gameHint := tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard := ui.NewBoard(eng, opts.cfg, gameHint)

	// Create game layout with centered board and side panel
	gameFrame := ui.CreateGameLayout(gameBoard, gameHint)
	gameBoard.SetInputCapture(gameKeys(app.Stop, gameFrame, gameBoard, gameHint))

	rootPage.AddPage("gameview", gameFrame, true, true)
	if opts.Focus {
		gameBoard.SetFocusMode(true)
		ui.BuildFocusLayout(gameFrame, gameBoard)
	}

	opts.logger.Info("starting game", "game", gameBoard.Snapshot.GameID)
	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		return WrapExitError(ExitCommandError, "terminal ui failed", err)
	}
	opts.logger.Info("quit", "game", gameBoard.Snapshot.GameID, "score", gameBoard.Score())
	return nil
}

// gameKeys handles the application keys and hands everything else to the board.
func gameKeys(quit func(), gameFrame *tview.Flex, gameBoard *ui.BoardUI, gameHint *tview.TextView) func(*tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEsc:
			gameBoard.ResetSelection()
			return nil
		case event.Key() == tcell.KeyRune && event.Rune() == 'q':
			if gameBoard.SelectedCell() != -1 {
				gameBoard.ResetSelection()
			} else {
				quit()
			}
			return nil
		case event.Key() == tcell.KeyRune && event.Rune() == 'f':
			if gameBoard.ToggleFocusMode() {
				ui.BuildFocusLayout(gameFrame, gameBoard)
			} else {
				ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
			}
			return nil
		}
		return gameBoard.HandleKey(event)
	}
}
