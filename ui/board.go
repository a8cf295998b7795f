// Package ui specifies custom controls for tview to play tic-tac-toe in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/config"
	"tictactoe-local/engine"
	"tictactoe-local/types"
)

// Board geometry in screen cells. Cells are separated by one-cell grid lines.
const (
	cellW  = 5
	cellH  = 3
	boardW = 3*cellW + 2
	boardH = 3*cellH + 2

	// message row, blank, board, blank, button
	frameH = 2 + boardH + 2
)

type BoardUI struct {
	*tview.Box
	Snapshot  types.Snapshot
	hint      *tview.TextView
	cfg       *config.Config
	eng       engine.GameEngine
	sel       int
	message   string
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	resetBtn  *MenuButton
	focusMode bool

	// top-left corner of the grid from the last draw
	left, top int
}

// NewBoard creates the board control and reads the engine's initial state.
func NewBoard(eng engine.GameEngine, c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:  tview.NewBox(),
		hint: hint,
		eng:  eng,
		sel:  -1,
	}
	board.resetBtn = NewMenuButton("Reset Board", true, board.Reset)
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	board.refresh()
	return board
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (b *BoardUI) ToggleFocusMode() bool {
	b.focusMode = !b.focusMode
	b.refreshHint()
	return b.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (b *BoardUI) SetFocusMode(enabled bool) {
	b.focusMode = enabled
	b.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (b *BoardUI) IsFocusMode() bool {
	return b.focusMode
}

// SelectedCell returns the index under the cursor, or -1.
func (b *BoardUI) SelectedCell() int {
	return b.sel
}

func (b *BoardUI) MoveSelection(h, v int) {
	if b.Snapshot.Finished() {
		b.ResetSelection()
		return
	}
	if b.sel == -1 {
		b.sel = b.Snapshot.LastMove
		if b.sel == -1 {
			// No previous move made, use board center
			b.sel = 4
		}
		return
	}
	col, row := b.sel%3+h, b.sel/3+v
	if col < 0 || col > 2 || row < 0 || row > 2 {
		return
	}
	b.sel = row*3 + col
}

func (b *BoardUI) ResetSelection() {
	b.sel = -1
}

// PlayMove plays the next player's mark at index. Ignored once the game is over.
func (b *BoardUI) PlayMove(index int) {
	if b.Snapshot.Finished() {
		return
	}
	b.message = ""
	if err := b.eng.ApplyMove(index); err != nil {
		b.message = describeRejection(err)
	}
	b.refresh()
}

// PlaySelected plays the cell under the cursor.
func (b *BoardUI) PlaySelected() {
	if b.sel == -1 {
		return
	}
	b.PlayMove(b.sel)
}

// Reset starts a new game.
func (b *BoardUI) Reset() {
	b.eng.Reset()
	b.refresh()
}

// HandleKey handles board keys and returns nil for consumed events.
func (b *BoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		b.MoveSelection(0, -1)
	case tcell.KeyDown:
		b.MoveSelection(0, 1)
	case tcell.KeyLeft:
		b.MoveSelection(-1, 0)
	case tcell.KeyRight:
		b.MoveSelection(1, 0)
	case tcell.KeyEnter:
		b.PlaySelected()
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r >= '1' && r <= '9':
			b.PlayMove(int(r - '1'))
		case r == ' ':
			b.PlaySelected()
		case r == 'h':
			b.MoveSelection(-1, 0)
		case r == 'j':
			b.MoveSelection(0, 1)
		case r == 'k':
			b.MoveSelection(0, -1)
		case r == 'l':
			b.MoveSelection(1, 0)
		case r == 'r':
			b.Reset()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

// MouseHandler reports handled clicks as consumed so the application redraws.
func (b *BoardUI) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return b.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !b.InRect(x, y) {
			return false, nil
		}
		if action == tview.MouseLeftDown {
			setFocus(b)
			consumed = true
		}
		if b.HandleClick(action, x, y) {
			consumed = true
		}
		return consumed, nil
	})
}

// HandleClick maps a left click on a cell to a move and a click on the button
// to a reset. Returns true if the click was handled.
func (b *BoardUI) HandleClick(action tview.MouseAction, x, y int) bool {
	if action != tview.MouseLeftClick {
		return false
	}
	if b.onResetButton(x, y) {
		b.resetBtn.Press()
		return true
	}
	idx := b.cellAt(x, y)
	if idx == -1 {
		return false
	}
	if b.Snapshot.Finished() {
		// cells are inert once the game is over
		return true
	}
	b.sel = idx
	b.PlayMove(idx)
	return true
}

func (b *BoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.XColor),            // 1
		tcell.PaletteColor(c.Theme.Colors.OColor),            // 2
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // 3
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // 4
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 5
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 6
	}
	b.cfg = c
}

// SetInfoPanel attaches the side panel updated on every state change.
func (b *BoardUI) SetInfoPanel(p *GameInfoPanel) {
	b.infoPanel = p
	if p != nil {
		p.SetSnapshot(b.Snapshot)
	}
}

// Score returns the session scoreboard kept by the info panel.
func (b *BoardUI) Score() Scoreboard {
	if b.infoPanel == nil {
		return Scoreboard{}
	}
	return b.infoPanel.Score()
}

// refresh re-reads the engine state after every call into it.
func (b *BoardUI) refresh() {
	prev := b.Snapshot.GameID
	b.Snapshot = b.eng.Snapshot()
	if b.Snapshot.GameID != prev {
		// new game: drop view state left from the previous one
		b.ResetSelection()
		b.message = ""
	}
	if b.Snapshot.Finished() {
		b.ResetSelection()
	}
	if b.infoPanel != nil {
		b.infoPanel.SetSnapshot(b.Snapshot)
	}
	b.refreshHint()
}

func (b *BoardUI) refreshHint() {
	if b.hint == nil {
		return
	}

	// Focus mode shows minimal hint
	if b.focusMode {
		b.hint.SetText("  f to toggle")
		return
	}

	var statusLine, controlsLine string
	if b.Snapshot.Finished() {
		statusLine = fmt.Sprintf("  %s", StatusMessage(b.Snapshot.Status))
		controlsLine = "  r reset board   f focus   q quit"
	} else {
		statusLine = fmt.Sprintf("  %s to move", b.Snapshot.NextPlayer)
		if b.message != "" {
			statusLine += fmt.Sprintf("  · %s", b.message)
		}
		controlsLine = "  hjkl/↑↓←→ move   ⏎ play   1-9 play   r reset   f focus   q quit"
	}
	b.hint.SetText(statusLine + "\n" + controlsLine)
}

// StatusMessage returns the end-of-game message, or "" while the game runs.
func StatusMessage(s types.Status) string {
	switch s.Outcome {
	case types.Won:
		return fmt.Sprintf("Winner: %s", s.Winner)
	case types.Drawn:
		return "It's a draw!"
	}
	return ""
}

func describeRejection(err error) string {
	switch {
	case errors.Is(err, engine.ErrInvalidIndex):
		return "no such cell"
	case errors.Is(err, engine.ErrCellOccupied):
		return "cell is taken"
	case errors.Is(err, engine.ErrGameAlreadyFinished):
		return "game is over"
	}
	return err.Error()
}

func (b *BoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	b.left = x + max(0, (width-boardW)/2)
	msgTop := y + max(0, (height-frameH)/2)
	b.top = msgTop + 2

	if msg := StatusMessage(b.Snapshot.Status); msg != "" {
		style := tcell.StyleDefault.Foreground(MenuColors.Title).Bold(true)
		drawText(screen, b.left+(boardW-len([]rune(msg)))/2, msgTop, msg, style)
	}

	lineStyle := tcell.StyleDefault.Background(b.styles[0]).Foreground(b.styles[3])
	for i := 0; i < boardW; i++ {
		for j := 0; j < boardH; j++ {
			r, ok := gridRune(i, j)
			if ok {
				screen.SetContent(b.left+i, b.top+j, r, nil, lineStyle)
			}
		}
	}

	for idx, cell := range b.Snapshot.Cells {
		bg := b.styles[0]
		if idx == b.sel && b.cfg.Theme.DrawCursorBackground {
			bg = b.styles[5]
		} else if idx == b.Snapshot.LastMove && b.cfg.Theme.DrawLastPlayedBackground {
			bg = b.styles[6]
		}

		drawRune := b.cfg.Theme.Symbols.Empty
		fg := b.styles[3]
		switch cell {
		case types.CellX:
			drawRune = b.cfg.Theme.Symbols.X
			fg = b.styles[1]
		case types.CellO:
			drawRune = b.cfg.Theme.Symbols.O
			fg = b.styles[2]
		}
		if idx == b.sel && !b.cfg.Theme.DrawCursorBackground && cell == types.CellEmpty {
			drawRune = '+'
			fg = b.styles[4]
		}
		cx, cy := b.cellOrigin(idx)
		drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, cx, cy)
	}

	bx, by := b.resetButtonPos()
	b.resetBtn.SetFocused(b.Snapshot.Finished())
	b.resetBtn.Draw(screen, bx, by)

	return x, y, width, height
}

// cellOrigin returns the top-left screen position of a cell.
func (b *BoardUI) cellOrigin(index int) (int, int) {
	col, row := index%3, index/3
	return b.left + col*(cellW+1), b.top + row*(cellH+1)
}

// cellCenter returns where the cell's mark is drawn.
func (b *BoardUI) cellCenter(index int) (int, int) {
	x, y := b.cellOrigin(index)
	return x + cellW/2, y + cellH/2
}

// cellAt maps a screen position to a cell index, or -1 for grid lines and
// positions outside the board.
func (b *BoardUI) cellAt(x, y int) int {
	rx, ry := x-b.left, y-b.top
	if rx < 0 || ry < 0 || rx >= boardW || ry >= boardH {
		return -1
	}
	if rx%(cellW+1) == cellW || ry%(cellH+1) == cellH {
		return -1
	}
	return (ry/(cellH+1))*3 + rx/(cellW+1)
}

func (b *BoardUI) resetButtonPos() (int, int) {
	return b.left + (boardW-b.resetBtn.Width())/2, b.top + boardH + 1
}

func (b *BoardUI) onResetButton(x, y int) bool {
	bx, by := b.resetButtonPos()
	return y == by && x >= bx && x < bx+b.resetBtn.Width()
}

// drawCell fills a cell with the background and puts the mark in the middle.
func drawCell(s tcell.Screen, style tcell.Style, r rune, x, y int) {
	for i := 0; i < cellW; i++ {
		for j := 0; j < cellH; j++ {
			s.SetContent(x+i, y+j, ' ', nil, style)
		}
	}
	s.SetContent(x+cellW/2, y+cellH/2, r, nil, style)
}

// gridRune returns the grid line character at board position (i, j), or false
// inside a cell.
func gridRune(i, j int) (rune, bool) {
	vertical := i%(cellW+1) == cellW
	horizontal := j%(cellH+1) == cellH
	switch {
	case vertical && horizontal:
		return '┼', true
	case vertical:
		return '│', true
	case horizontal:
		return '─', true
	}
	return 0, false
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
