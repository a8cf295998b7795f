package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"tictactoe-local/engine"
	"tictactoe-local/types"
)

// Scoreboard counts finished games in this session.
type Scoreboard struct {
	XWins int
	OWins int
	Draws int
}

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box      *tview.TextView
	snapshot types.Snapshot
	score    Scoreboard
	counted  string // ID of the last game added to score
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetSnapshot updates the panel with the current game. A finished game is
// added to the scoreboard once, however often it is shown.
func (p *GameInfoPanel) SetSnapshot(s types.Snapshot) {
	p.snapshot = s
	if s.Finished() && s.GameID != p.counted {
		p.counted = s.GameID
		switch {
		case s.Status.Outcome == types.Drawn:
			p.score.Draws++
		case s.Status.Winner == types.PlayerX:
			p.score.XWins++
		default:
			p.score.OWins++
		}
	}
	p.refresh()
}

// Score returns the session scoreboard.
func (p *GameInfoPanel) Score() Scoreboard {
	return p.score
}

// Text returns the panel text without color tags.
func (p *GameInfoPanel) Text() string {
	return p.box.GetText(true)
}

func (p *GameInfoPanel) refresh() {
	s := p.snapshot
	if s.GameID == "" {
		p.box.SetText("")
		return
	}

	var text string

	text += "[white::b]Game[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]ID:[-:-:-]   %s\n", shortID(s.GameID))
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", s.MoveNumber())
	if s.Finished() {
		text += fmt.Sprintf("[white]%s[-:-:-]\n", StatusMessage(s.Status))
	} else {
		text += fmt.Sprintf("[white]Next:[-:-:-] %s\n", s.NextPlayer)
	}

	text += "\n[white::b]Score[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("X %d  ·  O %d  ·  draw %d\n", p.score.XWins, p.score.OWins, p.score.Draws)

	if len(s.History) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"
		for i, m := range s.History {
			marker := " "
			if i == len(s.History)-1 {
				marker = "[white]>[-]"
			}
			text += fmt.Sprintf("%s[dimgray]%d.[-] %s %s\n", marker, i+1, m.Player, engine.CellName(m.Index))
		}
	}

	p.box.SetText(text)
}

// shortID keeps the first uuid group, which is enough to tell games apart.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := board.infoPanel
	if infoPanel == nil {
		infoPanel = NewGameInfoPanel()
		board.SetInfoPanel(infoPanel)
	}

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board, 0, 1, true)             // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)       // left spacer
	centerRow.AddItem(board, boardW, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)       // right spacer

	gameFrame.AddItem(centerRow, frameH, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)           // bottom spacer
}
