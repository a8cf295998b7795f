package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuButton is a styled button drawn directly on the screen.
type MenuButton struct {
	label    string
	primary  bool
	focused  bool
	onSelect func()
}

// NewMenuButton creates a new menu button.
func NewMenuButton(label string, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		primary:  primary,
		onSelect: onSelect,
	}
}

// SetFocused sets the focus state. A focused button is drawn filled.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// Press runs the button's action.
func (b *MenuButton) Press() {
	if b.onSelect != nil {
		b.onSelect()
	}
}

// Draw renders the button at the given position.
// Returns the width used.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	label := b.text()
	width := b.Width()

	if b.focused {
		style := tcell.StyleDefault.
			Foreground(MenuColors.ButtonText).
			Background(MenuColors.ButtonFocus)
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, ' ', nil, style)
		}
		drawText(screen, x+1, y, label, style)
		return width
	}

	// Dim text with brackets, no fill
	dimStyle := tcell.StyleDefault.
		Foreground(MenuColors.Hint).
		Background(MenuColors.CardBG)
	bracketStyle := tcell.StyleDefault.
		Foreground(MenuColors.Border).
		Background(MenuColors.CardBG)

	screen.SetContent(x, y, '[', nil, bracketStyle)
	drawText(screen, x+1, y, label, dimStyle)
	screen.SetContent(x+width-1, y, ']', nil, bracketStyle)
	return width
}

// Width returns the button width.
func (b *MenuButton) Width() int {
	return len([]rune(b.text())) + 2 // 1 padding on each side (or brackets)
}

func (b *MenuButton) text() string {
	if b.primary {
		return "▶ " + b.label
	}
	return b.label
}
