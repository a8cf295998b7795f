package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the Nord-inspired palette for text and controls around the board.
var MenuColors = struct {
	Border      tcell.Color // Muted blue-gray for brackets
	CardBG      tcell.Color // Background behind unfocused controls
	Title       tcell.Color // Bright white for the result message
	Hint        tcell.Color // Dim gray for hints
	ButtonFocus tcell.Color // Focused button
	ButtonText  tcell.Color // Button text
}{
	Border:      tcell.PaletteColor(60),  // Muted blue-gray
	CardBG:      tcell.ColorDefault,      // Terminal background
	Title:       tcell.PaletteColor(255), // Bright white
	Hint:        tcell.PaletteColor(245), // Dim gray
	ButtonFocus: tcell.PaletteColor(109), // Brighter blue
	ButtonText:  tcell.PaletteColor(255), // White
}
