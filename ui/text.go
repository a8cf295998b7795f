package ui

import (
	"fmt"
	"strings"

	"tictactoe-local/config"
	"tictactoe-local/types"
)

// RenderText draws a snapshot as plain text for non-interactive output.
func RenderText(s types.Snapshot, sym config.Symbols) string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("───┼───┼───\n")
		}
		c := s.Cells[row*3 : row*3+3]
		line := fmt.Sprintf(" %c │ %c │ %c", symbol(c[0], sym), symbol(c[1], sym), symbol(c[2], sym))
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if msg := StatusMessage(s.Status); msg != "" {
		sb.WriteString(msg)
	} else {
		fmt.Fprintf(&sb, "%s to move", s.NextPlayer)
	}
	sb.WriteString("\n")
	return sb.String()
}

func symbol(c types.Cell, sym config.Symbols) rune {
	switch c {
	case types.CellX:
		return sym.X
	case types.CellO:
		return sym.O
	}
	return sym.Empty
}
