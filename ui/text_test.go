package ui

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"tictactoe-local/config"
	"tictactoe-local/engine"
)

func TestRenderText(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
	}{
		{"empty", nil},
		{"one_move", []int{4}},
		{"x_wins", []int{0, 3, 1, 4, 2}},
		{"draw", []int{0, 1, 2, 4, 3, 5, 7, 6, 8}},
	}

	g := goldie.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engine.New()
			for _, m := range tt.moves {
				require.NoError(t, e.ApplyMove(m))
			}
			g.Assert(t, tt.name, []byte(RenderText(e.Snapshot(), config.DefaultTheme.Symbols)))
		})
	}
}
