package engine

import (
	"errors"

	"tictactoe-local/types"
)

var (
	ErrInvalidIndex = errors.New("invalid cell index")
	ErrMoveRejected = errors.New("move rejected")

	ErrGameAlreadyFinished error = &rejection{"game is already finished"}
	ErrCellOccupied        error = &rejection{"cell is already occupied"}
)

// rejection is a cause of ErrMoveRejected.
type rejection struct {
	msg string
}

func (r *rejection) Error() string {
	return r.msg
}

func (r *rejection) Is(target error) bool {
	return target == ErrMoveRejected
}

// winLines lists every row, column and diagonal. Order matters: Evaluate
// reports the first complete line.
var winLines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// WinLines returns a copy of the winning lines in the order Evaluate checks them.
func WinLines() [8][3]int {
	return winLines
}

// Evaluate derives the game status from a board. The first line in WinLines
// held entirely by one player wins; otherwise a full board is a draw.
func Evaluate(b types.Board) types.Status {
	for _, ln := range winLines {
		a := b[ln[0]]
		if a != types.CellEmpty && a == b[ln[1]] && a == b[ln[2]] {
			winner, _ := a.Player()
			return types.Status{Outcome: types.Won, Winner: winner}
		}
	}
	if b.Full() {
		return types.Status{Outcome: types.Drawn}
	}
	return types.Status{Outcome: types.InProgress}
}
