// Package types contains shared data structures for tictactoe-local.
package types

// Cell is the content of one board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

func (c Cell) String() string {
	switch c {
	case CellX:
		return "X"
	case CellO:
		return "O"
	}
	return ""
}

// Player returns the player owning the cell, or false for an empty cell.
func (c Cell) Player() (Player, bool) {
	switch c {
	case CellX:
		return PlayerX, true
	case CellO:
		return PlayerO, true
	}
	return 0, false
}

// Player is one of the two sides. X always moves first.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Mark returns the cell value a move by p leaves on the board.
func (p Player) Mark() Cell {
	switch p {
	case PlayerX:
		return CellX
	case PlayerO:
		return CellO
	}
	return CellEmpty
}

func (p Player) String() string {
	return p.Mark().String()
}

// Board holds 9 cells in row-major order: index = 3*row + col, 0 is top-left.
type Board [9]Cell

// Full returns true if no cell is empty.
func (b Board) Full() bool {
	for _, c := range b {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// Count returns how many cells hold c.
func (b Board) Count(c Cell) int {
	n := 0
	for _, v := range b {
		if v == c {
			n++
		}
	}
	return n
}

// Outcome is the coarse state of a game.
type Outcome uint8

const (
	InProgress Outcome = iota
	Won
	Drawn
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	}
	return "in progress"
}

// Status is derived from the board. Winner is only set when Outcome is Won.
type Status struct {
	Outcome Outcome
	Winner  Player
}

// Finished returns true once the game is won or drawn.
func (s Status) Finished() bool {
	return s.Outcome != InProgress
}

func (s Status) String() string {
	if s.Outcome == Won {
		return "won by " + s.Winner.String()
	}
	return s.Outcome.String()
}

// Move is a single accepted move.
type Move struct {
	Index  int
	Player Player
}

// Snapshot is a read-only view of a game. Cells is an array value and History a
// fresh slice, so changing either never reaches the engine.
type Snapshot struct {
	GameID     string
	Cells      Board
	NextPlayer Player
	Status     Status
	History    []Move
	LastMove   int // -1 before the first move
}

// MoveNumber returns the number of moves played so far.
func (s Snapshot) MoveNumber() int {
	return len(s.History)
}

// Finished returns true if the game is over.
func (s Snapshot) Finished() bool {
	return s.Status.Finished()
}
