// Package engine implements the tic-tac-toe game state: board, turn order,
// move legality and win/draw evaluation.
package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"tictactoe-local/types"
)

// GameEngine defines the interface the presentation layer plays through.
type GameEngine interface {
	// ApplyMove places the next player's mark at index (0-8).
	// Returns an error matching ErrInvalidIndex or ErrMoveRejected if the move
	// is not accepted, in which case the state is unchanged.
	ApplyMove(index int) error

	// Reset starts a new game: empty board, X to move, new game ID.
	Reset()

	// Snapshot returns the current state. It never changes the game.
	Snapshot() types.Snapshot
}

// Engine is the in-memory GameEngine. It is not safe for concurrent use.
type Engine struct {
	board   types.Board
	next    types.Player
	history []types.Move
	gameID  string

	newID  func() string
	logger *slog.Logger
}

var _ GameEngine = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for move and reset events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithIDGenerator replaces the uuid based game ID generator.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		if newID != nil {
			e.newID = newID
		}
	}
}

// New creates an engine with an empty board and X to move.
func New(opts ...Option) *Engine {
	e := &Engine{
		newID:  uuid.NewString,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.clear()
	return e
}

// ApplyMove places the current player's mark at index.
func (e *Engine) ApplyMove(index int) error {
	if index < 0 || index >= len(e.board) {
		e.logger.Debug("move rejected", "game", e.gameID, "index", index, "reason", "invalid index")
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	if Evaluate(e.board).Finished() {
		e.logger.Debug("move rejected", "game", e.gameID, "index", index, "reason", "finished")
		return ErrGameAlreadyFinished
	}

	if e.board[index] != types.CellEmpty {
		e.logger.Debug("move rejected", "game", e.gameID, "index", index, "reason", "occupied")
		return ErrCellOccupied
	}

	player := e.next
	e.board[index] = player.Mark()
	e.history = append(e.history, types.Move{Index: index, Player: player})
	e.next = player.Other()

	e.logger.Debug("move applied",
		"game", e.gameID,
		"index", index,
		"player", player.String(),
		"status", Evaluate(e.board).String(),
	)
	return nil
}

// Reset clears the board and starts a new game with X to move.
func (e *Engine) Reset() {
	prev := e.gameID
	e.clear()
	e.logger.Debug("game reset", "previous", prev, "game", e.gameID)
}

// Snapshot returns a copy of the current state with the status derived from
// the board.
func (e *Engine) Snapshot() types.Snapshot {
	history := make([]types.Move, len(e.history))
	copy(history, e.history)

	last := -1
	if len(history) > 0 {
		last = history[len(history)-1].Index
	}

	return types.Snapshot{
		GameID:     e.gameID,
		Cells:      e.board,
		NextPlayer: e.next,
		Status:     Evaluate(e.board),
		History:    history,
		LastMove:   last,
	}
}

func (e *Engine) clear() {
	e.board = types.Board{}
	e.next = types.PlayerX
	e.history = nil
	e.gameID = e.newID()
}
