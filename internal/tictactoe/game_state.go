package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

// GameState owns the board history and the step currently shown.
// History always starts with the empty board; whose turn it is follows from the step.
type GameState struct {
	history     []entity.Board
	currentStep int
}

func NewGameState() *GameState {
	return &GameState{
		history: []entity.Board{{}},
	}
}

// ApplyMove places the next mark on cell. The move is ignored when the current board already
// has a winner, the cell is occupied or out of range. Any snapshots after the current step are
// dropped before the new board is appended. It reports whether the move was applied.
func (that *GameState) ApplyMove(cell int) bool {
	if !entity.IsValidCell(cell) {
		return false
	}

	current := that.CurrentBoard()
	if Evaluate(current).HasWinner() || !current.IsCellEmpty(cell) {
		return false
	}

	next := current.With(cell, that.NextMark())

	that.history = append(that.history[:that.currentStep+1], next)
	that.currentStep = len(that.history) - 1

	return true
}

// JumpTo moves the current step without touching the history.
func (that *GameState) JumpTo(step int) error {
	if step < 0 || step >= len(that.history) {
		return fmt.Errorf("%w: step %d, history length %d", apperror.ErrStepOutOfRange, step, len(that.history))
	}

	that.currentStep = step

	return nil
}

func (that *GameState) CurrentBoard() entity.Board {
	return that.history[that.currentStep]
}

// NextMark is X on even steps and O on odd ones.
func (that *GameState) NextMark() entity.Mark {
	if that.currentStep%2 == 0 {
		return entity.MarkX
	}

	return entity.MarkO
}

func (that *GameState) CurrentStep() int {
	return that.currentStep
}

func (that *GameState) HistoryLen() int {
	return len(that.history)
}

// History returns a copy of every snapshot, oldest first.
func (that *GameState) History() []entity.Board {
	return slices.Clone(that.history)
}
