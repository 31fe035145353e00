package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

// GameUseCase is the contract between the game core and a presentation layer:
// clicks go in, a freshly computed View comes out.
type GameUseCase interface {
	MakeTurn(cell int) *View
	JumpTo(step int) (*View, error)
	View() *View
}

type gameState interface {
	ApplyMove(cell int) bool
	JumpTo(step int) error
	CurrentBoard() entity.Board
	NextMark() entity.Mark
	CurrentStep() int
	HistoryLen() int
}

type gameUseCase struct {
	logger *slog.Logger
	state  gameState
}

func NewGameUseCase(logger *slog.Logger, state gameState) GameUseCase {
	return &gameUseCase{
		logger: logger.With("component", "game"),
		state:  state,
	}
}

// MakeTurn forwards a cell click. Illegal clicks leave the game unchanged.
func (that *gameUseCase) MakeTurn(cell int) *View {
	log := that.logger.With("method", "MakeTurn", "cell", cell, "step", that.state.CurrentStep())

	mark := that.state.NextMark()
	if !that.state.ApplyMove(cell) {
		log.Debug("move ignored")
		return that.View()
	}

	view := that.View()
	if view.HasWinner() {
		log.Info("game won", "winner", view.Winner, "cells", view.WinningCells)
		return view
	}

	log.Debug("move applied", "mark", mark)

	return view
}

// JumpTo forwards a history click.
func (that *gameUseCase) JumpTo(step int) (*View, error) {
	if err := that.state.JumpTo(step); err != nil {
		return that.View(), fmt.Errorf("failed to jump: %w", err)
	}

	that.logger.Debug("jumped", "method", "JumpTo", "step", step)

	return that.View(), nil
}

// View evaluates the current board on every call; nothing is cached.
func (that *gameUseCase) View() *View {
	board := that.state.CurrentBoard()
	result := tictactoe.Evaluate(board)
	current := that.state.CurrentStep()

	moves := make([]Move, 0, that.state.HistoryLen())
	for step := range that.state.HistoryLen() {
		moves = append(moves, Move{
			Step:    step,
			Label:   moveLabel(step),
			Current: step == current,
		})
	}

	winner := result.Winner()
	next := that.state.NextMark()

	return &View{
		Board:        board,
		Status:       statusLine(winner, next),
		Winner:       winner,
		NextMark:     next,
		WinningCells: result.Cells(),
		Moves:        moves,
		CurrentStep:  current,
	}
}
