package usecase

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const labelGameStart = "Game start"

// View is everything a presentation layer needs to draw one frame of the game.
type View struct {
	Board        entity.Board
	Status       string
	Winner       entity.Mark
	NextMark     entity.Mark
	WinningCells []int
	Moves        []Move
	CurrentStep  int
}

// Move is one entry of the history list.
type Move struct {
	Step    int
	Label   string
	Current bool
}

func (that *View) HasWinner() bool {
	return !that.Winner.IsEmpty()
}

func (that *View) IsWinningCell(cell int) bool {
	return slices.Contains(that.WinningCells, cell)
}

func statusLine(winner, next entity.Mark) string {
	if !winner.IsEmpty() {
		return fmt.Sprintf("Winner is %s", winner)
	}

	return fmt.Sprintf("Next player is: %s", next)
}

func moveLabel(step int) string {
	if step == 0 {
		return labelGameStart
	}

	return fmt.Sprintf("Move #%d", step)
}
