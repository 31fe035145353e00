package tictactoe

import (
	"slices"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

// Evaluate checks every winning line of the board. Cells of all lines completed by the same
// mark are merged, so two crossing lines yield one entry with five cells.
// It does not validate that the board is reachable through legal play.
func Evaluate(board entity.Board) entity.WinResult {
	result := entity.WinResult{}

	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			result[a] = mergeCells(result[a], combo)
		}
	}

	return result
}

func mergeCells(cells []int, combo [3]int) []int {
	cells = append(cells, combo[:]...)
	slices.Sort(cells)

	return slices.Compact(cells)
}
