package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard_With(t *testing.T) {
	// Given: an empty board
	board := Board{}

	// When: placing X on the center
	next := board.With(4, MarkX)

	// Then: a new board is returned and the original is untouched
	assert.Equal(t, MarkX, next[4])
	assert.False(t, next.IsCellEmpty(4))
	assert.True(t, board.IsCellEmpty(4))
}

func TestIsValidCell(t *testing.T) {
	for cell := range BoardSize {
		assert.True(t, IsValidCell(cell), "cell %d", cell)
	}

	assert.False(t, IsValidCell(-1))
	assert.False(t, IsValidCell(BoardSize))
}

func TestBoard_Rows(t *testing.T) {
	// Given: a board with marks in every row
	board := Board{
		MarkX, EmptyCell, EmptyCell,
		EmptyCell, MarkO, EmptyCell,
		EmptyCell, EmptyCell, MarkX,
	}

	// When: splitting into rows
	rows := board.Rows()

	// Then: row-major order is preserved
	assert.Equal(t, [3]Mark{MarkX, EmptyCell, EmptyCell}, rows[0])
	assert.Equal(t, [3]Mark{EmptyCell, MarkO, EmptyCell}, rows[1])
	assert.Equal(t, [3]Mark{EmptyCell, EmptyCell, MarkX}, rows[2])
}

func TestMark_String(t *testing.T) {
	assert.Equal(t, "X", MarkX.String())
	assert.Equal(t, "O", MarkO.String())
	assert.Equal(t, " ", EmptyCell.String())
}

func TestWinResult_Winner(t *testing.T) {
	t.Run("No winner", func(t *testing.T) {
		result := WinResult{}

		assert.False(t, result.HasWinner())
		assert.Equal(t, EmptyCell, result.Winner())
		assert.Empty(t, result.Cells())
	})

	t.Run("Single winner", func(t *testing.T) {
		result := WinResult{MarkO: {2, 4, 6}}

		assert.True(t, result.HasWinner())
		assert.Equal(t, MarkO, result.Winner())
		assert.Equal(t, []int{2, 4, 6}, result.Cells())
	})
}
