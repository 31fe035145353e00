package entity

const BoardSize = 9

// WinCombos lists the eight lines (rows, columns, diagonals) that win when filled by one mark.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid in row-major order. It is a value type: moves produce a new Board.
type Board [BoardSize]Mark

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// With returns a copy of the board with cell set to mark.
func (that Board) With(cell int, mark Mark) Board {
	that[cell] = mark
	return that
}

func (that Board) IsCellEmpty(cell int) bool {
	return that[cell].IsEmpty()
}

// Rows splits the board into its three rows, top to bottom.
func (that Board) Rows() [3][3]Mark {
	var rows [3][3]Mark
	for i, mark := range that {
		rows[i/3][i%3] = mark
	}

	return rows
}
