package entity

// WinResult maps a winning mark to the sorted cells of every line it completed.
// An empty result means nobody has won.
type WinResult map[Mark][]int

func (that WinResult) HasWinner() bool {
	return len(that) > 0
}

// Winner returns the winning mark, or EmptyCell when there is none.
// Boards reached through legal play have at most one winner; X is reported first otherwise.
func (that WinResult) Winner() Mark {
	for _, mark := range []Mark{MarkX, MarkO} {
		if len(that[mark]) > 0 {
			return mark
		}
	}

	for mark := range that {
		return mark
	}

	return EmptyCell
}

// Cells returns the highlighted cells of the winner.
func (that WinResult) Cells() []int {
	return that[that.Winner()]
}
