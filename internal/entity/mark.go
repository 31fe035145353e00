package entity

// Mark is the content of a single board cell.
type Mark string

const (
	MarkX Mark = "X"
	MarkO Mark = "O"

	EmptyCell Mark = ""
)

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}

// String renders an empty cell as a blank so boards keep their shape when printed.
func (that Mark) String() string {
	if that.IsEmpty() {
		return " "
	}

	return string(that)
}
