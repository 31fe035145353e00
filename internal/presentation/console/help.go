package console

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Tic-tac-toe

Cells are numbered row by row:

    0 | 1 | 2
    3 | 4 | 5
    6 | 7 | 8

| Command   | Action                                 |
|-----------|----------------------------------------|
| 4         | place the next mark on cell 4          |
| 2 3       | place the next mark on row 2, column 3 |
| jump 2    | go back to move #2 (short: j 2)        |
| history   | list every move                        |
| help      | show this help                         |
| quit      | leave the game                         |

Clicks on taken cells and moves after a win are ignored.
A move made after jumping back discards the later moves.
`

// newMarkdownRenderer falls back to the raw markdown when glamour cannot be set up.
func newMarkdownRenderer(style string) func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
