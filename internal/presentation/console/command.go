package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

type commandKind int

const (
	commandNone commandKind = iota
	commandMove
	commandJump
	commandHistory
	commandHelp
	commandQuit
)

type command struct {
	kind commandKind
	arg  int
}

// parseCommand understands:
//
//	4          click cell 4 (0-8, row-major)
//	2 3        click row 2, column 3 (1-based)
//	jump 2     click history entry 2 (also "j 2")
//	history    list the moves
//	help, quit
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: commandNone}, nil
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return command{kind: commandQuit}, nil
	case "h", "help", "?":
		return command{kind: commandHelp}, nil
	case "history", "moves":
		return command{kind: commandHistory}, nil
	case "j", "jump":
		if len(fields) != 2 {
			return command{}, fmt.Errorf("%w: usage: jump <step>", apperror.ErrUnknownCommand)
		}

		step, err := strconv.Atoi(fields[1])
		if err != nil {
			return command{}, fmt.Errorf("%w: step %q is not a number", apperror.ErrUnknownCommand, fields[1])
		}

		return command{kind: commandJump, arg: step}, nil
	}

	return parseCell(fields)
}

func parseCell(fields []string) (command, error) {
	numbers := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return command{}, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, strings.Join(fields, " "))
		}
		numbers = append(numbers, n)
	}

	switch len(numbers) {
	case 1:
		if !entity.IsValidCell(numbers[0]) {
			return command{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, numbers[0])
		}

		return command{kind: commandMove, arg: numbers[0]}, nil
	case 2:
		row, col := numbers[0], numbers[1]
		if row < 1 || row > 3 || col < 1 || col > 3 {
			return command{}, fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCell, row, col)
		}

		return command{kind: commandMove, arg: (row-1)*3 + (col - 1)}, nil
	default:
		return command{}, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, strings.Join(fields, " "))
	}
}
