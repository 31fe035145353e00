package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

const (
	prompt       = "> "
	rowSeparator = "---+---+---\n"

	colorWinner = "2"
	colorX      = "4"
	colorO      = "1"
)

type gameUseCase interface {
	MakeTurn(cell int) *usecase.View
	JumpTo(step int) (*usecase.View, error)
	View() *usecase.View
}

type Options struct {
	Color    bool
	ShowHelp bool
}

// Console is a terminal presentation layer: it draws the game and turns typed commands
// into cell and history clicks.
type Console struct {
	logger *slog.Logger

	game gameUseCase

	in         io.Reader
	out        *termenv.Output
	color      bool
	showHelp   bool
	renderHelp func(string) (string, error)
}

func New(logger *slog.Logger, game gameUseCase, in io.Reader, out io.Writer, opts Options) *Console {
	profile := termenv.Ascii
	helpStyle := "notty"
	if opts.Color {
		profile = termenv.ANSI
		helpStyle = "dark"
	}

	return &Console{
		logger:     logger.With("component", "console"),
		game:       game,
		in:         in,
		out:        termenv.NewOutput(out, termenv.WithProfile(profile)),
		color:      opts.Color,
		showHelp:   opts.ShowHelp,
		renderHelp: newMarkdownRenderer(helpStyle),
	}
}

// Run draws the game and processes input lines until quit, end of input or ctx is canceled.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	if that.showHelp {
		if err := that.printHelp(); err != nil {
			return err
		}
	}

	if err := that.write(that.renderFrame(that.game.View())); err != nil {
		return err
	}

	// The reader goroutine stays blocked in Read until input arrives or ends. Closable input
	// is closed on cancel so the goroutine exits with the session.
	if closer, ok := that.in.(io.Closer); ok {
		context.AfterFunc(ctx, func() {
			_ = closer.Close()
		})
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		scanErr <- scanner.Err()
	}()

	for {
		if err := that.write(prompt); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				return that.finish(scanErr)
			}

			quit, err := that.handle(line)
			if err != nil {
				return err
			}

			if quit {
				log.Info("player quit")
				return nil
			}
		}
	}
}

func (that *Console) finish(scanErr <-chan error) error {
	select {
	case err := <-scanErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	that.logger.Info("input closed", "method", "finish")

	return that.write("\n")
}

func (that *Console) handle(line string) (bool, error) {
	cmd, err := parseCommand(line)
	if err != nil {
		that.logger.Debug("invalid input", "method", "handle", "input", line, "error", err)
		return false, that.write(fmt.Sprintf("error: %v\n", err))
	}

	switch cmd.kind {
	case commandQuit:
		return true, that.write("Bye!\n")
	case commandHelp:
		return false, that.printHelp()
	case commandHistory:
		return false, that.write(that.renderMoves(that.game.View()))
	case commandMove:
		return false, that.write(that.renderFrame(that.game.MakeTurn(cmd.arg)))
	case commandJump:
		view, err := that.game.JumpTo(cmd.arg)
		if err != nil {
			return false, that.write(fmt.Sprintf("error: %v\n", err))
		}

		return false, that.write(that.renderFrame(view))
	case commandNone:
	}

	return false, nil
}

func (that *Console) printHelp() error {
	help, err := that.renderHelp(helpMarkdown)
	if err != nil {
		that.logger.Warn("failed to render help", "method", "printHelp", "error", err)
		help = helpMarkdown
	}

	return that.write(help)
}

func (that *Console) renderFrame(view *usecase.View) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(that.renderBoard(view))
	sb.WriteString("\n")
	sb.WriteString(that.renderStatus(view))
	sb.WriteString("\n\n")
	sb.WriteString(that.renderMoves(view))

	return sb.String()
}

func (that *Console) renderBoard(view *usecase.View) string {
	var sb strings.Builder

	for r, row := range view.Board.Rows() {
		cells := make([]string, 0, len(row))
		for c, mark := range row {
			cells = append(cells, that.renderCell(r*3+c, mark, view))
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")

		if r < len(row)-1 {
			sb.WriteString(rowSeparator)
		}
	}

	return sb.String()
}

// renderCell always returns three visible columns. Without color, winning cells are bracketed.
func (that *Console) renderCell(cell int, mark entity.Mark, view *usecase.View) string {
	winning := view.IsWinningCell(cell)

	if !that.color {
		if winning {
			return "[" + mark.String() + "]"
		}

		return " " + mark.String() + " "
	}

	style := that.out.String(" " + mark.String() + " ")
	switch {
	case winning:
		return style.Bold().Reverse().Foreground(that.out.Color(colorWinner)).String()
	case mark == entity.MarkX:
		return style.Foreground(that.out.Color(colorX)).String()
	case mark == entity.MarkO:
		return style.Foreground(that.out.Color(colorO)).String()
	default:
		return style.String()
	}
}

func (that *Console) renderStatus(view *usecase.View) string {
	if !that.color {
		return view.Status
	}

	return that.out.String(view.Status).Bold().String()
}

func (that *Console) renderMoves(view *usecase.View) string {
	var sb strings.Builder

	sb.WriteString("Moves:\n")
	for _, move := range view.Moves {
		marker := "  "
		if move.Current {
			marker = "* "
		}

		fmt.Fprintf(&sb, "%s%d. %s\n", marker, move.Step, move.Label)
	}

	return sb.String()
}

func (that *Console) write(s string) error {
	if _, err := io.WriteString(that.out, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
