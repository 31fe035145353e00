package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/presentation/console"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

// RunApp - runs the game on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run plays one game session over in/out until the player quits, input ends or a signal arrives.
func Run(parent context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameState := tictactoe.NewGameState()
	gameUseCase := usecase.NewGameUseCase(logger, gameState)

	opts := console.Options{
		Color:    !bool(conf.Presentation.NoColor) && isTerminal(out),
		ShowHelp: !conf.Presentation.HideHelp,
	}

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console", "color", opts.Color)
		consoleErrCh <- console.New(logger, gameUseCase, in, out, opts).Run(ctx)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Game session ended", "moves", gameState.HistoryLen()-1)
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		if err := <-consoleErrCh; err != nil {
			log.Error("console stopped with error", "error", err)
		}

		return nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
