package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

// MoveApplier is anything that accepts cell clicks, e.g. the game state.
type MoveApplier interface {
	ApplyMove(cell int) bool
}

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Play applies cells in order and fails the test as soon as one of them is rejected.
func (that *Suite) Play(game MoveApplier, cells ...int) {
	that.Helper()

	for i, cell := range cells {
		if !game.ApplyMove(cell) {
			that.Fatalf("move %d on cell %d was rejected", i, cell)
		}
	}
}
