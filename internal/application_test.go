package application

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/testing/suite"
)

var errWriteFailed = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestRun(t *testing.T) {
	t.Run("Plays a session until quit", func(t *testing.T) {
		// Given: a session where X wins on the left column
		ctx, st := suite.New(t)
		conf := &config.Config{Presentation: config.Presentation{HideHelp: true}}
		in := strings.NewReader("0\n1\n3\n2\n6\nquit\n")
		out := &bytes.Buffer{}

		// When: running the application
		err := Run(ctx, st.Logger, conf, in, out)

		// Then: the session ends cleanly with X as the winner
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Winner is X")
		assert.Contains(t, out.String(), "[X]| O | O \n")
		assert.NotContains(t, out.String(), "Cells are numbered")
	})

	t.Run("Output errors are returned", func(t *testing.T) {
		// Given: an output that cannot be written
		ctx, st := suite.New(t)
		conf := &config.Config{}

		// When: running the application
		err := Run(ctx, st.Logger, conf, strings.NewReader(""), failingWriter{})

		// Then: the write error is reported
		require.ErrorIs(t, err, errWriteFailed)
	})

	t.Run("Canceled context stops the session", func(t *testing.T) {
		// Given: an already canceled context
		_, st := suite.New(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		out := &bytes.Buffer{}
		conf := &config.Config{Presentation: config.Presentation{HideHelp: true}}

		// When: running the application
		err := Run(ctx, st.Logger, conf, strings.NewReader(""), out)

		// Then: it returns without error after the console finished writing
		require.NoError(t, err)
		assert.Contains(t, out.String(), "* 0. Game start\n")
	})
}
