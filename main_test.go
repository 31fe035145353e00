package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Version(t *testing.T) {
	// Given: the root command with the version subcommand
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"version"})

	// When: executing it
	err := cmd.Execute()

	// Then: the version is printed
	require.NoError(t, err)
	assert.Equal(t, "tictactoe version dev\n", out.String())
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCommand()

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "config.yml", configFlag.DefValue)
	assert.Equal(t, "c", configFlag.Shorthand)

	require.NotNil(t, cmd.Flags().Lookup("log-level"))
}
