package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-history/internal"
	"github.com/rocketscienceinc/tictactoe-history/internal/config"
)

var version = "dev"

// main - is the entry point of the application. It parses flags, loads the configuration and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Play tic-tac-toe in the terminal",
		Long:         `Two players take turns on a 3x3 board. Every move is kept, so you can jump back to any earlier position and play on from there.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.MustLoad(configPath)
			if cmd.Flags().Changed("log-level") {
				conf.LogLevel = logLevel
			}

			if err := app.RunApp(initLogger(conf), conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.yml", "path to the YAML config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of tictactoe",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tictactoe version %s\n", version)
		},
	})

	return rootCmd
}

// initialize logger. Logs go to stderr so they do not mix with the board on stdout.
func initLogger(conf *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: conf.SlogLevel(),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}
