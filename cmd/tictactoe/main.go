// tictactoe is a terminal tic-tac-toe on an N x N board with move history.
//
// Usage:
//
//	tictactoe list                 - List available games
//	tictactoe play [game]          - Play a game (default: tictactoe)
//	tictactoe menu                 - Pick a game interactively
//	tictactoe replay <cell>...     - Print the position reached by a move sequence
//
// Global flags:
//
//	--size <n>         - Board size N (skips the size prompt)
//	--config <path>    - Path to a custom config YAML
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Log file used while playing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

var (
	// Global flags
	flagSize     int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe on any board size, in your terminal",
	Long: `Tic-tac-toe for two players sharing a keyboard, on an N x N board.
Every position is kept, so you can step back through the game and
branch off from any earlier move.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  replay   - Print the position reached by a sequence of moves

Examples:
  tictactoe play
  tictactoe play --size 5
  tictactoe play tictactoe-4x4
  tictactoe replay 0 4 1 5 2`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size N for an N x N grid (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads the config file, applies flag overrides and validates the result.
func loadConfig(cmd *cobra.Command) (config.TicTacToeConfig, error) {
	cfg, err := config.LoadTicTacToe(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tictactoe",
		Level:           lvl,
	})
}

// openPlayLogger returns a logger for interactive sessions. The terminal
// belongs to the TUI, so logs go to the configured file or nowhere.
func openPlayLogger(cfg config.TicTacToeConfig) (*log.Logger, func(), error) {
	if cfg.Log.File == "" {
		return newLogger(io.Discard, cfg.Log.Level), func() {}, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.Log.File, err)
	}
	return newLogger(f, cfg.Log.Level), func() { f.Close() }, nil
}
