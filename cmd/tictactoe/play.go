package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

const defaultGame = "tictactoe"

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: tictactoe).

Without --size you are asked for the board size first, unless the
game always uses the same board.

Controls:
  Arrows/hjkl   - Move cursor
  Enter/Space   - Place mark (mouse clicks work too)
  [ / ]         - Step back / forward through the moves
  Home/g End/G  - Jump to game start / latest move
  O             - Toggle move list order
  R             - New game
  Ctrl+S        - Save screenshot
  Q/Ctrl+C      - Quit

Examples:
  tictactoe play
  tictactoe play --size 4
  tictactoe play tictactoe-4x4
  tictactoe play --config ./my-tictactoe.yaml --log-file play.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tictactoe list' to see available games.")
		os.Exit(1)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openPlayLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rc := cfg.Runtime(terminalSize())

	if info.FixedSize == 0 && !cmd.Flags().Changed("size") {
		size, selErr := tui.RunSizeSelector(rc)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if size == 0 {
			return
		}
		rc.BoardSize = size
	}

	if err := playGame(gameID, rc, logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playGame creates the game and runs it until the user quits.
func playGame(gameID string, rc core.RuntimeConfig, logger *log.Logger) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	return tui.Run(game, rc, logger)
}

// terminalSize returns the terminal dimensions, or 80x24 when unknown.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
