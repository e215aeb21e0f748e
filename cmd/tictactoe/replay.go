package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe/engine"
)

var flagStep int

var replayCmd = &cobra.Command{
	Use:   "replay <cell>...",
	Short: "Print the position reached by a sequence of moves",
	Long: `Apply moves in order to an empty board and print the result.

Cells are 0-based indices in row-major order: on a 3x3 board the
top row is 0 1 2 and the centre is 4. Illegal moves are skipped
with a warning, just as they are ignored on screen.

Examples:
  tictactoe replay 4 0 8
  tictactoe replay --size 4 0 1 4 5 8 9 12
  tictactoe replay --step 2 0 3 1 4 2`,
	Args: cobra.ArbitraryArgs,
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagStep, "step", 0, "Show the position after this many moves (default: last)")
}

func runReplay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(os.Stderr, cfg.Log.Level)

	cells, err := parseCells(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	step := -1
	if cmd.Flags().Changed("step") {
		step = flagStep
	}

	state, err := replay(cfg.Board.Size, cells, step, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	writeReplay(os.Stdout, termenv.NewOutput(os.Stdout), state, cfg)
}

// parseCells converts command-line arguments to cell indices.
func parseCells(args []string) ([]int, error) {
	cells := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid cell %q: %w", a, err)
		}
		cells = append(cells, n)
	}
	return cells, nil
}

// replay applies cells to a new game and then jumps to step.
// A negative step keeps the latest move active.
func replay(size int, cells []int, step int, logger *log.Logger) (engine.GameState, error) {
	state, err := engine.New(size)
	if err != nil {
		return state, err
	}

	for _, cell := range cells {
		next := state.ApplyMove(cell)
		if next.Len() == state.Len() {
			logger.Warn("move ignored", "cell", cell, "step", state.ActiveStep(), "status", state.Status())
			continue
		}
		logger.Debug("move", "cell", cell, "step", next.ActiveStep())
		state = next
	}

	if step >= 0 {
		if state, err = state.JumpTo(step); err != nil {
			return state, err
		}
	}
	return state, nil
}

// writeReplay prints the board, status, recent move and move list of state.
func writeReplay(w io.Writer, out *termenv.Output, state engine.GameState, cfg config.TicTacToeConfig) {
	view := state.View()
	size := view.Board.Size()

	symbol := func(m engine.Mark) string {
		switch m {
		case engine.PlayerA:
			return cfg.Marks.PlayerA
		case engine.PlayerB:
			return cfg.Marks.PlayerB
		default:
			return "."
		}
	}
	win := out.String().Foreground(out.Color("10")).Bold()

	width := len(strconv.Itoa(size))
	if cfg.Display.ShowCoordinates {
		var hdr strings.Builder
		hdr.WriteString(strings.Repeat(" ", width+1))
		for c := 0; c < size; c++ {
			fmt.Fprintf(&hdr, " %*d", width, c+1)
		}
		fmt.Fprintln(w, hdr.String())
	}

	for row := 0; row < size; row++ {
		var line strings.Builder
		if cfg.Display.ShowCoordinates {
			fmt.Fprintf(&line, "%*d ", width, row+1)
		}
		for col := 0; col < size; col++ {
			i := row*size + col
			sym := symbol(view.Board.At(i))
			cell := fmt.Sprintf(" %*s", width, sym)
			if cfg.Display.HighlightWin && view.Highlighted(i) {
				cell = " " + strings.Repeat(" ", width-1) + win.Styled(sym)
			}
			line.WriteString(cell)
		}
		fmt.Fprintln(w, line.String())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, view.Status.Format(symbol))

	recent := ""
	if view.HasLast {
		recent = "(" + view.LastMove.String() + ")"
	}
	fmt.Fprintf(w, "Recent move (row, col): %s\n", recent)

	moves := view.Moves
	order := "oldest first"
	if cfg.Display.MoveOrder == config.OrderDescending {
		order = "newest first"
		for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
			moves[i], moves[j] = moves[j], moves[i]
		}
	}

	current := out.String().Bold()
	fmt.Fprintf(w, "\nMoves (%s):\n", order)
	for _, m := range moves {
		if m.Step == view.ActiveStep {
			fmt.Fprintln(w, current.Styled(fmt.Sprintf("> %2d. %s", m.Step, m.Label())))
			continue
		}
		fmt.Fprintf(w, "  %2d. %s\n", m.Step, m.Label())
	}
}
