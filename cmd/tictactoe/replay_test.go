package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe/engine"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func render(t *testing.T, state engine.GameState, cfg config.TicTacToeConfig) string {
	t.Helper()
	var buf bytes.Buffer
	writeReplay(&buf, termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)), state, cfg)
	return buf.String()
}

func TestParseCells(t *testing.T) {
	cells, err := parseCells([]string{"0", "4", "8"})
	if err != nil {
		t.Fatalf("parseCells: %v", err)
	}
	if len(cells) != 3 || cells[1] != 4 {
		t.Errorf("cells = %v", cells)
	}

	if _, err := parseCells([]string{"1", "x"}); err == nil {
		t.Error("expected error for non-numeric cell")
	}
}

func TestReplaySkipsIllegalMoves(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	// 4 is played twice and 9 is off the board
	state, err := replay(3, []int{4, 4, 9, 0}, -1, logger)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if state.Len() != 3 || state.ActiveStep() != 2 {
		t.Errorf("len=%d step=%d, want 3 and 2", state.Len(), state.ActiveStep())
	}
	if got := strings.Count(buf.String(), "move ignored"); got != 2 {
		t.Errorf("logged %d ignored moves, want 2", got)
	}
}

func TestReplayStep(t *testing.T) {
	state, err := replay(3, []int{0, 3, 1}, 1, quietLogger())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if state.ActiveStep() != 1 || state.Len() != 4 {
		t.Errorf("step=%d len=%d, want 1 and 4", state.ActiveStep(), state.Len())
	}

	_, err = replay(3, []int{0, 3, 1}, 4, quietLogger())
	if !errors.Is(err, engine.ErrOutOfRange) {
		t.Errorf("err = %v, want ErrOutOfRange", err)
	}
}

func TestReplayInvalidSize(t *testing.T) {
	_, err := replay(0, nil, -1, quietLogger())
	if !errors.Is(err, engine.ErrInvalidConfiguration) {
		t.Errorf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestWriteReplayWin(t *testing.T) {
	state, err := replay(3, []int{0, 3, 1, 4, 2}, -1, quietLogger())
	if err != nil {
		t.Fatal(err)
	}

	out := render(t, state, config.DefaultTicTacToeConfig())
	for _, want := range []string{
		"   1 2 3\n",
		"1  X X X\n",
		"2  O O .\n",
		"3  . . .\n",
		"Winner: X\n",
		"Recent move (row, col): (1, 3)\n",
		"Moves (oldest first):\n",
		"   0. Go to game start\n",
		">  5. Go to move #5 at (1, 3)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteReplayOptions(t *testing.T) {
	state, err := replay(3, []int{4}, -1, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	state, err = state.JumpTo(0)
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultTicTacToeConfig()
	cfg.Marks.PlayerA = "A"
	cfg.Display.ShowCoordinates = false
	cfg.Display.MoveOrder = config.OrderDescending

	out := render(t, state, cfg)
	if !strings.HasPrefix(out, " . . .\n") {
		t.Errorf("board should start without coordinates:\n%s", out)
	}
	if !strings.Contains(out, "Next player: A") {
		t.Errorf("status should use configured mark:\n%s", out)
	}
	if !strings.Contains(out, "Recent move (row, col): \n") {
		t.Errorf("recent move should be empty at game start:\n%s", out)
	}
	if strings.Index(out, "#1 at (2, 2)") > strings.Index(out, "Go to game start") {
		t.Errorf("descending order should list the latest move first:\n%s", out)
	}
	if !strings.Contains(out, ">  0. Go to game start") {
		t.Errorf("step 0 should be marked active:\n%s", out)
	}
}
