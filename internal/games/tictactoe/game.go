// Package tictactoe adapts the generalized tic-tac-toe engine to the
// platform: it turns semantic input actions into engine calls and draws
// the engine's view into a screen buffer.
package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe/engine"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

// ClassicSize is the board size of the classic 4x4 variant.
const ClassicSize = 4

// Game is the playable tic-tac-toe game with history navigation.
type Game struct {
	fixedSize int
	size      int
	state     engine.GameState
	cursor    int

	symbols    [3]string // Indexed by engine.Mark
	highlight  bool
	showCoords bool
	descending bool

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a game whose board size comes from the runtime config.
func New() *Game {
	return &Game{}
}

// NewClassic creates a game fixed to the 4x4 board.
func NewClassic() *Game {
	return &Game{fixedSize: ClassicSize}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
	registry.Register("tictactoe-4x4", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.fixedSize > 0 {
		return fmt.Sprintf("tictactoe-%dx%d", g.fixedSize, g.fixedSize)
	}
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.fixedSize > 0 {
		return fmt.Sprintf("Tic-Tac-Toe (%dx%d classic)", g.fixedSize, g.fixedSize)
	}
	return "Tic-Tac-Toe"
}

// FixedSize returns the forced board size, or 0.
func (g *Game) FixedSize() int {
	return g.fixedSize
}

// Reset starts a new game from cfg. It returns engine.ErrInvalidConfiguration
// when the board size is not positive.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	size := cfg.BoardSize
	if g.fixedSize > 0 {
		size = g.fixedSize
	}

	state, err := engine.New(size)
	if err != nil {
		return fmt.Errorf("tictactoe: %w", err)
	}

	g.size = size
	g.state = state
	g.cursor = centerCell(size)
	g.symbols = [3]string{" ", symbolOr(cfg.SymbolA, "X"), symbolOr(cfg.SymbolB, "O")}
	g.highlight = cfg.HighlightWin
	g.showCoords = cfg.ShowCoordinates
	g.descending = cfg.Descending
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	return nil
}

// Resize updates the screen dimensions without touching the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	before := g.state
	placed := false

	if in.Pointer.Clicked {
		if cell, ok := g.CellAt(in.Pointer.X, in.Pointer.Y); ok {
			g.cursor = cell
			g.state = g.state.ApplyMove(cell)
			placed = true
		}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	switch {
	case in.Has(core.ActionPlace):
		g.state = g.state.ApplyMove(g.cursor)
		placed = true
	case in.Has(core.ActionStepBack):
		g.jump(g.state.ActiveStep() - 1)
	case in.Has(core.ActionStepForward):
		g.jump(g.state.ActiveStep() + 1)
	case in.Has(core.ActionFirstStep):
		g.jump(0)
	case in.Has(core.ActionLastStep):
		g.jump(g.state.Len() - 1)
	case in.Has(core.ActionRestart):
		g.restart()
	}

	if in.Has(core.ActionToggleOrder) {
		g.descending = !g.descending
	}

	changed := g.state.ActiveStep() != before.ActiveStep() || g.state.Len() != before.Len() ||
		in.Has(core.ActionRestart)
	return core.StepResult{State: g.State(), Changed: changed, Placed: placed}
}

// jump moves to step. Steps outside the history are ignored, which makes
// stepping past either end a no-op.
func (g *Game) jump(step int) {
	if next, err := g.state.JumpTo(step); err == nil {
		g.state = next
	}
}

// restart begins a new game with the same size.
func (g *Game) restart() {
	state, err := engine.New(g.size)
	if err != nil {
		// The size was accepted by Reset.
		panic(err)
	}
	g.state = state
	g.cursor = centerCell(g.size)
}

// moveCursor moves the cursor by (dr, dc), stopping at the board edges.
func (g *Game) moveCursor(dr, dc int) {
	row := core.Clamp(g.cursor/g.size+dr, 0, g.size-1)
	col := core.Clamp(g.cursor%g.size+dc, 0, g.size-1)
	g.cursor = row*g.size + col
}

// Engine returns the current engine state.
func (g *Game) Engine() engine.GameState {
	return g.state
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Status:   g.state.Status().Format(g.symbol),
		GameOver: g.state.Result().Decided(),
		Step:     g.state.ActiveStep(),
		Steps:    g.state.Len(),
	}
	if c, ok := g.state.LastMove(); ok {
		st.LastMove = c.String()
	}
	return st
}

// symbol returns the configured symbol for a mark.
func (g *Game) symbol(m engine.Mark) string {
	return g.symbols[m]
}

func centerCell(size int) int {
	return (size/2)*size + size/2
}

func symbolOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
