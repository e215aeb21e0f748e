package tictactoe

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe/engine"
)

// Layout constants, in screen cells.
const (
	cellW      = 3 // " X "
	boardLeft  = 4 // Room for row labels
	boardTop   = 3 // Title, blank, column labels
	panelGap   = 4
	panelWidth = 34
)

// boardRect returns the screen area covered by the grid, separators included.
func (g *Game) boardRect() core.Rect {
	return core.NewRect(boardLeft, boardTop, g.size*(cellW+1)-1, g.size*2-1)
}

// minScreen returns the smallest screen the layout fits in.
func (g *Game) minScreen() (int, int) {
	r := g.boardRect()
	return r.Right() + panelGap + panelWidth, r.Bottom() + 1
}

// tooSmall reports whether the screen cannot hold the board and panel.
func (g *Game) tooSmall() bool {
	w, h := g.minScreen()
	return g.screenW < w || g.screenH < h
}

// CellAt maps a screen position to a board cell index.
// Positions on grid lines or outside the board report false.
func (g *Game) CellAt(x, y int) (int, bool) {
	r := g.boardRect()
	if g.size == 0 || !r.Contains(x, y) {
		return 0, false
	}
	dx, dy := x-r.X, y-r.Y
	if dx%(cellW+1) == cellW || dy%2 == 1 {
		return 0, false
	}
	return (dy/2)*g.size + dx/(cellW+1), true
}

// Render draws the board, status panel and move list.
func (g *Game) Render(dst *core.Screen) {
	if g.size == 0 {
		return
	}
	if g.tooSmall() {
		w, h := g.minScreen()
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(mid, fmt.Sprintf("Need at least %dx%d", w, h), core.ColorGray)
		return
	}

	view := g.state.View()

	dst.DrawText(boardLeft, 0, g.Title())
	g.renderBoard(dst, view)
	g.renderPanel(dst, view)
}

// renderBoard draws the grid, marks, cursor and highlighted line.
func (g *Game) renderBoard(dst *core.Screen, view engine.View) {
	r := g.boardRect()

	if g.showCoords {
		for c := 0; c < g.size; c++ {
			dst.DrawTextColored(r.X+c*(cellW+1), r.Y-1, fmt.Sprintf("%2d", c+1), core.ColorGray)
		}
		for row := 0; row < g.size; row++ {
			dst.DrawTextColored(0, r.Y+row*2, fmt.Sprintf("%2d", row+1), core.ColorGray)
		}
	}

	// Grid lines
	for row := 1; row < g.size; row++ {
		dst.DrawHLine(r.X, r.Y+row*2-1, r.W, '─', core.ColorGray)
	}
	for col := 1; col < g.size; col++ {
		x := r.X + col*(cellW+1) - 1
		dst.DrawVLine(x, r.Y, r.H, '│', core.ColorGray)
		for row := 1; row < g.size; row++ {
			dst.SetColored(x, r.Y+row*2-1, '┼', core.ColorGray)
		}
	}

	for i := 0; i < view.Board.Len(); i++ {
		x := r.X + (i%g.size)*(cellW+1)
		y := r.Y + (i/g.size)*2
		mark := view.Board.At(i)

		color := markColor(mark)
		if g.highlight && view.Highlighted(i) {
			color = core.ColorBrightGreen
		}
		g.drawSymbol(dst, x+1, y, mark, color)

		if i == g.cursor {
			dst.SetColored(x, y, '[', core.ColorBrightYellow)
			dst.SetColored(x+cellW-1, y, ']', core.ColorBrightYellow)
		}
	}
}

// drawSymbol writes the mark symbol centered on x, clipped to one rune.
func (g *Game) drawSymbol(dst *core.Screen, x, y int, mark engine.Mark, color core.Color) {
	r, _ := utf8.DecodeRuneInString(g.symbol(mark))
	dst.SetColored(x, y, r, color)
}

// renderPanel draws the status, the recent move and the move list.
func (g *Game) renderPanel(dst *core.Screen, view engine.View) {
	x := g.boardRect().Right() + panelGap
	y := boardTop - 1

	dst.DrawTextColored(x, y, view.Status.Format(g.symbol), statusColor(view.Status))
	y++

	recent := ""
	if view.HasLast {
		recent = "(" + view.LastMove.String() + ")"
	}
	dst.DrawText(x, y, "Recent move (row, col): "+recent)
	y += 2

	order := "oldest first"
	if g.descending {
		order = "newest first"
	}
	dst.DrawTextColored(x, y, fmt.Sprintf("Moves (%s):", order), core.ColorGray)
	y++

	moves := view.Moves
	if g.descending {
		moves = reversed(moves)
	}

	rows := dst.Height() - y
	if rows <= 0 {
		return
	}
	start := 0
	for i, m := range moves {
		if m.Step == view.ActiveStep {
			start = core.Clamp(i-rows/2, 0, max(0, len(moves)-rows))
			break
		}
	}

	for i := start; i < len(moves) && i < start+rows; i++ {
		m := moves[i]
		line := fmt.Sprintf("  %2d. %s", m.Step, m.Label())
		color := core.ColorDefault
		if m.Step == view.ActiveStep {
			line = fmt.Sprintf("> %2d. %s", m.Step, m.Label())
			color = core.ColorBrightWhite
		}
		dst.DrawTextColored(x, y, line, color)
		y++
	}
}

func markColor(m engine.Mark) core.Color {
	switch m {
	case engine.PlayerA:
		return core.ColorCyan
	case engine.PlayerB:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

func statusColor(st engine.Status) core.Color {
	switch st.Kind {
	case engine.StatusWon:
		return core.ColorBrightGreen
	case engine.StatusDraw:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

func reversed(moves []engine.MoveRecord) []engine.MoveRecord {
	out := make([]engine.MoveRecord, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m
	}
	return out
}
