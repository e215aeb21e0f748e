package tictactoe

import "github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe/engine"

// Snapshot captures the complete game state for testing and replay.
type Snapshot struct {
	Size       int
	Board      string // Rows of mark symbols, see engine.Board.String
	Cursor     int
	Step       int
	Steps      int
	Status     engine.StatusKind
	Winner     engine.Mark
	Line       engine.Line
	Descending bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	result := g.state.Result()

	return Snapshot{
		Size:       g.size,
		Board:      g.state.Active().String(),
		Cursor:     g.cursor,
		Step:       g.state.ActiveStep(),
		Steps:      g.state.Len(),
		Status:     g.state.Status().Kind,
		Winner:     result.Winner,
		Line:       result.Line,
		Descending: g.descending,
	}
}
