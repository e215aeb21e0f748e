package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int // Screen width in characters
	ScreenH   int // Screen height in characters
	BoardSize int // Board dimension N for an N x N grid

	// Symbols for the two players. Empty strings fall back to the game's defaults.
	SymbolA string
	SymbolB string

	HighlightWin    bool
	ShowCoordinates bool
	Descending      bool // Newest move first in the move list
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:         80,
		ScreenH:         24,
		BoardSize:       3,
		SymbolA:         "X",
		SymbolB:         "O",
		HighlightWin:    true,
		ShowCoordinates: true,
	}
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Status   string // Human-readable status line
	GameOver bool   // Whether the active position is won or drawn
	Step     int    // Active history step
	Steps    int    // Number of history entries
	LastMove string // "row, col" of the move shown, empty at the start
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State GameState

	// Changed is true when the input altered the game (a move or a jump).
	Changed bool

	// Placed is true when the input tried to place a mark on a board cell,
	// whether or not the move was legal.
	Placed bool
}
