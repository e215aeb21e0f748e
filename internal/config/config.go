// Package config provides YAML-based game configuration loading
// with environment overrides.
package config

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe/engine"
)

// Move list orders.
const (
	OrderAscending  = "ascending"
	OrderDescending = "descending"
)

// TicTacToeConfig contains all configuration for the game.
type TicTacToeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Marks   MarksConfig   `yaml:"marks"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size int `yaml:"size" env:"TICTACTOE_BOARD_SIZE"`
}

// MarksConfig defines the symbols shown for each player.
type MarksConfig struct {
	PlayerA string `yaml:"player_a" env:"TICTACTOE_MARK_A"`
	PlayerB string `yaml:"player_b" env:"TICTACTOE_MARK_B"`
}

// DisplayConfig defines presentation options.
type DisplayConfig struct {
	HighlightWin    bool   `yaml:"highlight_win" env:"TICTACTOE_HIGHLIGHT_WIN"`
	ShowCoordinates bool   `yaml:"show_coordinates" env:"TICTACTOE_SHOW_COORDINATES"`
	MoveOrder       string `yaml:"move_order" env:"TICTACTOE_MOVE_ORDER"` // "ascending" or "descending"
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level" env:"TICTACTOE_LOG_LEVEL"`
	File  string `yaml:"file" env:"TICTACTOE_LOG_FILE"` // Empty disables logging while playing
}

// Validate checks the configuration. Failures wrap engine.ErrInvalidConfiguration.
func (c TicTacToeConfig) Validate() error {
	if err := engine.ValidateSize(c.Board.Size); err != nil {
		return err
	}

	marks := []struct{ name, value string }{
		{"player_a", c.Marks.PlayerA},
		{"player_b", c.Marks.PlayerB},
	}
	for _, m := range marks {
		r, n := utf8.DecodeRuneInString(m.value)
		if n == 0 || n != len(m.value) || unicode.IsSpace(r) {
			return fmt.Errorf("%w: mark %s must be a single visible character, got %q", engine.ErrInvalidConfiguration, m.name, m.value)
		}
	}
	if c.Marks.PlayerA == c.Marks.PlayerB {
		return fmt.Errorf("%w: both players use mark %q", engine.ErrInvalidConfiguration, c.Marks.PlayerA)
	}

	switch c.Display.MoveOrder {
	case "", OrderAscending, OrderDescending:
	default:
		return fmt.Errorf("%w: unknown move order %q", engine.ErrInvalidConfiguration, c.Display.MoveOrder)
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", engine.ErrInvalidConfiguration, err)
		}
	}
	return nil
}

// Runtime converts the configuration into the runtime config passed to games.
func (c TicTacToeConfig) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:         screenW,
		ScreenH:         screenH,
		BoardSize:       c.Board.Size,
		SymbolA:         c.Marks.PlayerA,
		SymbolB:         c.Marks.PlayerB,
		HighlightWin:    c.Display.HighlightWin,
		ShowCoordinates: c.Display.ShowCoordinates,
		Descending:      c.Display.MoveOrder == OrderDescending,
	}
}
