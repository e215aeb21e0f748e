package config

import (
	_ "embed"
)

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultTicTacToeConfig returns the default configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Board: BoardConfig{
			Size: 3,
		},
		Marks: MarksConfig{
			PlayerA: "X",
			PlayerB: "O",
		},
		Display: DisplayConfig{
			HighlightWin:    true,
			ShowCoordinates: true,
			MoveOrder:       OrderAscending,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTicTacToeYAML
}
