package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// LoadTicTacToe loads the game configuration and applies environment overrides.
// Search order: customPath -> ~/.tictactoe/configs/tictactoe.yaml -> ./configs/tictactoe.yaml -> embedded default
//
// The result is not validated; callers apply flag overrides first and then call Validate.
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	cfg, err := loadTicTacToeFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	return cfg, nil
}

func loadTicTacToeFile(customPath string) (TicTacToeConfig, error) {
	cfg := DefaultTicTacToeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tictactoe.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultTicTacToeConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tictactoe.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultTicTacToeConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTicTacToeYAML, &cfg); err != nil {
		return DefaultTicTacToeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tictactoe", "configs", filename)
}
