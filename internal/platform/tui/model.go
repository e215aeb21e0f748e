package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

// resizer is implemented by games that can follow terminal resizes
// without restarting.
type resizer interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model for playing a game.
// There is no tick loop: the game only advances on input.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger
	matchID   string
	gameState core.GameState
	quitting  bool
}

// NewModel resets game with cfg and wraps it in a Bubble Tea model.
// cfg.ScreenH is the full terminal height; one row is kept for the help line.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 1)
	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		logger:    logger,
		matchID:   uuid.NewString(),
		gameState: game.State(),
	}
	m.logger.Info("game started", "match", m.matchID, "game", game.ID(), "size", m.boardSize())
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		m.logger.Info("game closed", "match", m.matchID, "status", m.gameState.Status)
		return m, tea.Quit
	}
	if len(frame.Actions) == 0 {
		return m, nil
	}

	m.step(frame)
	return m, nil
}

// handleMouse places a mark on a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	frame := core.NewInputFrame()
	frame.Click(msg.X, msg.Y)
	m.step(frame)
	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	}
	return m, nil
}

// step feeds one input frame to the game and logs what happened.
func (m *Model) step(frame core.InputFrame) {
	before := m.gameState
	result := m.game.Step(frame)
	m.gameState = result.State

	placing := result.Placed
	switch {
	case frame.Has(core.ActionRestart):
		m.matchID = uuid.NewString()
		m.logger.Info("game started", "match", m.matchID, "game", m.game.ID(), "size", m.boardSize())
		return
	case result.Changed && placing:
		m.logger.Debug("move", "match", m.matchID, "step", m.gameState.Step, "at", m.gameState.LastMove)
	case result.Changed:
		m.logger.Debug("jump", "match", m.matchID, "step", m.gameState.Step, "of", m.gameState.Steps-1)
	case placing:
		m.logger.Debug("move ignored", "match", m.matchID, "step", m.gameState.Step)
	}

	if placing && result.Changed && m.gameState.GameOver && !before.GameOver {
		m.logger.Info("game over", "match", m.matchID, "result", m.gameState.Status, "moves", m.gameState.Step)
	}
}

func (m Model) boardSize() int {
	if size := m.game.FixedSize(); size > 0 {
		return size
	}
	return m.config.BoardSize
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".tictactoe", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last game summary seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks place marks
	)

	_, err = p.Run()
	return err
}
