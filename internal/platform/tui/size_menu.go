package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe/engine"
)

// sizePresets are the board sizes offered without typing.
var sizePresets = []int{3, 4, 5, 6}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// SizeModel lets users choose the board size, either from presets or typed in.
type SizeModel struct {
	cursor    int // Index into sizePresets; len(sizePresets) is "Custom"
	inCustom  bool
	input     textinput.Model
	errMsg    string
	width     int
	height    int
	keyMapper *KeyMapper
	size      int
	choosing  bool
	quitting  bool
}

// NewSizeModel creates a size selector with the cursor on current when it is a preset.
func NewSizeModel(width, height, current int) SizeModel {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("1 to %d", engine.MaxSize)
	ti.CharLimit = 4
	ti.Width = 20
	ti.Prompt = "N = "

	cursor := 0
	for i, n := range sizePresets {
		if n == current {
			cursor = i
		}
	}

	return SizeModel{
		cursor:    cursor,
		input:     ti,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SizeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inCustom {
			return m.handleCustomKey(msg)
		}
		return m.handlePresetKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.inCustom {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m SizeModel) handlePresetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(sizePresets) {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor < len(sizePresets) {
			m.size = sizePresets[m.cursor]
			m.choosing = false
			return m, tea.Quit
		}
		m.inCustom = true
		m.errMsg = ""
		return m, m.input.Focus()
	}

	return m, nil
}

func (m SizeModel) handleCustomKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.inCustom = false
		m.errMsg = ""
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		size, err := parseSize(m.input.Value())
		if err != nil {
			// Stay in the prompt until the input is usable
			m.errMsg = err.Error()
			m.input.Reset()
			return m, nil
		}
		m.size = size
		m.choosing = false
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseSize converts typed text to a board size the engine accepts.
func parseSize(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errors.New("enter a number")
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", text)
	}
	if err := engine.ValidateSize(n); err != nil {
		return 0, err
	}
	return n, nil
}

// View renders the size selection.
func (m SizeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B O A R D   S I Z E"), m.width))
	b.WriteString("\n\n")

	if m.inCustom {
		b.WriteString(centerText("Type the board size N for an N x N grid:", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.input.View(), m.width))
		b.WriteString("\n")
		if m.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(centerText(errorStyle.Render(m.errMsg), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText("Enter: Confirm  |  Esc: Back  |  Ctrl+C: Quit", m.width))
		return b.String()
	}

	b.WriteString(centerText("Select board size:", m.width))
	b.WriteString("\n\n")

	for i := 0; i < len(sizePresets)+1; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		label := "Custom size..."
		if i < len(sizePresets) {
			label = fmt.Sprintf("%d x %d", sizePresets[i], sizePresets[i])
		}
		b.WriteString(centerText(cursor+label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen size, or 0 if none was chosen.
func (m SizeModel) Selected() int {
	if m.choosing {
		return 0
	}
	return m.size
}

// IsQuitting returns true if user wants to quit.
func (m SizeModel) IsQuitting() bool {
	return m.quitting
}

// RunSizeSelector asks for a board size. A zero size means the user backed out.
func RunSizeSelector(cfg core.RuntimeConfig) (int, error) {
	p := tea.NewProgram(
		NewSizeModel(cfg.ScreenW, cfg.ScreenH, cfg.BoardSize),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(SizeModel)
	if !ok || m.IsQuitting() {
		return 0, nil
	}
	return m.Selected(), nil
}
