package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	_ "github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

func TestMenuListsRegisteredGames(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	view := m.View()
	for _, want := range []string{"Tic-Tac-Toe", "Tic-Tac-Toe (4x4 classic)", "(any size)"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu missing %q", want)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting should quit the menu program")
	}

	sel := next.(MenuModel).Selected()
	if sel == nil || sel.GameID != "tictactoe-4x4" || sel.FixedSize != 4 {
		t.Errorf("Selected() = %+v, want tictactoe-4x4", sel)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	next, _ := m.Update(runes("q"))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}
