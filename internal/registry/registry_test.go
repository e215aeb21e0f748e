package registry

import (
	"testing"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

type stubGame struct {
	size int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) FixedSize() int { return g.size }
func (g *stubGame) Reset(core.RuntimeConfig) error { return nil }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub-7", func() Game { return &stubGame{size: 7} })

	if !Exists("zz-stub-7") {
		t.Fatal("registered game should exist")
	}

	info, ok := Info("zz-stub-7")
	if !ok || info.Title != "Stub" || info.FixedSize != 7 {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	g, err := Create("zz-stub-7")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.FixedSize() != 7 {
		t.Errorf("FixedSize() = %d, expected 7", g.FixedSize())
	}

	list := List()
	if len(list) == 0 || list[len(list)-1].ID != "zz-stub-7" {
		t.Errorf("List() should be sorted with zz-stub-7 last, got %+v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() should fail for an unknown game")
	}
	if Exists("does-not-exist") {
		t.Error("Exists() should be false for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-stub-dup", func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-stub-dup", func() Game { return &stubGame{} })
}
