package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, 'X', ColorBrightGreen)

	got := s.GetCell(3, 2)
	if got.Rune != 'X' || got.Color != ColorBrightGreen {
		t.Errorf("GetCell(3, 2) = %+v, expected X in bright green", got)
	}

	// Out of bounds writes are ignored and reads return blank
	s.SetColored(-1, 0, 'Z', ColorRed)
	s.SetColored(10, 0, 'Z', ColorRed)
	s.SetColored(0, 5, 'Z', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if strings.ContainsRune(s.String(), 'Z') {
		t.Error("out of bounds Set should not write")
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		text     string
		expected string
	}{
		{"ascii", 0, "hello", "hello     "},
		{"offset", 2, "abc", "  abc     "},
		{"clipped", 7, "abcdef", "       abc"},
		{"box drawing runes", 1, "─┼─", " ─┼─      "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawText(tc.x, 0, tc.text)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorYellow)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(4, 0).Color != ColorYellow {
		t.Error("centered text should keep its color")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawHLine(0, 1, 5, '─', ColorGray)
	s.DrawVLine(2, 0, 3, '│', ColorGray)

	expected := "  │  \n──│──\n  │  "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResizeAndClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("Resize: got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize should leave a blank screen")
	}

	s.DrawText(0, 0, "x")
	s.Clear()
	if s.Get(0, 0) != ' ' {
		t.Error("Clear should blank the screen")
	}
}
