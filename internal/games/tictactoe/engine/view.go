package engine

import "fmt"

// StatusKind classifies the active board.
type StatusKind int

const (
	StatusInProgress StatusKind = iota
	StatusWon
	StatusDraw
)

// Status is the human-facing classification of the active board.
// Mark is the next player while in progress and the winner when won.
type Status struct {
	Kind StatusKind
	Mark Mark
}

// String returns status text using the default mark symbols.
func (st Status) String() string {
	return st.Format(func(m Mark) string { return m.String() })
}

// Format returns status text, rendering marks with symbol.
func (st Status) Format(symbol func(Mark) string) string {
	switch st.Kind {
	case StatusWon:
		return "Winner: " + symbol(st.Mark)
	case StatusDraw:
		return "Draw"
	default:
		return "Next player: " + symbol(st.Mark)
	}
}

// Status classifies the active board.
func (s GameState) Status() Status {
	r := s.Result()
	switch {
	case r.Winner != Empty:
		return Status{Kind: StatusWon, Mark: r.Winner}
	case r.Draw:
		return Status{Kind: StatusDraw}
	default:
		return Status{Kind: StatusInProgress, Mark: s.Next()}
	}
}

// MoveRecord is one entry of the move list. Step 0 has no coordinate.
type MoveRecord struct {
	Step     int
	Coord    Coord
	HasCoord bool
}

// Label returns the move list text for the record.
func (m MoveRecord) Label() string {
	if !m.HasCoord {
		return "Go to game start"
	}
	return fmt.Sprintf("Go to move #%d at (%s)", m.Step, m.Coord)
}

// Moves returns one record per history entry, in history order.
// It panics with ErrInvariantViolation on a corrupt history.
func (s GameState) Moves() []MoveRecord {
	moves := make([]MoveRecord, len(s.history))
	for step := range s.history {
		moves[step] = MoveRecord{Step: step}
		if step == 0 {
			continue
		}
		c, err := s.moveAt(step)
		if err != nil {
			panic(err)
		}
		moves[step].Coord = c
		moves[step].HasCoord = true
	}
	return moves
}

// View is a read-only rendition of the game for a renderer.
type View struct {
	Board      Board
	Highlight  Line
	Status     Status
	LastMove   Coord
	HasLast    bool
	Moves      []MoveRecord
	ActiveStep int
	Steps      int
}

// Highlighted reports whether index should be emphasized.
func (v View) Highlighted(index int) bool {
	return v.Highlight.Contains(index)
}

// View collects everything a renderer needs from the active step.
func (s GameState) View() View {
	r := s.Result()
	last, ok := s.LastMove()

	return View{
		Board:      s.Active(),
		Highlight:  r.Line,
		Status:     s.Status(),
		LastMove:   last,
		HasLast:    ok,
		Moves:      s.Moves(),
		ActiveStep: s.activeStep,
		Steps:      len(s.history),
	}
}
