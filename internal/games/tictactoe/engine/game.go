package engine

import "fmt"

// HistoryEntry wraps one board snapshot of the game history.
type HistoryEntry struct {
	Board Board
}

// GameState is the canonical state of one game: the move history, the step
// currently displayed and acted upon, and the fixed board size.
//
// GameState is a value. ApplyMove and JumpTo return a new state and never
// modify the receiver or any history it shares.
type GameState struct {
	history    []HistoryEntry
	activeStep int
	size       int
}

// MaxSize is the largest supported board dimension.
const MaxSize = 64

// New creates a game on a size x size board with PlayerA to move.
// A size outside [1, MaxSize] returns ErrInvalidConfiguration.
func New(size int) (GameState, error) {
	if err := ValidateSize(size); err != nil {
		return GameState{}, err
	}

	return GameState{
		history:    []HistoryEntry{{Board: newBoard(size)}},
		activeStep: 0,
		size:       size,
	}, nil
}

// ValidateSize reports whether size is a usable board dimension.
// Failures wrap ErrInvalidConfiguration.
func ValidateSize(size int) error {
	if size < 1 || size > MaxSize {
		return fmt.Errorf("%w: board size must be between 1 and %d, got %d", ErrInvalidConfiguration, MaxSize, size)
	}
	return nil
}

// Size returns the board dimension N.
func (s GameState) Size() int {
	return s.size
}

// ActiveStep returns the history index currently displayed.
func (s GameState) ActiveStep() int {
	return s.activeStep
}

// Len returns the number of history entries.
func (s GameState) Len() int {
	return len(s.history)
}

// Active returns the board at the active step.
func (s GameState) Active() Board {
	return s.history[s.activeStep].Board
}

// Entry returns the history entry at step.
func (s GameState) Entry(step int) (HistoryEntry, error) {
	if step < 0 || step >= len(s.history) {
		return HistoryEntry{}, fmt.Errorf("%w: step %d not in [0, %d)", ErrOutOfRange, step, len(s.history))
	}
	return s.history[step], nil
}

// Next returns the mark that moves next, derived from the active step's parity.
func (s GameState) Next() Mark {
	if s.activeStep%2 == 0 {
		return PlayerA
	}
	return PlayerB
}

// ApplyMove places the next player's mark at cell on the active board.
//
// Illegal moves are ignored: if the active board already has a winner, or the
// cell is occupied or off the board, the receiver is returned unchanged.
// Otherwise every entry after the active step is discarded and the new board
// becomes the last, active entry.
func (s GameState) ApplyMove(cell int) GameState {
	current := s.Active()
	if cell < 0 || cell >= current.Len() {
		return s
	}
	if FindWinningLine(GenerateLines(s.size), current) != nil {
		return s
	}
	if current.At(cell) != Empty {
		return s
	}

	history := make([]HistoryEntry, s.activeStep+1, s.activeStep+2)
	copy(history, s.history[:s.activeStep+1])
	history = append(history, HistoryEntry{Board: current.with(cell, s.Next())})

	return GameState{
		history:    history,
		activeStep: len(history) - 1,
		size:       s.size,
	}
}

// JumpTo makes step the active step. The history is kept intact.
// A step outside [0, Len()) returns ErrOutOfRange and the receiver unchanged.
func (s GameState) JumpTo(step int) (GameState, error) {
	if step < 0 || step >= len(s.history) {
		return s, fmt.Errorf("%w: step %d not in [0, %d)", ErrOutOfRange, step, len(s.history))
	}

	next := s
	next.activeStep = step
	return next, nil
}

// Result is the outcome evaluated on the active board.
// Winner is Empty and Line nil when nobody has won.
type Result struct {
	Winner Mark
	Line   Line
	Draw   bool
}

// Decided reports whether the game is won or drawn.
func (r Result) Decided() bool {
	return r.Winner != Empty || r.Draw
}

// Result evaluates the active board.
func (s GameState) Result() Result {
	board := s.Active()
	line := FindWinningLine(GenerateLines(s.size), board)
	if line != nil {
		return Result{Winner: board.At(line[0]), Line: line}
	}
	return Result{Draw: IsBoardFull(board)}
}

// LastMove returns the 1-indexed coordinate of the move that produced the
// active board, and false at step 0.
// It panics with ErrInvariantViolation if the active entry does not differ
// from its predecessor by exactly one newly filled cell.
func (s GameState) LastMove() (Coord, bool) {
	if s.activeStep == 0 {
		return Coord{}, false
	}
	c, err := s.moveAt(s.activeStep)
	if err != nil {
		panic(err)
	}
	return c, true
}

// moveAt finds the single cell that went from Empty to a mark between
// entries step-1 and step.
func (s GameState) moveAt(step int) (Coord, error) {
	past := s.history[step-1].Board
	current := s.history[step].Board
	if past.Len() != current.Len() {
		return Coord{}, fmt.Errorf("%w: entry %d has %d cells, entry %d has %d",
			ErrInvariantViolation, step-1, past.Len(), step, current.Len())
	}

	found := -1
	for i := 0; i < current.Len(); i++ {
		if past.At(i) == current.At(i) {
			continue
		}
		if past.At(i) != Empty || found >= 0 {
			return Coord{}, fmt.Errorf("%w: entry %d is not a single move after entry %d",
				ErrInvariantViolation, step, step-1)
		}
		found = i
	}
	if found < 0 {
		return Coord{}, fmt.Errorf("%w: entry %d is identical to entry %d", ErrInvariantViolation, step, step-1)
	}
	return current.CoordOf(found), nil
}

// Validate checks the whole history: entry 0 is empty, every board has N²
// cells, and each later entry adds exactly one mark of the player whose
// turn it was.
func (s GameState) Validate() error {
	if len(s.history) == 0 {
		return fmt.Errorf("%w: empty history", ErrInvariantViolation)
	}
	if s.activeStep < 0 || s.activeStep >= len(s.history) {
		return fmt.Errorf("%w: active step %d outside history of %d", ErrInvariantViolation, s.activeStep, len(s.history))
	}

	for step, entry := range s.history {
		if entry.Board.Len() != s.size*s.size {
			return fmt.Errorf("%w: entry %d has %d cells, want %d",
				ErrInvariantViolation, step, entry.Board.Len(), s.size*s.size)
		}
		if step == 0 {
			if entry.Board.Empties() != entry.Board.Len() {
				return fmt.Errorf("%w: initial entry is not empty", ErrInvariantViolation)
			}
			continue
		}
		c, err := s.moveAt(step)
		if err != nil {
			return err
		}
		if got, want := entry.Board.AtCoord(c), markForStep(step); got != want {
			return fmt.Errorf("%w: entry %d placed %s, want %s", ErrInvariantViolation, step, got, want)
		}
	}
	return nil
}
