// Package engine implements the generalized tic-tac-toe state machine:
// immutable board snapshots, linear move history with time travel, and
// win/draw detection for any board size.
//
// The package has no dependencies on the terminal or any other collaborator.
package engine

// Mark is the value occupying a cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerA
	PlayerB
)

// String returns the default symbol for the mark.
func (m Mark) String() string {
	switch m {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	default:
		return "."
	}
}

// markForStep returns the mark placed by the move that produced history entry step.
// Odd entries are PlayerA's moves.
func markForStep(step int) Mark {
	if step%2 == 1 {
		return PlayerA
	}
	return PlayerB
}
