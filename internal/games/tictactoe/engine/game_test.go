package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// play creates a game of the given size and applies cells in order.
func play(t *testing.T, size int, cells ...int) GameState {
	t.Helper()

	s, err := New(size)
	require.NoError(t, err)
	for _, c := range cells {
		next := s.ApplyMove(c)
		require.Equal(t, s.Len()+1, next.Len(), "move at %d was ignored", c)
		s = next
	}
	require.NoError(t, s.Validate())
	return s
}

func TestNew(t *testing.T) {
	t.Run("Initial state", func(t *testing.T) {
		// When: a 3x3 game is created
		s, err := New(3)
		require.NoError(t, err)

		// Then: one empty entry, step 0, PlayerA to move
		assert.Equal(t, 3, s.Size())
		assert.Equal(t, 1, s.Len())
		assert.Equal(t, 0, s.ActiveStep())
		assert.Equal(t, PlayerA, s.Next())
		assert.Equal(t, 9, s.Active().Empties())
		assert.Equal(t, Status{Kind: StatusInProgress, Mark: PlayerA}, s.Status())
	})

	t.Run("Single cell board is valid", func(t *testing.T) {
		s, err := New(1)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Active().Len())
	})

	t.Run("Invalid sizes", func(t *testing.T) {
		for _, size := range []int{0, -1, -10, MaxSize + 1, 100000, 3037000500} {
			_, err := New(size)
			assert.ErrorIs(t, err, ErrInvalidConfiguration, "size %d", size)
		}
	})

	t.Run("Largest size is valid", func(t *testing.T) {
		// When: a game of the maximum size is created
		s, err := New(MaxSize)

		// Then: the board holds MaxSize² empty cells
		require.NoError(t, err)
		assert.Equal(t, MaxSize*MaxSize, s.Active().Empties())
	})
}

func TestGameState_ApplyMove(t *testing.T) {
	t.Run("Alternates players", func(t *testing.T) {
		// Given: a new game
		s := play(t, 3)

		// When: two moves are applied
		s = s.ApplyMove(4)
		s = s.ApplyMove(0)

		// Then: PlayerA holds 4, PlayerB holds 0, PlayerA is next
		assert.Equal(t, PlayerA, s.Active().At(4))
		assert.Equal(t, PlayerB, s.Active().At(0))
		assert.Equal(t, PlayerA, s.Next())
		assert.Equal(t, 2, s.ActiveStep())
	})

	t.Run("Occupied cell is a no-op", func(t *testing.T) {
		// Given: PlayerA played the centre
		s := play(t, 3, 4)

		// When: PlayerB clicks the same cell
		next := s.ApplyMove(4)

		// Then: the state is unchanged
		assert.Equal(t, s, next)
	})

	t.Run("Off-board cell is a no-op", func(t *testing.T) {
		s := play(t, 3, 4)

		assert.Equal(t, s, s.ApplyMove(9))
		assert.Equal(t, s, s.ApplyMove(-1))
	})

	t.Run("Move after win is a no-op", func(t *testing.T) {
		// Given: PlayerA completed the top row
		s := play(t, 3, 0, 3, 1, 4, 2)
		require.Equal(t, PlayerA, s.Result().Winner)

		// When: PlayerB tries to continue
		next := s.ApplyMove(8)

		// Then: nothing changes
		assert.Equal(t, s, next)
	})

	t.Run("Previous states are not modified", func(t *testing.T) {
		// Given: a state captured before a move
		before := play(t, 3, 0, 1)
		snapshot := before.Active().Cells()

		// When: moves are applied from it twice, diverging
		a := before.ApplyMove(2)
		b := before.ApplyMove(8)

		// Then: the original and both branches stay independent
		assert.Equal(t, snapshot, before.Active().Cells())
		assert.Equal(t, 2, before.ActiveStep())
		assert.Equal(t, PlayerA, a.Active().At(2))
		assert.Equal(t, Empty, a.Active().At(8))
		assert.Equal(t, PlayerA, b.Active().At(8))
		assert.Equal(t, Empty, b.Active().At(2))
	})

	t.Run("Move after jump truncates later history", func(t *testing.T) {
		// Given: four moves played, then a jump back to step 1
		s := play(t, 3, 0, 1, 2, 3)
		s, err := s.JumpTo(1)
		require.NoError(t, err)
		require.Equal(t, 5, s.Len())

		// When: a new move is made
		s = s.ApplyMove(8)

		// Then: history length is step+2 and PlayerB made the move
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, 2, s.ActiveStep())
		assert.Equal(t, PlayerB, s.Active().At(8))
		assert.Equal(t, Empty, s.Active().At(1))
		assert.NoError(t, s.Validate())
	})

	t.Run("Jumping back out of a won position allows play", func(t *testing.T) {
		s := play(t, 3, 0, 3, 1, 4, 2)
		s, err := s.JumpTo(4)
		require.NoError(t, err)

		next := s.ApplyMove(8)
		assert.Equal(t, 6, next.Len())
		assert.Equal(t, Empty, next.Result().Winner)
	})
}

func TestGameState_JumpTo(t *testing.T) {
	t.Run("Recomputes turn from parity", func(t *testing.T) {
		s := play(t, 3, 0, 1, 2)

		for step, want := range []Mark{PlayerA, PlayerB, PlayerA, PlayerB} {
			j, err := s.JumpTo(step)
			require.NoError(t, err)
			assert.Equal(t, want, j.Next(), "step %d", step)
			assert.Equal(t, step, j.ActiveStep())
			assert.Equal(t, 4, j.Len(), "history is kept")
		}
	})

	t.Run("Out of range leaves state unmodified", func(t *testing.T) {
		// Given: a game with three entries at step 2
		s := play(t, 3, 0, 1)

		for _, step := range []int{-1, 3, 100} {
			// When: jumping outside the history
			next, err := s.JumpTo(step)

			// Then: OutOfRange and an identical state
			assert.ErrorIs(t, err, ErrOutOfRange, "step %d", step)
			assert.Equal(t, s, next)
			assert.Equal(t, 2, s.ActiveStep())
		}
	})
}

func TestGameState_Entry(t *testing.T) {
	t.Run("Returns every snapshot", func(t *testing.T) {
		// Given: two moves played and a jump back to the start
		s := play(t, 3, 4, 0)
		s, err := s.JumpTo(0)
		require.NoError(t, err)

		// Then: later entries stay reachable
		first, err := s.Entry(0)
		require.NoError(t, err)
		assert.Equal(t, 9, first.Board.Empties())

		last, err := s.Entry(2)
		require.NoError(t, err)
		assert.Equal(t, PlayerA, last.Board.At(4))
		assert.Equal(t, PlayerB, last.Board.At(0))
	})

	t.Run("Out of range", func(t *testing.T) {
		s := play(t, 3, 4)
		for _, step := range []int{-1, 2} {
			_, err := s.Entry(step)
			assert.ErrorIs(t, err, ErrOutOfRange, "step %d", step)
		}
	})
}

func TestGameState_Result(t *testing.T) {
	t.Run("Left column on 4x4", func(t *testing.T) {
		// Given: A plays 0, 4, 8, 12 while B plays 1, 5, 9
		s := play(t, 4, 0, 1, 4, 5, 8, 9, 12)

		// When: evaluating the result
		r := s.Result()

		// Then: PlayerA wins on the left column
		assert.Equal(t, PlayerA, r.Winner)
		assert.Equal(t, Line{0, 4, 8, 12}, r.Line)
		assert.False(t, r.Draw)
		assert.Equal(t, Status{Kind: StatusWon, Mark: PlayerA}, s.Status())
	})

	t.Run("Single cell board is an instant win", func(t *testing.T) {
		s := play(t, 1, 0)

		r := s.Result()
		assert.Equal(t, PlayerA, r.Winner)
		assert.Equal(t, Line{0}, r.Line)
		assert.False(t, r.Draw)
	})

	t.Run("Draw on 3x3", func(t *testing.T) {
		// Given: XOX / XOO / OXX
		s := play(t, 3, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		r := s.Result()
		assert.True(t, r.Draw)
		assert.Equal(t, Empty, r.Winner)
		assert.Nil(t, r.Line)
		assert.Equal(t, StatusDraw, s.Status().Kind)

		// Then: no further moves are possible
		assert.Equal(t, s, s.ApplyMove(0))
	})

	t.Run("Draw on 4x4", func(t *testing.T) {
		s := play(t, 4, 0, 2, 1, 3, 6, 4, 7, 5, 8, 10, 9, 11, 14, 12, 15, 13)

		r := s.Result()
		assert.True(t, r.Draw)
		assert.Equal(t, Empty, r.Winner)
	})

	t.Run("Win on last cell is not a draw", func(t *testing.T) {
		// Given: the ninth move completes the left column
		s := play(t, 3, 0, 1, 2, 4, 3, 5, 7, 8, 6)

		r := s.Result()
		assert.Equal(t, PlayerA, r.Winner)
		assert.Equal(t, Line{0, 3, 6}, r.Line)
		assert.False(t, r.Draw)
	})

	t.Run("Idempotent", func(t *testing.T) {
		s := play(t, 3, 0, 3, 1, 4, 2)

		assert.Equal(t, s.Result(), s.Result())
	})

	t.Run("Result follows the active step", func(t *testing.T) {
		s := play(t, 3, 0, 3, 1, 4, 2)
		earlier, err := s.JumpTo(3)
		require.NoError(t, err)

		assert.False(t, earlier.Result().Decided())
		assert.Equal(t, StatusInProgress, earlier.Status().Kind)
		assert.True(t, s.Result().Decided())
	})
}

func TestGameState_LastMove(t *testing.T) {
	t.Run("None at step 0", func(t *testing.T) {
		s := play(t, 3)

		_, ok := s.LastMove()
		assert.False(t, ok)
	})

	t.Run("Coordinates use the configured size", func(t *testing.T) {
		// Given: a 5x5 game where cell 7 is played
		s := play(t, 5, 7)

		c, ok := s.LastMove()
		require.True(t, ok)
		assert.Equal(t, Coord{Row: 2, Col: 3}, c)
	})

	t.Run("Follows jumps", func(t *testing.T) {
		s := play(t, 3, 4, 0, 8)

		for step, want := range map[int]Coord{1: {2, 2}, 2: {1, 1}, 3: {3, 3}} {
			j, err := s.JumpTo(step)
			require.NoError(t, err)
			c, ok := j.LastMove()
			require.True(t, ok)
			assert.Equal(t, want, c, "step %d", step)
		}
	})

	t.Run("Corrupt history panics", func(t *testing.T) {
		// Given: an entry identical to its predecessor
		s := play(t, 3, 4)
		s.history[1] = s.history[0]

		assert.PanicsWithError(t, "invariant violation: entry 1 is identical to entry 0", func() {
			s.LastMove()
		})
	})
}

func TestGameState_Validate(t *testing.T) {
	t.Run("Reachable histories are valid", func(t *testing.T) {
		s := play(t, 4, 0, 1, 4, 5, 8, 9, 12)
		for step := 0; step < s.Len(); step++ {
			j, err := s.JumpTo(step)
			require.NoError(t, err)
			assert.NoError(t, j.Validate())
		}
	})

	t.Run("Two cells filled at once", func(t *testing.T) {
		s := play(t, 3, 4)
		s.history[1] = HistoryEntry{Board: s.history[1].Board.with(0, PlayerA)}

		err := s.Validate()
		assert.True(t, errors.Is(err, ErrInvariantViolation))
	})

	t.Run("Wrong player's mark", func(t *testing.T) {
		s := play(t, 3, 4)
		s.history[1] = HistoryEntry{Board: newBoard(3).with(4, PlayerB)}

		assert.ErrorIs(t, s.Validate(), ErrInvariantViolation)
	})

	t.Run("Mark removed", func(t *testing.T) {
		s := play(t, 3, 4, 0)
		s.history[2] = HistoryEntry{Board: newBoard(3).with(0, PlayerB)}

		assert.ErrorIs(t, s.Validate(), ErrInvariantViolation)
	})
}

func TestGameState_View(t *testing.T) {
	// Given: PlayerA wins on the left column of a 4x4 board
	s := play(t, 4, 0, 1, 4, 5, 8, 9, 12)

	// When: building the view
	v := s.View()

	// Then: the view mirrors the engine queries
	assert.Equal(t, s.Active(), v.Board)
	assert.Equal(t, Line{0, 4, 8, 12}, v.Highlight)
	assert.True(t, v.Highlighted(8))
	assert.False(t, v.Highlighted(1))
	assert.Equal(t, "Winner: X", v.Status.String())
	assert.True(t, v.HasLast)
	assert.Equal(t, Coord{Row: 4, Col: 1}, v.LastMove)
	assert.Equal(t, 7, v.ActiveStep)
	assert.Equal(t, 8, v.Steps)

	require.Len(t, v.Moves, 8)
	assert.Equal(t, "Go to game start", v.Moves[0].Label())
	assert.Equal(t, "Go to move #2 at (1, 2)", v.Moves[2].Label())
	assert.Equal(t, "Go to move #7 at (4, 1)", v.Moves[7].Label())
}
