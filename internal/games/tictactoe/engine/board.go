package engine

import "strings"

// Board is one immutable board snapshot of size*size marks in row-major order.
// Boards are never modified after construction; with returns a new board.
type Board struct {
	size  int
	cells []Mark
}

// newBoard returns an all-empty board.
func newBoard(size int) Board {
	return Board{
		size:  size,
		cells: make([]Mark, size*size),
	}
}

// Size returns the board dimension N.
func (b Board) Size() int {
	return b.size
}

// Len returns the number of cells (N²).
func (b Board) Len() int {
	return len(b.cells)
}

// At returns the mark at index. Out-of-range indices report Empty.
func (b Board) At(index int) Mark {
	if index < 0 || index >= len(b.cells) {
		return Empty
	}
	return b.cells[index]
}

// AtCoord returns the mark at a 1-indexed coordinate.
func (b Board) AtCoord(c Coord) Mark {
	if c.Row < 1 || c.Row > b.size || c.Col < 1 || c.Col > b.size {
		return Empty
	}
	return b.cells[b.Index(c)]
}

// Cells returns a copy of the cells.
func (b Board) Cells() []Mark {
	out := make([]Mark, len(b.cells))
	copy(out, b.cells)
	return out
}

// Index converts a 1-indexed coordinate to a cell index.
func (b Board) Index(c Coord) int {
	return (c.Row-1)*b.size + (c.Col - 1)
}

// CoordOf converts a cell index to its 1-indexed coordinate.
func (b Board) CoordOf(index int) Coord {
	return Coord{Row: index/b.size + 1, Col: index%b.size + 1}
}

// Empties returns the number of Empty cells.
func (b Board) Empties() int {
	n := 0
	for _, m := range b.cells {
		if m == Empty {
			n++
		}
	}
	return n
}

// with returns a copy of the board with index set to mark.
func (b Board) with(index int, mark Mark) Board {
	next := Board{
		size:  b.size,
		cells: make([]Mark, len(b.cells)),
	}
	copy(next.cells, b.cells)
	next.cells[index] = mark
	return next
}

// String renders the board as N lines of mark symbols.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + b.size)
	for i, m := range b.cells {
		if i > 0 && i%b.size == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
