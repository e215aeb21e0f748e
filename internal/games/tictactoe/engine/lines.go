package engine

import "fmt"

// Line is a set of cell indices that wins when uniformly occupied.
type Line []int

// Contains reports whether index is part of the line.
func (l Line) Contains(index int) bool {
	for _, i := range l {
		if i == index {
			return true
		}
	}
	return false
}

// GenerateLines returns every winning line of a size x size board:
// size rows, the main diagonal, the anti-diagonal, then size columns.
// FindWinningLine reports the first complete line in this order.
//
// For size 1 all four lines are {0}.
func GenerateLines(size int) []Line {
	lines := make([]Line, 0, 2*size+2)

	for r := 0; r < size; r++ {
		row := make(Line, size)
		for c := 0; c < size; c++ {
			row[c] = r*size + c
		}
		lines = append(lines, row)
	}

	diag := make(Line, size)
	anti := make(Line, size)
	for i := 0; i < size; i++ {
		diag[i] = i * (size + 1)
		anti[i] = (size - 1) + i*(size-1)
	}
	lines = append(lines, diag, anti)

	for c := 0; c < size; c++ {
		col := make(Line, size)
		for r := 0; r < size; r++ {
			col[r] = r*size + c
		}
		lines = append(lines, col)
	}

	return lines
}

// FindWinningLine returns the first line whose cells all hold the same
// non-Empty mark, or nil. The lines must have been generated for b's size.
func FindWinningLine(lines []Line, b Board) Line {
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		for _, i := range line {
			if i < 0 || i >= b.Len() {
				panic(fmt.Errorf("%w: line index %d outside board of %d cells", ErrInvariantViolation, i, b.Len()))
			}
		}

		first := b.cells[line[0]]
		if first == Empty {
			continue
		}

		complete := true
		for _, i := range line[1:] {
			if b.cells[i] != first {
				complete = false
				break
			}
		}
		if complete {
			return line
		}
	}
	return nil
}

// IsBoardFull reports whether no cell is Empty.
func IsBoardFull(b Board) bool {
	for _, m := range b.cells {
		if m == Empty {
			return false
		}
	}
	return true
}
