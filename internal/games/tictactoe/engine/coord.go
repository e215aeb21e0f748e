package engine

import "fmt"

// Coord is a 1-indexed (row, column) board position.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d, %d", c.Row, c.Col)
}
