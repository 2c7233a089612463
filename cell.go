package gridastar

import "fmt"

// Cell is a grid coordinate. X is the column and Y the row; (0,0) is the top-left corner.
type Cell struct {
	X, Y int
}

// String renders the cell as (x,y).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Move is one of the four grid moves.
type Move int

const (
	Up Move = iota
	Right
	Down
	Left
)

// Moves lists the four moves in expansion order. The order decides which of several
// equally good paths a search returns, so it must stay fixed.
var Moves = [4]Move{Up, Right, Down, Left}

var moveOffsets = [4]Cell{
	Up:    {0, -1},
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
}

func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Step returns the cell reached from c by m. The result may be out of bounds.
func (c Cell) Step(m Move) Cell {
	d := moveOffsets[m]
	return Cell{c.X + d.X, c.Y + d.Y}
}
