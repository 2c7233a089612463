package gridastar

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid is returned when a grid or its endpoints cannot be searched.
var ErrInvalidGrid = errors.New("invalid grid")

// Infinity is the cost of a cell that no search has reached in the current generation.
const Infinity = math.MaxInt

// CellState is what a grid knows about one cell.
type CellState uint8

const (
	// Unknown cells are traversable with no recorded cost (cost reads as Infinity).
	Unknown CellState = iota
	// Known cells carry the g a search recorded for them.
	Known
	// Blocked cells are never entered.
	Blocked
)

func (s CellState) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Known:
		return "known"
	case Blocked:
		return "blocked"
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

type cellRecord struct {
	state      CellState
	cost       int
	generation int
}

// Grid is a dim x dim square of cells.
//
// The same type models the ground-truth obstacle map and an agent's belief about it.
// A ground-truth grid only ever distinguishes Blocked from open; a belief grid starts
// all Unknown and learns blocks as the agent discovers them. Searches use a grid as
// cost bookkeeping: every cost is tagged with the generation that wrote it, and a read
// from a later generation treats the old value as Infinity.
type Grid struct {
	dim        int
	cells      []cellRecord
	generation int
}

// NewGrid returns an open dim x dim grid.
func NewGrid(dim int) (*Grid, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimension %d must be positive", ErrInvalidGrid, dim)
	}
	g := &Grid{dim: dim, cells: make([]cellRecord, dim*dim)}
	for i := range g.cells {
		g.cells[i].cost = Infinity
	}
	return g, nil
}

// NewBeliefGrid returns the belief grid of an agent that knows nothing but the grid size.
func NewBeliefGrid(dim int) (*Grid, error) {
	return NewGrid(dim)
}

// Dim returns the side length of the grid.
func (g *Grid) Dim() int { return g.dim }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.dim && c.Y >= 0 && c.Y < g.dim
}

func (g *Grid) record(c Cell) *cellRecord {
	return &g.cells[c.Y*g.dim+c.X]
}

// State returns the state of c. Cells outside the grid read as Blocked.
func (g *Grid) State(c Cell) CellState {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.record(c).state
}

// Blocked reports whether c is blocked or off the grid.
func (g *Grid) Blocked(c Cell) bool {
	return g.State(c) == Blocked
}

// Block marks c as blocked. Cells outside the grid are ignored.
func (g *Grid) Block(c Cell) {
	if !g.InBounds(c) {
		return
	}
	r := g.record(c)
	r.state = Blocked
	r.cost = Infinity
}

// Unblock makes c traversable again with an unknown cost.
func (g *Grid) Unblock(c Cell) {
	if !g.InBounds(c) {
		return
	}
	r := g.record(c)
	r.state = Unknown
	r.cost = Infinity
}

// Touch returns the cost recorded for c in the given generation. A cost written by an
// older generation is discarded first, so the cell reads as Unknown from then on.
func (g *Grid) Touch(c Cell, generation int) int {
	if !g.InBounds(c) {
		return Infinity
	}
	r := g.record(c)
	if r.state == Blocked {
		return Infinity
	}
	if r.generation != generation {
		r.state = Unknown
		r.cost = Infinity
		r.generation = generation
	}
	return r.cost
}

// RecordCost stores cost as the g of c for the given generation.
func (g *Grid) RecordCost(c Cell, cost, generation int) {
	if !g.InBounds(c) {
		return
	}
	r := g.record(c)
	if r.state == Blocked {
		return
	}
	r.state = Known
	r.cost = cost
	r.generation = generation
	if generation > g.generation {
		g.generation = generation
	}
}

// ResetCost forgets the cost of c without touching its blocked status.
func (g *Grid) ResetCost(c Cell) {
	if !g.InBounds(c) {
		return
	}
	r := g.record(c)
	if r.state == Blocked {
		return
	}
	r.state = Unknown
	r.cost = Infinity
}

// Cost returns the raw recorded cost of c and the generation that wrote it.
func (g *Grid) Cost(c Cell) (cost, generation int) {
	if !g.InBounds(c) {
		return Infinity, 0
	}
	r := g.record(c)
	return r.cost, r.generation
}

// Generation returns the highest generation that has recorded a cost in the grid.
func (g *Grid) Generation() int { return g.generation }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{dim: g.dim, cells: make([]cellRecord, len(g.cells)), generation: g.generation}
	copy(c.cells, g.cells)
	return c
}

// BlockedCells returns every blocked cell in row-major order.
func (g *Grid) BlockedCells() []Cell {
	var out []Cell
	for y := 0; y < g.dim; y++ {
		for x := 0; x < g.dim; x++ {
			if g.cells[y*g.dim+x].state == Blocked {
				out = append(out, Cell{x, y})
			}
		}
	}
	return out
}

// Corners returns the top-left and bottom-right cells.
func (g *Grid) Corners() (Cell, Cell) {
	return Cell{0, 0}, Cell{g.dim - 1, g.dim - 1}
}

// ValidateEndpoints checks that start and goal are on the grid and not blocked.
func (g *Grid) ValidateEndpoints(start, goal Cell) error {
	if g == nil || g.dim <= 0 {
		return fmt.Errorf("%w: empty grid", ErrInvalidGrid)
	}
	for _, end := range []struct {
		name string
		cell Cell
	}{{"start", start}, {"goal", goal}} {
		if !g.InBounds(end.cell) {
			return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidGrid, end.name, end.cell, g.dim, g.dim)
		}
		if g.Blocked(end.cell) {
			return fmt.Errorf("%w: %s %v is blocked", ErrInvalidGrid, end.name, end.cell)
		}
	}
	return nil
}
