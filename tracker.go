package gridastar

import (
	"fmt"
	"strings"
)

// Direction is the way a repeated search agent crosses the grid.
type Direction int

const (
	// Forward travels from (0,0) to (dim-1,dim-1).
	Forward Direction = iota
	// Backward travels from (dim-1,dim-1) to (0,0).
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts a direction name to its value.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	}
	return Forward, fmt.Errorf("parse direction %q: unknown direction", name)
}

// Endpoints returns the start and goal cells of a dim x dim grid for d.
func (d Direction) Endpoints(dim int) (start, goal Cell) {
	first, last := Cell{0, 0}, Cell{dim - 1, dim - 1}
	if d == Backward {
		return last, first
	}
	return first, last
}

// Visibility is how much of the ground truth a repeated search agent observes.
type Visibility int

const (
	// VisibilityLocal reveals a block only when the agent tries to step into it.
	VisibilityLocal Visibility = iota
	// VisibilityAdjacent also reveals the four neighbours of every cell the agent enters.
	VisibilityAdjacent
	// VisibilityFull gives the agent the whole ground truth up front.
	VisibilityFull
)

func (v Visibility) String() string {
	switch v {
	case VisibilityLocal:
		return "local"
	case VisibilityAdjacent:
		return "adjacent"
	case VisibilityFull:
		return "full"
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

// ParseVisibility converts a visibility name to its value.
func ParseVisibility(name string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "local":
		return VisibilityLocal, nil
	case "adjacent":
		return VisibilityAdjacent, nil
	case "full":
		return VisibilityFull, nil
	}
	return VisibilityLocal, fmt.Errorf("parse visibility %q: unknown visibility", name)
}

// SearchTracker is the agent side of a repeated search: where the agent is, the path
// it has actually walked, and the generation of the current planning round.
//
// The walked path is a node chain in the tracker's own arena. Each step copies the
// planned cell into a fresh node whose G is the number of moves so far, so nothing
// is shared with the arena a planning round searched in.
type SearchTracker struct {
	Direction  Direction
	Agent      NodeID
	Generation int
	Finished   bool

	traveled *NodeStore
}

func newSearchTracker(direction Direction, start Cell, capacity int) *SearchTracker {
	t := &SearchTracker{
		Direction: direction,
		traveled:  NewNodeStore(capacity),
	}
	t.Agent = t.traveled.New(start, 0, 0, NoNode, 0)
	return t
}

// Position returns the agent's current cell.
func (t *SearchTracker) Position() Cell {
	return t.traveled.Node(t.Agent).Cell
}

// Moves returns how many moves the agent has made.
func (t *SearchTracker) Moves() int {
	return t.traveled.Node(t.Agent).G
}

// Path returns every cell the agent has stood on, in order, starting cell first.
func (t *SearchTracker) Path() []Cell {
	return t.traveled.Path(t.Agent)
}

// nextRound starts a new planning round and returns its generation.
func (t *SearchTracker) nextRound() int {
	t.Generation++
	return t.Generation
}

// advance moves the agent one step to cell.
func (t *SearchTracker) advance(cell Cell) {
	prev := t.traveled.Node(t.Agent)
	t.Agent = t.traveled.New(cell, prev.G+1, 0, t.Agent, t.Generation)
}
