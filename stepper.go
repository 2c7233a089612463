package gridastar

import (
	"fmt"

	"go.uber.org/zap"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Cell
	Open      map[Cell]bool
	Closed    map[Cell]bool
	Done      bool
	Found     bool
	Path      []Cell
	StepIndex int
}

// Stepper runs an A* search one expansion at a time. Search drives the same stepper
// to completion, so both always agree.
type Stepper struct {
	grid       *Grid
	start      Cell
	goal       Cell
	heuristic  Heuristic
	generation int
	logger     *zap.Logger

	store     *NodeStore
	frontier  *Frontier
	closedSet map[Cell]struct{}
	startNode NodeID
	goalNode  NodeID
	proposals []RelaxProposal

	stepCount int
	done      bool
	found     bool
}

// NewStepper validates the grid and endpoints and seeds a search from start to goal.
func NewStepper(grid *Grid, start, goal Cell, kind HeuristicKind, options ...Option) (*Stepper, error) {
	return newStepper(grid, start, goal, kind, applyOptions(options), nil)
}

func newStepper(grid *Grid, start, goal Cell, kind HeuristicKind, opts Options, store *NodeStore) (*Stepper, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownHeuristic, kind)
	}
	if err := grid.ValidateEndpoints(start, goal); err != nil {
		return nil, err
	}
	if store == nil {
		store = NewNodeStore(grid.Dim() * 2)
	}
	generation := opts.Generation
	if generation == 0 {
		generation = grid.Generation() + 1
	}

	s := &Stepper{
		grid:       grid,
		start:      start,
		goal:       goal,
		heuristic:  kind.Func(),
		generation: generation,
		logger:     opts.Logger,
		store:      store,
		frontier:   NewFrontier(store, opts.TieBreak),
		closedSet:  make(map[Cell]struct{}),
		goalNode:   NoNode,
		proposals:  make([]RelaxProposal, 0, len(Moves)),
	}

	grid.Touch(start, generation)
	s.startNode = store.New(start, 0, s.heuristic(start, goal), NoNode, generation)
	grid.RecordCost(start, 0, generation)
	s.frontier.Push(s.startNode)
	return s, nil
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.done }

// advance performs one expansion. It returns the cell taken off the frontier, or false
// when the search was already over or has just run out of frontier.
func (s *Stepper) advance() (Cell, bool) {
	if s.done {
		return Cell{}, false
	}
	currentID, ok := s.frontier.PopMin()
	if !ok {
		s.done = true
		s.logger.Debug("frontier exhausted",
			zap.Stringer("start", s.start),
			zap.Stringer("goal", s.goal),
			zap.Int("expanded", len(s.closedSet)),
			zap.Int("generation", s.generation))
		return Cell{}, false
	}
	s.stepCount++
	current := s.store.Node(currentID)

	if current.Cell == s.goal {
		s.done = true
		s.found = true
		s.goalNode = currentID
		s.logger.Debug("goal expanded",
			zap.Stringer("start", s.start),
			zap.Stringer("goal", s.goal),
			zap.Int("cost", current.G),
			zap.Int("expanded", len(s.closedSet)),
			zap.Int("generation", s.generation))
		return current.Cell, true
	}
	s.closedSet[current.Cell] = struct{}{}

	s.proposals = proposeNeighbors(s.grid, s.store, currentID, s.goal, s.heuristic, s.proposals[:0])
	for _, p := range s.proposals {
		s.relax(p)
	}
	return current.Cell, true
}

// relax applies one proposal: queue a newly seen cell, or lower the cost of a queued
// one. Closed cells are never reopened.
func (s *Stepper) relax(p RelaxProposal) {
	if _, closed := s.closedSet[p.ToCell]; closed {
		return
	}
	if s.frontier.Contains(p.ToCell) {
		if s.frontier.Decrease(p.ToCell, p.GScore, p.FromNode) {
			s.grid.RecordCost(p.ToCell, p.GScore, s.generation)
		}
		return
	}
	s.grid.Touch(p.ToCell, s.generation)
	id := s.store.New(p.ToCell, p.GScore, p.HScore, p.FromNode, s.generation)
	s.frontier.Push(id)
	s.grid.RecordCost(p.ToCell, p.GScore, s.generation)
}

// Step advances the search by one node expansion and returns a snapshot
func (s *Stepper) Step() StepSnapshot {
	if s.done {
		var path []Cell
		if s.found {
			path = s.store.Path(s.goalNode)
		}
		return s.snapshot(s.store.Node(s.goalOrStart()).Cell, path)
	}
	current, ok := s.advance()
	if !ok {
		return s.snapshot(Cell{}, nil)
	}
	var path []Cell
	if s.found {
		path = s.store.Path(s.goalNode)
	}
	return s.snapshot(current, path)
}

func (s *Stepper) snapshot(current Cell, path []Cell) StepSnapshot {
	open := make(map[Cell]bool, s.frontier.Len())
	for _, c := range s.frontier.Cells() {
		open[c] = true
	}
	closed := make(map[Cell]bool, len(s.closedSet))
	for c := range s.closedSet {
		closed[c] = true
	}
	return StepSnapshot{
		Current:   current,
		Open:      open,
		Closed:    closed,
		Done:      s.done,
		Found:     s.found,
		Path:      path,
		StepIndex: s.stepCount,
	}
}

func (s *Stepper) goalOrStart() NodeID {
	if s.found {
		return s.goalNode
	}
	return s.startNode
}

// Outcome returns the result of the search. It is only meaningful once Done is true.
func (s *Stepper) Outcome() Outcome {
	out := Outcome{
		Nodes:         s.store,
		ExpandedNodes: len(s.closedSet),
		Generation:    s.generation,
	}
	if s.found {
		goal := s.store.Node(s.goalNode)
		out.Status = Found
		out.Node = s.goalNode
		out.Path = s.store.Path(s.goalNode)
		out.TotalCost = goal.G
		return out
	}
	out.Status = Exhausted
	out.Node = s.startNode
	out.TotalCost = Infinity
	return out
}
