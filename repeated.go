package gridastar

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// RunStatus is how a repeated search ended.
type RunStatus int

const (
	// Reached means the agent walked all the way to the goal.
	Reached RunStatus = iota + 1
	// Unreachable means a planning round exhausted its frontier before the agent got there.
	Unreachable
)

func (s RunStatus) String() string {
	switch s {
	case Reached:
		return "reached"
	case Unreachable:
		return "unreachable"
	}
	return fmt.Sprintf("RunStatus(%d)", int(s))
}

// Result describes a finished repeated search.
type Result struct {
	Status    RunStatus
	Direction Direction
	// Path holds every cell the agent stood on, starting cell first. For Unreachable
	// it ends where the agent gave up.
	Path []Cell
	// Moves is the number of moves the agent made, len(Path)-1.
	Moves         int
	Rounds        int
	ExpandedNodes int
	// Discovered lists the blocks the agent learned about, in discovery order.
	Discovered []Cell
}

// Controller runs Repeated A*: plan over the belief grid, walk the plan against the
// ground truth until a block is hit or the goal is reached, learn the block, replan.
//
// A Controller owns its belief grid, tracker and node arenas. It is not safe for
// concurrent use; run independent searches on independent controllers.
type Controller struct {
	truth   *Grid
	belief  *Grid
	kind    HeuristicKind
	options Options
	logger  *zap.Logger

	start   Cell
	goal    Cell
	tracker *SearchTracker
	plan    *NodeStore

	status     RunStatus
	rounds     int
	expanded   int
	discovered []Cell
}

// NewController prepares a repeated search across truth in the given direction.
func NewController(truth *Grid, direction Direction, kind HeuristicKind, options ...Option) (*Controller, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownHeuristic, kind)
	}
	if truth == nil {
		return nil, fmt.Errorf("%w: nil ground truth", ErrInvalidGrid)
	}
	if direction != Forward && direction != Backward {
		return nil, fmt.Errorf("unsupported direction %v", direction)
	}
	start, goal := direction.Endpoints(truth.Dim())
	if err := truth.ValidateEndpoints(start, goal); err != nil {
		return nil, err
	}
	belief, err := NewBeliefGrid(truth.Dim())
	if err != nil {
		return nil, err
	}

	opts := applyOptions(options)
	c := &Controller{
		truth:   truth,
		belief:  belief,
		kind:    kind,
		options: opts,
		logger:  opts.Logger.With(zap.Stringer("direction", direction), zap.Stringer("heuristic", kind)),
		start:   start,
		goal:    goal,
		tracker: newSearchTracker(direction, start, 2*truth.Dim()),
		plan:    NewNodeStore(truth.Dim() * 2),
	}

	switch opts.Visibility {
	case VisibilityFull:
		for _, b := range truth.BlockedCells() {
			belief.Block(b)
		}
	case VisibilityAdjacent:
		c.sense(start)
	}
	return c, nil
}

// RepeatedSearch moves an agent across truth with Repeated A* and returns where it got.
// The error is non-nil only for invalid input or a cancelled ctx.
func RepeatedSearch(
	ctx context.Context,
	truth *Grid,
	direction Direction,
	kind HeuristicKind,
	options ...Option,
) (Result, error) {
	c, err := NewController(truth, direction, kind, options...)
	if err != nil {
		return Result{}, fmt.Errorf("repeated search %v: %w", direction, err)
	}
	return c.Run(ctx)
}

// Belief returns the agent's belief grid.
func (c *Controller) Belief() *Grid { return c.belief }

// Tracker returns the agent state.
func (c *Controller) Tracker() *SearchTracker { return c.tracker }

// Done reports whether the search has finished, either way.
func (c *Controller) Done() bool { return c.status != 0 }

// Run plans and walks until the agent reaches the goal or no path is left.
func (c *Controller) Run(ctx context.Context) (Result, error) {
	for !c.Done() {
		if _, err := c.Step(ctx); err != nil {
			return c.Result(), err
		}
	}
	return c.Result(), nil
}

// Step performs one planning round and the walk that follows it. It reports whether
// the search is finished.
func (c *Controller) Step(ctx context.Context) (bool, error) {
	if c.Done() {
		return true, nil
	}
	generation := c.tracker.nextRound()
	agent := c.tracker.Position()
	c.belief.ResetCost(c.goal)
	c.plan.Reset()
	c.rounds++

	opts := c.options
	opts.Generation = generation
	planner, err := newStepper(c.belief, agent, c.goal, c.kind, opts, c.plan)
	if err != nil {
		return false, err
	}
	c.logger.Debug("planning round",
		zap.Int("generation", generation),
		zap.Stringer("agent", agent),
		zap.Int("moves", c.tracker.Moves()))

	out, err := planner.run(ctx)
	if err != nil {
		return false, fmt.Errorf("planning round %d: %w", generation, err)
	}
	c.expanded += out.ExpandedNodes

	if out.Status == Exhausted {
		c.status = Unreachable
		c.logger.Debug("goal unreachable",
			zap.Int("rounds", c.rounds),
			zap.Stringer("agent", agent),
			zap.Int("discovered", len(c.discovered)))
		return true, nil
	}

	// The first node of the plan is the agent itself.
	chain := c.plan.Chain(out.Node)
	for _, id := range chain[1:] {
		next := c.plan.Node(id).Cell
		if c.truth.Blocked(next) {
			c.discover(next)
			c.logger.Debug("block on planned path",
				zap.Int("generation", generation),
				zap.Stringer("block", next),
				zap.Stringer("agent", c.tracker.Position()))
			return false, nil
		}
		c.tracker.advance(next)
		if c.options.Visibility == VisibilityAdjacent {
			c.sense(next)
		}
	}

	c.tracker.Finished = true
	c.status = Reached
	c.logger.Debug("goal reached",
		zap.Int("rounds", c.rounds),
		zap.Int("moves", c.tracker.Moves()),
		zap.Int("expanded", c.expanded))
	return true, nil
}

// Result reports the state of the search so far.
func (c *Controller) Result() Result {
	return Result{
		Status:        c.status,
		Direction:     c.tracker.Direction,
		Path:          c.tracker.Path(),
		Moves:         c.tracker.Moves(),
		Rounds:        c.rounds,
		ExpandedNodes: c.expanded,
		Discovered:    append([]Cell(nil), c.discovered...),
	}
}

// discover records a ground-truth block in the belief grid.
func (c *Controller) discover(cell Cell) {
	if c.belief.Blocked(cell) {
		return
	}
	c.belief.Block(cell)
	c.discovered = append(c.discovered, cell)
}

// sense reveals the blocked neighbours of cell.
func (c *Controller) sense(cell Cell) {
	for _, m := range Moves {
		n := cell.Step(m)
		if c.truth.InBounds(n) && c.truth.Blocked(n) {
			c.discover(n)
		}
	}
}
