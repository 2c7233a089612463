package gridastar

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Status is how a single search ended.
type Status int

const (
	// Found means the goal was expanded; the outcome carries the path to it.
	Found Status = iota + 1
	// Exhausted means the frontier ran empty first, so the goal is unreachable.
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Outcome contains the outcome of a search.
//
// For Found, Node is the goal node and its predecessor chain in Nodes is the path.
// For Exhausted, Node is the start node, which has no predecessor, Path is nil and
// TotalCost is Infinity.
type Outcome struct {
	Status        Status
	Node          NodeID
	Nodes         *NodeStore
	Path          []Cell
	TotalCost     int
	ExpandedNodes int
	Generation    int
}

// IsFound reports whether the search reached its goal.
func (o Outcome) IsFound() bool { return o.Status == Found }

// Goal returns the node the outcome refers to: the goal when found, the start otherwise.
func (o Outcome) Goal() PathNode { return o.Nodes.Node(o.Node) }

// Options defines parameters for the search.
type Options struct {
	TieBreak   TieBreak
	Logger     *zap.Logger
	Visibility Visibility
	// Generation tags the costs a search records in its grid. Zero means one past the
	// newest generation already recorded there.
	Generation int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithTieBreak selects how frontier entries with equal f are ordered.
func WithTieBreak(tieBreak TieBreak) Option {
	return func(options *Options) { options.TieBreak = tieBreak }
}

// WithLogger sets the logger searches report progress to.
func WithLogger(logger *zap.Logger) Option {
	return func(options *Options) {
		if logger != nil {
			options.Logger = logger
		}
	}
}

// WithVisibility sets how much of the ground truth a repeated search agent can see.
func WithVisibility(visibility Visibility) Option {
	return func(options *Options) { options.Visibility = visibility }
}

// WithGeneration tags recorded costs with an explicit generation.
func WithGeneration(generation int) Option {
	return func(options *Options) { options.Generation = generation }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		TieBreak:   PreferHigherG,
		Logger:     zap.NewNop(),
		Visibility: VisibilityLocal,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// Search runs A* from start to goal over grid, treating Blocked cells as walls and
// every other cell as open. It returns an error only for an unusable grid or
// heuristic, or when ctx is cancelled; an unreachable goal is an Exhausted outcome.
func Search(
	ctx context.Context,
	grid *Grid,
	start, goal Cell,
	kind HeuristicKind,
	options ...Option,
) (Outcome, error) {
	stepper, err := NewStepper(grid, start, goal, kind, options...)
	if err != nil {
		return Outcome{}, fmt.Errorf("search %v -> %v: %w", start, goal, err)
	}
	return stepper.run(ctx)
}

// run drives the stepper until it finishes or ctx is cancelled.
func (s *Stepper) run(ctx context.Context) (Outcome, error) {
	for !s.done {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		s.advance()
	}
	return s.Outcome(), nil
}
