package gridastar

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/pdrpinto/gridastar/internal"
)

// ErrUnknownHeuristic is returned for a heuristic kind outside the supported metrics.
var ErrUnknownHeuristic = errors.New("unknown heuristic")

// Heuristic returns the estimated cost from one cell to another.
type Heuristic func(from, to Cell) float64

// HeuristicKind selects a distance metric.
type HeuristicKind int

const (
	Euclidean HeuristicKind = iota + 1
	Manhattan
	Chebyshev
)

// HeuristicKinds lists every supported metric.
var HeuristicKinds = []HeuristicKind{Euclidean, Manhattan, Chebyshev}

func (k HeuristicKind) String() string {
	switch k {
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	}
	return fmt.Sprintf("HeuristicKind(%d)", int(k))
}

// Valid reports whether k is one of the supported metrics.
func (k HeuristicKind) Valid() bool {
	return k >= Euclidean && k <= Chebyshev
}

// ParseHeuristic converts a metric name to its kind.
func ParseHeuristic(name string) (HeuristicKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euclidean", "euclidian":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	case "chebyshev":
		return Chebyshev, nil
	}
	return 0, fmt.Errorf("parse heuristic %q: %w", name, ErrUnknownHeuristic)
}

// Estimate returns the distance from one cell to another under the given metric.
// All three metrics are at most the Manhattan distance, so none overestimates the
// cost of a four-connected path. Unsupported kinds estimate 0.
func Estimate(kind HeuristicKind, from, to Cell) float64 {
	dx := internal.Abs(from.X - to.X)
	dy := internal.Abs(from.Y - to.Y)
	switch kind {
	case Euclidean:
		return math.Sqrt(float64(dx*dx + dy*dy))
	case Manhattan:
		return float64(dx + dy)
	case Chebyshev:
		return float64(max(dx, dy))
	}
	return 0
}

// Func returns kind as a Heuristic.
func (k HeuristicKind) Func() Heuristic {
	return func(from, to Cell) float64 { return Estimate(k, from, to) }
}
