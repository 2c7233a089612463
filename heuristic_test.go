package gridastar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	from, to := Cell{0, 0}, Cell{3, 4}
	tests := []struct {
		kind HeuristicKind
		want float64
	}{
		{Euclidean, 5},
		{Manhattan, 7},
		{Chebyshev, 4},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, Estimate(tt.kind, from, to), 1e-9)
			assert.InDelta(t, tt.want, Estimate(tt.kind, to, from), 1e-9, "estimate must be symmetric")
		})
	}
}

func TestEstimate_EuclideanSquares(t *testing.T) {
	// 2^2 as XOR would be 0; squaring gives 8.
	assert.InDelta(t, math.Sqrt(8), Estimate(Euclidean, Cell{0, 0}, Cell{2, 2}), 1e-12)
	assert.InDelta(t, math.Sqrt(2), Estimate(Euclidean, Cell{4, 4}, Cell{3, 3}), 1e-12)
}

func TestEstimate_NeverExceedsGridDistance(t *testing.T) {
	for _, kind := range HeuristicKinds {
		for x := 0; x < 6; x++ {
			for y := 0; y < 6; y++ {
				from, to := Cell{x, y}, Cell{5, 2}
				manhattan := math.Abs(float64(x-5)) + math.Abs(float64(y-2))
				assert.LessOrEqual(t, Estimate(kind, from, to), manhattan+1e-9, "%v from %v", kind, from)
			}
		}
	}
}

func TestEstimate_Consistent(t *testing.T) {
	goal := Cell{3, 1}
	for _, kind := range HeuristicKinds {
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				c := Cell{x, y}
				for _, m := range Moves {
					n := c.Step(m)
					assert.LessOrEqual(t, Estimate(kind, c, goal), 1+Estimate(kind, n, goal)+1e-9,
						"%v: h(%v) > 1 + h(%v)", kind, c, n)
				}
			}
		}
	}
}

func TestEstimate_UnknownKind(t *testing.T) {
	assert.Zero(t, Estimate(HeuristicKind(42), Cell{0, 0}, Cell{9, 9}))
	assert.False(t, HeuristicKind(42).Valid())
	assert.False(t, HeuristicKind(0).Valid())
}

func TestParseHeuristic(t *testing.T) {
	for _, kind := range HeuristicKinds {
		got, err := ParseHeuristic(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	got, err := ParseHeuristic(" Euclidian ")
	require.NoError(t, err)
	assert.Equal(t, Euclidean, got)

	_, err = ParseHeuristic("octile")
	require.ErrorIs(t, err, ErrUnknownHeuristic)
}

func TestHeuristicFunc(t *testing.T) {
	h := Chebyshev.Func()
	assert.Equal(t, 6.0, h(Cell{1, 1}, Cell{7, 3}))
}
