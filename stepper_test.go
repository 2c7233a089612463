package gridastar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_AgreesWithSearch(t *testing.T) {
	g := gridFromRows(t,
		".....",
		".###.",
		"...#.",
		"##.#.",
		".....",
	)
	start, goal := g.Corners()

	want, err := Search(context.Background(), g.Clone(), start, goal, Euclidean)
	require.NoError(t, err)

	s, err := NewStepper(g, start, goal, Euclidean)
	require.NoError(t, err)

	var last StepSnapshot
	steps := 0
	for !s.Done() {
		last = s.Step()
		steps++
		require.Equal(t, steps, last.StepIndex)
		require.False(t, last.Open[last.Current] && !last.Done, "expanded cell still open")
	}

	assert.True(t, last.Done)
	assert.True(t, last.Found)
	assert.Equal(t, goal, last.Current)
	assert.Equal(t, want.Path, last.Path)
	assert.Equal(t, want.TotalCost, s.Outcome().TotalCost)
	assert.Equal(t, want.ExpandedNodes, len(last.Closed))
}

func TestStepper_SnapshotTracksSets(t *testing.T) {
	g := openGrid(t, 3)
	s, err := NewStepper(g, Cell{1, 1}, Cell{2, 2}, Manhattan, WithTieBreak(Neutral))
	require.NoError(t, err)

	snap := s.Step()
	assert.Equal(t, Cell{1, 1}, snap.Current)
	assert.True(t, snap.Closed[Cell{1, 1}])
	assert.Len(t, snap.Open, 4)
	for _, c := range []Cell{{1, 0}, {2, 1}, {1, 2}, {0, 1}} {
		assert.True(t, snap.Open[c], "%v should be open", c)
	}
	assert.False(t, snap.Done)
	assert.Nil(t, snap.Path)
}

func TestStepper_ExhaustedThenIdle(t *testing.T) {
	g := gridFromRows(t,
		".#",
		"#.",
	)
	s, err := NewStepper(g, Cell{0, 0}, Cell{1, 1}, Chebyshev)
	require.NoError(t, err)

	first := s.Step()
	assert.False(t, first.Done)
	second := s.Step()
	assert.True(t, second.Done)
	assert.False(t, second.Found)

	again := s.Step()
	assert.True(t, again.Done)
	assert.Equal(t, second.StepIndex, again.StepIndex)
	assert.Equal(t, Exhausted, s.Outcome().Status)
}
