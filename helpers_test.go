package gridastar

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// gridFromRows builds a grid from rows of '.' (open) and '#' (blocked); row i is y = i.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, len(rows), "row %d", y)
		for x, ch := range row {
			if ch == '#' {
				g.Block(Cell{x, y})
			}
		}
	}
	return g
}

func openGrid(t *testing.T, dim int) *Grid {
	t.Helper()
	g, err := NewGrid(dim)
	require.NoError(t, err)
	return g
}

// randomGrid blocks each cell with probability p, keeping both corners open.
func randomGrid(t *testing.T, rng *rand.Rand, dim int, p float64) *Grid {
	t.Helper()
	g := openGrid(t, dim)
	first, last := g.Corners()
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			c := Cell{x, y}
			if c != first && c != last && rng.Float64() < p {
				g.Block(c)
			}
		}
	}
	return g
}

// bfsDistance returns the number of moves on a shortest four-connected path, or -1.
func bfsDistance(g *Grid, start, goal Cell) int {
	dist := map[Cell]int{start: 0}
	queue := []Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == goal {
			return dist[c]
		}
		for _, m := range Moves {
			n := c.Step(m)
			if !g.InBounds(n) || g.Blocked(n) {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[c] + 1
			queue = append(queue, n)
		}
	}
	return -1
}

// requireWalkable checks that path moves one cell at a time through open cells.
func requireWalkable(t *testing.T, g *Grid, path []Cell) {
	t.Helper()
	for i, c := range path {
		require.True(t, g.InBounds(c), "cell %v off grid", c)
		require.False(t, g.Blocked(c), "cell %v is blocked", c)
		if i == 0 {
			continue
		}
		prev := path[i-1]
		dx, dy := c.X-prev.X, c.Y-prev.Y
		require.Equal(t, 1, dx*dx+dy*dy, "step %v -> %v is not a single move", prev, c)
	}
}
