package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSearchCommand(t *testing.T) {
	grid := writeFile(t, "grid.txt", "ooo\noBo\nooo\n")
	out, err := execute(t, "search", "--grid-file", grid, "--heuristic", "manhattan")
	require.NoError(t, err)

	assert.Contains(t, out, "grid 3x3  heuristic manhattan  tie-break higher-g")
	assert.Contains(t, out, "status: found")
	assert.Contains(t, out, "cost: 4")
	assert.Contains(t, out, "path: (0,0)")
	assert.Contains(t, out, "1 o B X")
}

func TestSearchCommand_Unreachable(t *testing.T) {
	grid := writeFile(t, "wall.txt", "oBo\noBo\noBo\n")
	out, err := execute(t, "search", "--grid-file", grid)
	require.NoError(t, err)
	assert.Contains(t, out, "status: exhausted")
	assert.NotContains(t, out, "cost:")
}

func TestRepeatCommand(t *testing.T) {
	grid := writeFile(t, "grid.txt", "ooooo\nooooo\nooBoo\nooooo\nooooo\n")
	out, err := execute(t, "repeat", "--grid-file", grid, "--direction", "backward", "--show-belief", "--color")
	require.NoError(t, err)

	assert.Contains(t, out, "direction backward  visibility local")
	assert.Contains(t, out, "status: reached")
	assert.Contains(t, out, "belief:")
	assert.Contains(t, out, "path: (4,4)")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "(0,0)"))
}

func TestRepeatCommand_GeneratedGridFromConfig(t *testing.T) {
	cfg := writeFile(t, "gridastar.yaml", `
grid:
  dim: 12
  block_probability: 0
  seed: 4
search:
  heuristic: chebyshev
  visibility: full
logging:
  level: error
`)
	out, err := execute(t, "repeat", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "grid 12x12  heuristic chebyshev")
	assert.Contains(t, out, "moves: 22")
	assert.Contains(t, out, "rounds: 1")
}

func TestBatchCommand(t *testing.T) {
	out, err := execute(t, "batch", "--dim", "6", "--block-prob", "0.2", "--seed", "3",
		"--runs", "5", "--workers", "2", "--heuristics", "manhattan,euclidean")
	require.NoError(t, err)

	assert.Contains(t, out, "5 runs  grid 6x6")
	assert.Contains(t, out, "manhattan")
	assert.Contains(t, out, "euclidean")
	assert.NotContains(t, out, "chebyshev")
	assert.Contains(t, out, "mean moves")
}

func TestCommands_RejectBadInput(t *testing.T) {
	tests := [][]string{
		{"search", "--heuristic", "octile", "--dim", "4"},
		{"search", "--dim", "0"},
		{"search", "--grid-file", filepath.Join(t.TempDir(), "missing.txt")},
		{"repeat", "--direction", "diagonal", "--dim", "4"},
		{"batch", "--heuristics", "bogus", "--dim", "4"},
		{"search", "extra-arg"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestSearchCommand_BlockedCorner(t *testing.T) {
	grid := writeFile(t, "grid.txt", "Bo\noo\n")
	_, err := execute(t, "search", "--grid-file", grid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid grid")
}
