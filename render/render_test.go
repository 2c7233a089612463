package render

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/gridgen"
)

func TestText(t *testing.T) {
	g, err := gridgen.Parse(`
		o B o
		o B o
		o o o
	`)
	require.NoError(t, err)
	path := []gridastar.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}

	want := "" +
		"  0 1 2\n" +
		"0 X B o\n" +
		"1 X B o\n" +
		"2 X X X\n"
	assert.Equal(t, want, Text(g, path, Options{}))

	bare := Text(g, nil, Options{HideLabels: true})
	assert.Equal(t, "o B o\no B o\no o o\n", bare)
}

func TestText_RoundTripsThroughParse(t *testing.T) {
	g, err := gridgen.Generate(7, 0.3, gridgen.NewRand(5))
	require.NoError(t, err)

	back, err := gridgen.Parse(Text(g, nil, Options{HideLabels: true}))
	require.NoError(t, err)
	assert.Equal(t, g.BlockedCells(), back.BlockedCells())
}

func TestText_WideLabels(t *testing.T) {
	g, err := gridastar.NewGrid(12)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(Text(g, nil, Options{}), "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "   0 1 2 3 4 5 6 7 8 9 0 1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], " 0 o"))
	assert.True(t, strings.HasPrefix(lines[12], "11 o"))
	for _, l := range lines[1:] {
		assert.Len(t, l, len(lines[0]))
	}
}

func TestText_MarkExplored(t *testing.T) {
	g, err := gridastar.NewGrid(3)
	require.NoError(t, err)
	out, err := gridastar.Search(context.Background(), g, gridastar.Cell{}, gridastar.Cell{X: 2, Y: 0}, gridastar.Manhattan)
	require.NoError(t, err)

	text := Text(g, out.Path, Options{MarkExplored: true, HideLabels: true})
	rows := strings.Split(text, "\n")
	assert.Equal(t, "X X X", rows[0])
	assert.Contains(t, text, string(GlyphExplored))
	assert.Equal(t, GlyphOpen, Glyph(g, gridastar.Cell{X: 2, Y: 2}, false, Options{}))
}

func TestStyled_SameLayoutAsText(t *testing.T) {
	g, err := gridgen.Wall(4, 2)
	require.NoError(t, err)

	styles := DefaultStyles()
	plain := Styles{
		Blocked:  lipgloss.NewStyle(),
		Open:     lipgloss.NewStyle(),
		Path:     lipgloss.NewStyle(),
		Explored: lipgloss.NewStyle(),
		Label:    lipgloss.NewStyle(),
	}
	assert.Equal(t, Text(g, nil, Options{}), Styled(g, nil, Options{}, plain))
	assert.NotEmpty(t, Styled(g, nil, Options{}, styles))
}
