// Package render draws grids and walked paths as text.
//
// Each cell is one glyph: B for a block, o for an open cell, X for a cell on the path
// and, when MarkExplored is set, * for a cell a search recorded a cost for. Rows are
// labelled with their y and columns with the last digit of their x.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdrpinto/gridastar"
)

const (
	GlyphBlocked  = 'B'
	GlyphOpen     = 'o'
	GlyphPath     = 'X'
	GlyphExplored = '*'
)

// Options controls what Text and Styled draw.
type Options struct {
	// MarkExplored draws cells holding a recorded search cost as GlyphExplored.
	MarkExplored bool
	// HideLabels drops the row and column labels.
	HideLabels bool
}

// Styles colours each kind of glyph for Styled.
type Styles struct {
	Blocked  lipgloss.Style
	Open     lipgloss.Style
	Path     lipgloss.Style
	Explored lipgloss.Style
	Label    lipgloss.Style
}

// DefaultStyles returns the terminal palette used by the command line.
func DefaultStyles() Styles {
	return Styles{
		Blocked:  lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75")).Bold(true),
		Open:     lipgloss.NewStyle().Foreground(lipgloss.Color("#5C6370")),
		Path:     lipgloss.NewStyle().Foreground(lipgloss.Color("#98C379")).Bold(true),
		Explored: lipgloss.NewStyle().Foreground(lipgloss.Color("#61AFEF")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ABB2BF")).Faint(true),
	}
}

// Text draws g with path overlaid.
func Text(g *gridastar.Grid, path []gridastar.Cell, opts Options) string {
	return draw(g, path, opts, func(_ rune, s string) string { return s })
}

// Styled draws g with path overlaid, coloured with styles.
func Styled(g *gridastar.Grid, path []gridastar.Cell, opts Options, styles Styles) string {
	return draw(g, path, opts, func(glyph rune, s string) string {
		switch glyph {
		case GlyphBlocked:
			return styles.Blocked.Render(s)
		case GlyphOpen:
			return styles.Open.Render(s)
		case GlyphPath:
			return styles.Path.Render(s)
		case GlyphExplored:
			return styles.Explored.Render(s)
		}
		return styles.Label.Render(s)
	})
}

// Glyph returns the glyph drawn for c.
func Glyph(g *gridastar.Grid, c gridastar.Cell, onPath bool, opts Options) rune {
	switch {
	case g.Blocked(c):
		return GlyphBlocked
	case onPath:
		return GlyphPath
	case opts.MarkExplored && g.State(c) == gridastar.Known:
		return GlyphExplored
	}
	return GlyphOpen
}

// draw lays the grid out; paint wraps each glyph or label (label glyph 0).
func draw(g *gridastar.Grid, path []gridastar.Cell, opts Options, paint func(rune, string) string) string {
	dim := g.Dim()
	onPath := make(map[gridastar.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	width := len(strconv.Itoa(dim - 1))

	var b strings.Builder
	if !opts.HideLabels {
		b.WriteString(strings.Repeat(" ", width))
		for x := 0; x < dim; x++ {
			b.WriteByte(' ')
			b.WriteString(paint(0, strconv.Itoa(x%10)))
		}
		b.WriteByte('\n')
	}
	for y := 0; y < dim; y++ {
		if !opts.HideLabels {
			label := strconv.Itoa(y)
			b.WriteString(paint(0, strings.Repeat(" ", width-len(label))+label))
			b.WriteByte(' ')
		}
		for x := 0; x < dim; x++ {
			c := gridastar.Cell{X: x, Y: y}
			glyph := Glyph(g, c, onPath[c], opts)
			b.WriteString(paint(glyph, string(glyph)))
			if x < dim-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
