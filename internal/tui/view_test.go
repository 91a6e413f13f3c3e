package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pview/internal/catalog"
	"github.com/alexisbeaulieu97/pview/internal/palette"
	"github.com/alexisbeaulieu97/pview/internal/session"
)

func TestViewBeforeFirstResize(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, session.PolicyFatal)
	assert.Contains(t, m.View(), "loading")
}

func TestViewDrawsSwatchesAndFooter(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, session.PolicyFatal)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	text := m.canvas().Text()
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 23)

	// 2x2 grid of 11 unit swatches; labels sit on the middle row of each.
	assert.Equal(t, "000000", lines[5][8:14])
	assert.Equal(t, "FFFFFF", lines[5][30:36])
	assert.Equal(t, "FF0000", lines[16][8:14])
	assert.True(t, strings.HasPrefix(lines[22], "Total Colors: 4"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[22], " "), "a.hex"))

	view := m.View()
	assert.Contains(t, view, "Total Colors: 4")
	assert.Contains(t, view, "next")
}

func TestCanvasUnits(t *testing.T) {
	t.Parallel()

	c := newCanvas(4, 3)
	bg := palette.MustHex("F5F5F5")
	red := palette.MustHex("FF0000")
	c.Clear(bg)
	c.DrawSquare(1, 1, 2, red)

	assert.Equal(t, bg, c.cells[1][1].bg)
	assert.Equal(t, red, c.cells[1][2].bg)
	assert.Equal(t, red, c.cells[2][5].bg)
	assert.Equal(t, bg, c.cells[2][6].bg)

	w, h := c.MeasureText("FFFFFF", 12)
	assert.Equal(t, 3, w)
	assert.Equal(t, 1, h)
	w, _ = c.MeasureText("abc", 12)
	assert.Equal(t, 2, w)

	c.DrawText("hi", 1, 0, 1, red)
	assert.Equal(t, "  hi    ", strings.Split(c.Text(), "\n")[0])
	assert.Equal(t, bg, c.cells[0][2].bg, "text keeps the background")
	assert.Equal(t, red, c.cells[0][2].fg)

	// Out of range drawing is clipped.
	c.DrawSquare(3, 2, 5, red)
	c.DrawText("overflow", 3, 2, 1, red)
	c.DrawText("nowhere", 0, 9, 1, red)
	assert.Len(t, c.cells[2], 8)
}

func TestCanvasWideRunes(t *testing.T) {
	t.Parallel()

	c := newCanvas(2, 3)
	bg := palette.MustHex("181818")
	fg := palette.MustHex("FFFFFF")
	c.Clear(bg)

	w, _ := c.MeasureText("色a", 1)
	assert.Equal(t, 2, w, "a wide rune counts two columns")

	c.DrawText("色a", 0, 0, 1, fg)
	c.DrawText("色色色", 0, 1, 1, fg)
	c.DrawText("a色", 0, 2, 1, fg)
	c.DrawText("b", 1, 2, 1, fg)

	lines := strings.Split(c.Text(), "\n")
	assert.Equal(t, "色a ", lines[0])
	assert.Equal(t, "色色", lines[1], "runes past the row end are clipped")
	assert.Equal(t, "a b ", lines[2], "a split wide rune is blanked")
	for i, line := range lines {
		assert.Equal(t, 4, runewidth.StringWidth(line), "line %d", i)
	}
}

func TestViewWithWideSourceNameFitsTerminal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "色彩パレット一覧.hex"), []byte("000000 FFFFFF FF0000"), 0o644))
	cat, err := catalog.Discover(dir, catalog.Options{})
	require.NoError(t, err)
	s, err := session.New(cat, palette.NewStore(palette.ParseOptions{}, nil), session.Options{})
	require.NoError(t, err)

	m, _ := update(t, NewModel(s, Options{}), tea.WindowSizeMsg{Width: 60, Height: 20})

	lines := strings.Split(m.canvas().Text(), "\n")
	footer := lines[len(lines)-1]
	assert.Contains(t, footer, "色彩パレット一覧.hex")
	for i, line := range lines {
		assert.Equal(t, 60, runewidth.StringWidth(line), "canvas line %d", i)
	}

	view := m.View()
	assert.Equal(t, 60, lipgloss.Width(view))
	assert.Equal(t, 20, lipgloss.Height(view))
}

func TestViewWithFullHelpFitsTerminal(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, session.PolicyFatal)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	require.Equal(t, 24, lipgloss.Height(m.View()))

	m, _ = update(t, m, runes("?"))
	require.True(t, m.help.ShowAll)

	status := lipgloss.Height(m.statusLine())
	require.Greater(t, status, 1, "full help spans several rows")
	assert.Equal(t, 24-status, m.Viewport().Height)
	assert.LessOrEqual(t, lipgloss.Height(m.View()), 24)
	assert.Contains(t, m.View(), "Total Colors: 4")
}

func TestViewTruncatesLongNotice(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, session.PolicyKeep)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 24, Height: 12})
	m.notice = "load b.hex: palette source unreadable: open b.hex: no such file or directory"

	status := m.statusLine()
	assert.Equal(t, 1, lipgloss.Height(status))
	assert.LessOrEqual(t, lipgloss.Width(status), 24)
	assert.Equal(t, 11, m.Viewport().Height)
	assert.LessOrEqual(t, lipgloss.Height(m.View()), 12)
}
