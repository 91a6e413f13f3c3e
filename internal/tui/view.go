package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/pview/internal/draw"
)

// View renders the current frame plus a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return mutedStyle.Render("loading…")
	}

	status := m.statusLine()
	if m.Viewport().Height == 0 {
		return status
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.canvas().Render(), status)
}

func (m Model) canvas() *canvas {
	vp := m.Viewport()
	c := newCanvas(vp.Width, vp.Height)
	draw.Frame(c, m.session.Frame(vp, m.Spacing()))
	return c
}

// statusLine is the text under the canvas. Messages are kept to one row.
func (m Model) statusLine() string {
	switch {
	case m.err != nil:
		return failureStyle.Render(m.oneRow(m.err.Error()))
	case m.notice != "":
		return noticeStyle.Render(m.oneRow(m.notice))
	default:
		return m.help.View(m.keys)
	}
}

func (m Model) oneRow(msg string) string {
	msg = strings.Join(strings.Fields(msg), " ")
	if m.width <= 0 {
		return msg
	}
	return runewidth.Truncate(msg, m.width, "…")
}
