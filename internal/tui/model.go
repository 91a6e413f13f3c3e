// Package tui presents a viewer session in the terminal with Bubbletea.
package tui

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pview/internal/logger"
	"github.com/alexisbeaulieu97/pview/internal/session"
	"github.com/alexisbeaulieu97/pview/internal/watch"
)

// ChangeMsg reports that a watched palette source changed on disk.
type ChangeMsg watch.Change

// Options configures the terminal presenter.
type Options struct {
	// Margin and Gutter are in drawing units.
	Margin int
	Gutter int
	// Changes, when set, triggers a reload of the palette on screen.
	Changes <-chan watch.Change
	Logger  *logger.Logger
}

// Model contains the Bubbletea state for the palette viewer.
type Model struct {
	session *session.Session
	opts    Options
	keys    keyMap
	help    help.Model

	width  int
	height int

	notice   string
	err      error
	quitting bool
}

// NewModel wraps an initialised session.
func NewModel(s *session.Session, opts Options) Model {
	return Model{
		session: s,
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init starts listening for source changes when a watcher is attached.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.opts.Changes)
}

// Err returns the fatal error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Session exposes the underlying viewer session.
func (m Model) Session() *session.Session {
	return m.session
}

// Spacing is the frame geometry for the canvas: the last canvas row holds
// the footer.
func (m Model) Spacing() session.Spacing {
	return session.Spacing{
		Margin:       m.opts.Margin,
		BottomMargin: m.opts.Margin + 1,
		Gutter:       m.opts.Gutter,
		FooterOffset: 1,
		LabelSize:    1,
		FooterSize:   1,
	}
}

// Viewport converts the terminal size into drawing units, keeping the rows
// below for the status line.
func (m Model) Viewport() session.Viewport {
	w := m.width / unitColumns
	h := m.height - lipgloss.Height(m.statusLine())
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return session.Viewport{Width: w, Height: h}
}

func (m Model) isCurrent(path string) bool {
	current, err := filepath.Abs(m.session.Entry().ID)
	if err != nil {
		return false
	}
	return filepath.Clean(path) == current
}

func waitForChange(ch <-chan watch.Change) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return ChangeMsg(change)
	}
}

// Run starts the viewer on the alternate screen and blocks until it exits.
// A fatal load failure ends the program and is returned.
func Run(ctx context.Context, s *session.Session, opts Options) error {
	p := tea.NewProgram(NewModel(s, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
