package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pview/internal/session"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ChangeMsg:
		next := waitForChange(m.opts.Changes)
		if !m.isCurrent(msg.Path) {
			return m, next
		}
		m.opts.Logger.WithFields(map[string]any{"path": msg.Path, "removed": msg.Removed}).Info("reloading changed palette")
		if cmd := m.handleResult(m.session.Reload()); cmd != nil {
			return m, cmd
		}
		return m, next
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m.apply(session.NextPalette)
	case key.Matches(msg, m.keys.Previous):
		return m.apply(session.PreviousPalette)
	case key.Matches(msg, m.keys.Theme):
		return m.apply(session.ToggleTheme)
	}
	return m, nil
}

func (m Model) apply(ev session.Event) (tea.Model, tea.Cmd) {
	cmd := m.handleResult(m.session.Apply(ev))
	return m, cmd
}

// handleResult records the outcome of a session transition. Fatal failures
// stop the program; the rest become a notice on the status line.
func (m *Model) handleResult(err error) tea.Cmd {
	if err == nil {
		m.notice = ""
		return nil
	}

	var failure *session.LoadFailure
	if errors.As(err, &failure) && !failure.Fatal {
		m.notice = err.Error()
		return nil
	}

	m.err = err
	m.quitting = true
	return tea.Quit
}
