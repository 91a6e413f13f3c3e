package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pview/internal/palette"
)

var (
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func hexColor(c palette.Color) lipgloss.Color {
	return lipgloss.Color(c.String())
}

func cellStyle(bg, fg palette.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(hexColor(bg)).Foreground(hexColor(fg))
}
