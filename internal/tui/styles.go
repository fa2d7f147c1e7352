package tui

import "github.com/charmbracelet/lipgloss"

const (
	// wideLayout is the terminal width from which the panel and preview sit
	// side by side.
	wideLayout = 100
	panelWidth = 34
	minWidth   = 40
)

var (
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
	summaryStyle = lipgloss.NewStyle().MarginTop(1)
	helpStyle    = lipgloss.NewStyle().MarginTop(1)
)
