package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(lipgloss.Color("236"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Background(lipgloss.Color("236"))
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	canvas := NewCanvas(m.canvasWidth(), m.canvasHeight(), m.panX, m.panY)
	canvas.Render(m.state, m.config.ShowGrid)

	var result strings.Builder
	for _, line := range canvas.StyledLines() {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	width := m.canvasWidth()
	switch {
	case m.mode == ModeConfirm:
		return statusStyle.Width(width).Render(m.confirmPrompt())
	case m.errorMessage != "":
		return errorStyle.Width(width).Render(m.errorMessage)
	case m.successMessage != "":
		return successStyle.Width(width).Render(m.successMessage)
	}

	status := fmt.Sprintf(" %s | %d boxes | %d connectors | %.0fx%.0f | ? help",
		m.modeString(),
		len(m.state.Boxes()),
		len(m.state.Connectors()),
		m.state.Width(),
		m.state.Height(),
	)
	return statusStyle.Width(width).Render(status)
}

func (m model) confirmPrompt() string {
	switch m.confirmAction {
	case ConfirmReset:
		return " Clear the canvas? (y/n)"
	case ConfirmQuit:
		return " Quit? (y/n)"
	default:
		return " Are you sure? (y/n)"
	}
}

func (m model) modeString() string {
	switch m.mode {
	case ModeConfirm:
		return "CONFIRM"
	case ModeNormal:
		return strings.ToUpper(m.state.Mode().String())
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"Connectors Help",
		"===============",
		"",
		"Mouse:",
		"------",
		"left click        select a box or connector",
		"left drag         move the selected box",
		"right drag        connect a box to another box",
		"shift+left drag   same as right drag",
		"",
		"Keys:",
		"-----",
		"a, n              add a box",
		"d, x, delete      remove the selection",
		"]                 bring the selected box forward",
		"[                 send the selected box back",
		"r                 clear the canvas",
		"hjkl, arrows      pan (shift pans faster)",
		"p                 export PNG",
		"t                 export text",
		"c                 copy text to clipboard",
		"?                 toggle this help",
		"q                 quit",
	}
	return strings.Join(helpLines, "\n")
}
