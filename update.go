package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"connectors/diagram"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampPan()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == ModeConfirm {
			return m.handleConfirm(msg.String())
		}
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m model) handleKey(key string) (tea.Model, tea.Cmd) {
	if m.help {
		switch key {
		case "?", "esc", "q":
			m.help = false
		}
		return m, nil
	}

	m.clearMessages()
	switch key {
	case "q":
		if m.config.Confirmations && len(m.state.Boxes()) > 0 {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "a", "n":
		box := m.state.Add(diagram.DefaultOrigin)
		m.logger.Debug("add node", "box", box.ID().Short())
	case "d", "x", "delete", "backspace":
		m.state.Remove()
	case "]":
		m.state.MoveUp()
	case "[":
		m.state.MoveDown()
	case "r":
		if m.config.Confirmations && len(m.state.Boxes()) > 0 {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmReset
			return m, nil
		}
		m.reset()
	case "p":
		m.export(ExportPNG)
	case "t":
		m.export(ExportTXT)
	case "c":
		m.copyToClipboard()
	case "esc":
	default:
		m.handlePan(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m model) handleConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y", "enter":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmReset:
			m.reset()
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *model) reset() {
	m.state.Clear()
	m.held = gestureNone
	m.panX, m.panY = 0, 0
	m.successMessage = "Canvas cleared"
}

// handleMouse turns terminal mouse reports into state gestures. A plain left
// press selects and drags; a right press, or a left press with a modifier,
// draws a connection.
func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.mode != ModeNormal || m.help {
		return
	}
	at := cell{X: msg.X, Y: msg.Y}
	if m.held == gestureNone && at.Y >= m.canvasHeight() {
		return
	}
	p := m.toModel(at)

	switch msg.Type {
	case tea.MouseLeft, tea.MouseRight:
		// Some terminals repeat the press while the button is held.
		if m.held != gestureNone {
			m.dragTo(msg)
			return
		}
		m.clearMessages()
		if msg.Type == tea.MouseRight || msg.Shift || msg.Ctrl || msg.Alt {
			m.held = gestureConnect
			if m.state.StartConnecting(p) {
				m.logger.Debug("connect started", "x", p.X, "y", p.Y)
			}
			return
		}
		m.held = gestureMove
		if m.state.Select(p) {
			m.logger.Debug("selected", "kind", m.state.Selected().Kind.String(), "x", p.X, "y", p.Y)
		}
	case tea.MouseMotion:
		m.dragTo(msg)
	case tea.MouseWheelUp:
		m.handlePan("up", 1)
	case tea.MouseWheelDown:
		m.handlePan("down", 1)
	case tea.MouseRelease:
		m.state.StopMoving()
		if m.state.IsConnecting() {
			before := len(m.state.Connectors())
			m.state.StopConnecting(p)
			if len(m.state.Connectors()) > before {
				m.logger.Debug("connector added")
			}
		}
		m.held = gestureNone
	}
}

func (m *model) dragTo(msg tea.MouseMsg) {
	p := m.toModel(cell{X: msg.X, Y: msg.Y})
	switch m.held {
	case gestureMove:
		m.state.MoveSelection(p)
	case gestureConnect:
		m.state.ExtendConnection(p)
	case gestureNone:
	}
}
