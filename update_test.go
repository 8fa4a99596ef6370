package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connectors/diagram"
	"connectors/geometry"
)

func newTestModel(t *testing.T, width, height int) model {
	t.Helper()
	config := defaultConfig()
	config.ExportDirectory = t.TempDir()
	m := initialModel(config, nil)
	m.now = func() string { return "test" }
	m.clipboard = func(string) error { return nil }
	return send(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(x, y int, typ tea.MouseEventType) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Type: typ}
}

func TestToModelMapsCellCenters(t *testing.T) {
	m := newTestModel(t, 80, 24)
	assert.Equal(t, geometry.Pt(5, 11), m.toModel(cell{X: 0, Y: 0}))
	assert.Equal(t, geometry.Pt(75, 77), m.toModel(cell{X: 7, Y: 3}))

	m.panX, m.panY = 2, 1
	assert.Equal(t, geometry.Pt(95, 99), m.toModel(cell{X: 7, Y: 3}))
	assert.Equal(t, cell{X: 9, Y: 4}, toCell(m.toModel(cell{X: 7, Y: 3})))
	assert.Equal(t, cell{X: -1, Y: -1}, toCell(geometry.Pt(-0.5, -3)))
}

func TestKeyCommands(t *testing.T) {
	m := newTestModel(t, 80, 24)

	m = send(t, m, key("a"))
	m = send(t, m, key("n"))
	boxes := m.state.Boxes()
	require.Len(t, boxes, 2)
	assert.Equal(t, diagram.DefaultOrigin, boxes[0].Origin())
	assert.True(t, m.state.Selected().IsBox(boxes[0].ID()))

	m = send(t, m, key("["))
	assert.Equal(t, 1, m.state.IndexOf(boxes[0].ID()))
	m = send(t, m, key("]"))
	assert.Equal(t, 0, m.state.IndexOf(boxes[0].ID()))

	m = send(t, m, key("d"))
	require.Len(t, m.state.Boxes(), 1)
	assert.Equal(t, boxes[1].ID(), m.state.Boxes()[0].ID())
	assert.True(t, m.state.Selected().IsNone())
}

func TestMouseDragMovesBox(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = send(t, m, key("a"))
	box := m.state.Boxes()[0]

	m = send(t, m, mouse(7, 3, tea.MouseLeft))
	assert.True(t, m.state.IsDragging())
	m = send(t, m, mouse(17, 5, tea.MouseMotion))
	assert.Equal(t, geometry.Pt(160, 104), box.Origin())

	// A repeated press while held keeps dragging.
	m = send(t, m, mouse(27, 5, tea.MouseLeft))
	assert.Equal(t, geometry.Pt(260, 104), box.Origin())

	m = send(t, m, mouse(27, 5, tea.MouseRelease))
	assert.False(t, m.state.IsDragging())
	m = send(t, m, mouse(40, 10, tea.MouseMotion))
	assert.Equal(t, geometry.Pt(260, 104), box.Origin())
}

func TestMouseConnectsBoxes(t *testing.T) {
	for _, tc := range []struct {
		name  string
		press tea.MouseMsg
	}{
		{"right button", mouse(7, 3, tea.MouseRight)},
		{"shift left", tea.MouseMsg{X: 7, Y: 3, Type: tea.MouseLeft, Shift: true}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, 80, 24)
			m = send(t, m, key("a"))
			first := m.state.Boxes()[0]
			m = send(t, m, mouse(7, 3, tea.MouseLeft))
			m = send(t, m, mouse(27, 3, tea.MouseMotion))
			m = send(t, m, mouse(27, 3, tea.MouseRelease))
			require.Equal(t, geometry.Pt(260, 60), first.Origin())

			m = send(t, m, key("a"))
			second := m.state.Boxes()[0]

			m = send(t, m, tc.press)
			require.True(t, m.state.IsConnecting())
			m = send(t, m, mouse(27, 3, tea.MouseMotion))
			cand, ok := m.state.Candidate()
			require.True(t, ok)
			assert.Equal(t, first.ID(), cand)

			m = send(t, m, mouse(27, 3, tea.MouseRelease))
			assert.False(t, m.state.IsConnecting())
			assert.Equal(t, []diagram.Connector{{From: second.ID(), To: first.ID(), Width: diagram.DefaultConnectorWidth}},
				m.state.Connectors())
		})
	}
}

func TestMouseIgnoresStatusLine(t *testing.T) {
	m := newTestModel(t, 80, 5)
	m = send(t, m, key("a"))
	m = send(t, m, key("d"))
	m = send(t, m, mouse(7, 4, tea.MouseLeft))
	assert.Equal(t, gestureNone, m.held)
}

func TestMouseIgnoredInHelpAndConfirm(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = send(t, m, key("a"))
	m = send(t, m, key("?"))
	m = send(t, m, mouse(7, 3, tea.MouseLeft))
	assert.False(t, m.state.IsDragging())
	assert.Contains(t, m.View(), "Connectors Help")

	m = send(t, m, key("?"))
	m = send(t, m, key("r"))
	require.Equal(t, ModeConfirm, m.mode)
	m = send(t, m, mouse(7, 3, tea.MouseLeft))
	assert.False(t, m.state.IsDragging())
}

func TestResetConfirmation(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = send(t, m, key("a"))

	m = send(t, m, key("r"))
	require.Equal(t, ModeConfirm, m.mode)
	assert.Contains(t, m.View(), "Clear the canvas?")
	m = send(t, m, key("n"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Len(t, m.state.Boxes(), 1)

	m = send(t, m, key("r"))
	m = send(t, m, key("y"))
	assert.Empty(t, m.state.Boxes())
	assert.Equal(t, "Canvas cleared", m.successMessage)
}

func TestResetWithoutConfirmation(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m.config.Confirmations = false
	m = send(t, m, key("a"))
	m = send(t, m, key("r"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.state.Boxes())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, 80, 24)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)

	m = send(t, m, key("a"))
	next, cmd := m.Update(key("q"))
	assert.Nil(t, cmd)
	m = next.(model)
	assert.Equal(t, ConfirmQuit, m.confirmAction)
	_, cmd = m.Update(key("y"))
	require.NotNil(t, cmd)
	_, ok = cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestPanClampsToExtent(t *testing.T) {
	m := newTestModel(t, 20, 10)
	m = send(t, m, key("l"))
	assert.Equal(t, 1, m.panX)
	m = send(t, m, key("L"))
	assert.Equal(t, 3, m.panX)
	for i := 0; i < 5; i++ {
		m = send(t, m, key("h"))
	}
	assert.Equal(t, 0, m.panX)

	for i := 0; i < 100; i++ {
		m = send(t, m, key("j"))
	}
	// 500 units tall is 23 rows; 9 are visible.
	assert.Equal(t, 14, m.panY)

	m = send(t, m, mouse(1, 1, tea.MouseWheelUp))
	assert.Equal(t, 13, m.panY)
}

func TestStatusLine(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = send(t, m, key("a"))
	view := m.View()
	assert.Contains(t, view, "IDLE")
	assert.Contains(t, view, "1 boxes")
	assert.Contains(t, view, "0 connectors")
	assert.Contains(t, view, "500x500")
}

func TestCopyToClipboard(t *testing.T) {
	m := newTestModel(t, 80, 24)
	var got string
	m.clipboard = func(text string) error {
		got = text
		return nil
	}
	m = send(t, m, key("a"))
	m = send(t, m, key("c"))
	assert.Contains(t, got, "╭────────╮")
	assert.Equal(t, "Copied canvas to clipboard", m.successMessage)

	m.clipboard = func(string) error { return errors.New("no clipboard") }
	m = send(t, m, key("c"))
	assert.Equal(t, "copy: no clipboard", m.errorMessage)
	assert.Contains(t, m.View(), "copy: no clipboard")
}
