package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"connectors/diagram"
	"connectors/geometry"
)

type cellStyle int

const (
	styleNone cellStyle = iota
	styleGrid
	styleBox
	styleBoxSelected
	styleConnector
	styleConnectorSelected
	stylePreview
	styleLabel
)

var cellStyles = map[cellStyle]lipgloss.Style{
	styleGrid:              lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	styleBox:               lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	styleBoxSelected:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	styleConnector:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	styleConnectorSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	stylePreview:           lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	styleLabel:             lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

// terminalGridStep spaces grid dots so they stay sparse at cell resolution.
const terminalGridStep = 4 * diagram.GridPitch

// Canvas is a grid of styled runes the size of the terminal view.
type Canvas struct {
	width  int
	height int
	panX   int
	panY   int
	runes  [][]rune
	styles [][]cellStyle
}

func NewCanvas(width, height, panX, panY int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		panX:   panX,
		panY:   panY,
		runes:  make([][]rune, height),
		styles: make([][]cellStyle, height),
	}
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", width))
		c.styles[y] = make([]cellStyle, width)
	}
	return c
}

func (c *Canvas) isValidPos(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// set writes r at a model-space cell, shifted by the pan offset.
func (c *Canvas) set(at cell, r rune, style cellStyle) {
	x, y := at.X-c.panX, at.Y-c.panY
	if !c.isValidPos(x, y) {
		return
	}
	c.runes[y][x] = r
	c.styles[y][x] = style
}

func (c *Canvas) at(x, y int) rune {
	if !c.isValidPos(x, y) {
		return 0
	}
	return c.runes[y][x]
}

// Render draws a state snapshot: grid, connectors, boxes back to front and
// then the rubber band of a connection in progress.
func (c *Canvas) Render(state *diagram.State, showGrid bool) {
	if showGrid {
		c.drawGrid()
	}
	for _, node := range state.Renders() {
		switch node.Kind {
		case diagram.KindConnector:
			style := styleConnector
			if node.Selected {
				style = styleConnectorSelected
			}
			c.drawConnector(node.Shape.Line, style)
			if to, ok := state.Box(node.Connector.To); ok {
				c.drawArrow(node.Shape.Line, to.Rect(), style)
			}
		case diagram.KindBox:
			style := styleBox
			if node.Selected || node.Target {
				style = styleBoxSelected
			}
			c.drawBox(node.Shape.Box.Rect, node.Box.Short(), style)
		}
	}
	if line, ok := state.ActiveConnection(); ok {
		c.drawConnector(line, stylePreview)
	}
}

func (c *Canvas) drawGrid() {
	for y := 0; y < c.height; y++ {
		if !spansMultiple(float64(y+c.panY)*cellHeight, cellHeight, terminalGridStep) {
			continue
		}
		for x := 0; x < c.width; x++ {
			if spansMultiple(float64(x+c.panX)*cellWidth, cellWidth, terminalGridStep) {
				c.runes[y][x] = '·'
				c.styles[y][x] = styleGrid
			}
		}
	}
}

// spansMultiple reports whether [start, start+size) contains a multiple of
// step.
func spansMultiple(start, size, step float64) bool {
	next := math.Ceil(start/step) * step
	return next < start+size
}

func (c *Canvas) drawConnector(line geometry.Line, style cellStyle) {
	r := lineRune(line)
	for _, at := range sampleCells(line) {
		c.set(at, r, style)
	}
}

// drawArrow marks where the line enters its target box.
func (c *Canvas) drawArrow(line geometry.Line, target geometry.Rect, style cellStyle) {
	cells := sampleCells(line)
	targetFrom := toCell(target.Origin)
	targetTo := toCell(geometry.Pt(target.MaxX()-1, target.MaxY()-1))
	for i := len(cells) - 1; i >= 0; i-- {
		at := cells[i]
		inside := at.X >= targetFrom.X && at.X <= targetTo.X &&
			at.Y >= targetFrom.Y && at.Y <= targetTo.Y
		if !inside {
			c.set(at, arrowRune(line), style)
			return
		}
	}
}

// sampleCells walks the segment at half-cell steps and returns each cell it
// passes through once, in order.
func sampleCells(line geometry.Line) []cell {
	step := math.Min(cellWidth, cellHeight) / 2
	n := int(math.Ceil(line.Length()/step)) + 1
	var out []cell
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		p := geometry.Pt(
			line.From.X+(line.To.X-line.From.X)*t,
			line.From.Y+(line.To.Y-line.From.Y)*t,
		)
		at := toCell(p)
		if len(out) == 0 || out[len(out)-1] != at {
			out = append(out, at)
		}
	}
	return out
}

// lineRune picks a stroke character from the slope measured in cells.
func lineRune(line geometry.Line) rune {
	dx := (line.To.X - line.From.X) / cellWidth
	dy := (line.To.Y - line.From.Y) / cellHeight
	switch {
	case math.Abs(dy) <= math.Abs(dx)/2:
		return '─'
	case math.Abs(dx) <= math.Abs(dy)/2:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func arrowRune(line geometry.Line) rune {
	dx := (line.To.X - line.From.X) / cellWidth
	dy := (line.To.Y - line.From.Y) / cellHeight
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return '▶'
		}
		return '◀'
	}
	if dy >= 0 {
		return '▼'
	}
	return '▲'
}

func (c *Canvas) drawBox(rect geometry.Rect, label string, style cellStyle) {
	from := toCell(rect.Origin)
	to := toCell(geometry.Pt(rect.MaxX()-1, rect.MaxY()-1))

	for y := from.Y; y <= to.Y; y++ {
		for x := from.X; x <= to.X; x++ {
			var r rune
			switch {
			case x == from.X && y == from.Y:
				r = '╭'
			case x == to.X && y == from.Y:
				r = '╮'
			case x == from.X && y == to.Y:
				r = '╰'
			case x == to.X && y == to.Y:
				r = '╯'
			case y == from.Y || y == to.Y:
				r = '─'
			case x == from.X || x == to.X:
				r = '│'
			default:
				r = ' '
			}
			c.set(cell{X: x, Y: y}, r, style)
		}
	}

	inner := to.X - from.X - 1
	if inner < 1 || to.Y-from.Y < 2 {
		return
	}
	if len(label) > inner {
		label = label[:inner]
	}
	mid := (from.Y + to.Y) / 2
	start := from.X + 1 + (inner-len(label))/2
	for i, r := range label {
		c.set(cell{X: start + i, Y: mid}, r, styleLabel)
	}
}

// Lines returns the canvas as plain text.
func (c *Canvas) Lines() []string {
	out := make([]string, c.height)
	for y, row := range c.runes {
		out[y] = string(row)
	}
	return out
}

// StyledLines returns the canvas with lipgloss colors applied per run of
// equally styled cells.
func (c *Canvas) StyledLines() []string {
	out := make([]string, c.height)
	for y, row := range c.runes {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && c.styles[y][x] == c.styles[y][start] {
				continue
			}
			run := string(row[start:x])
			if style, ok := cellStyles[c.styles[y][start]]; ok {
				run = style.Render(run)
			}
			b.WriteString(run)
			start = x
		}
		out[y] = b.String()
	}
	return out
}

// renderWholeCanvas draws the full canvas extent, independent of the
// terminal view.
func renderWholeCanvas(state *diagram.State, showGrid bool) *Canvas {
	extent := toCell(geometry.Pt(state.Width(), state.Height()))
	c := NewCanvas(extent.X+1, extent.Y+1, 0, 0)
	c.Render(state, showGrid)
	return c
}
