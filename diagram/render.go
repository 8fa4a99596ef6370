package diagram

import "connectors/geometry"

const (
	MinCanvasWidth  = 500.0
	MinCanvasHeight = 500.0
	CanvasMargin    = 10.0
	GridPitch       = 20.0
)

// Shape is the drawable outline of a render node. Boxes fill Box, connectors
// fill Line.
type Shape struct {
	Box  geometry.RoundedRect
	Line geometry.Line
}

// RenderNode is one item of the render snapshot.
type RenderNode struct {
	Kind     Kind
	Selected bool
	// Target marks the box an in-progress connection would attach to.
	Target bool
	Shape  Shape
	// Box is set for box nodes, Connector for connector nodes.
	Box       BoxID
	Connector ConnectorKey
}

// Renders returns the drawing list in paint order: connectors first, then
// boxes from back to front so the front-most box is painted last. Shapes are
// computed from current positions on every call.
func (s *State) Renders() []RenderNode {
	out := make([]RenderNode, 0, len(s.conns)+len(s.boxes))
	for _, c := range s.conns {
		line, ok := s.ConnectorLine(c)
		if !ok {
			continue
		}
		out = append(out, RenderNode{
			Kind:      KindConnector,
			Selected:  s.selected.IsConnector(c.Key()),
			Shape:     Shape{Line: line},
			Connector: c.Key(),
		})
	}

	candidate, hasCandidate := s.Candidate()
	for i := len(s.boxes) - 1; i >= 0; i-- {
		b := s.boxes[i]
		out = append(out, RenderNode{
			Kind:     KindBox,
			Selected: s.selected.IsBox(b.id),
			Target:   hasCandidate && candidate == b.id,
			Shape:    Shape{Box: b.Shape()},
			Box:      b.id,
		})
	}
	return out
}

// MaxX is the right-most box edge, or the minimum canvas width when there
// are no boxes.
func (s *State) MaxX() float64 {
	if len(s.boxes) == 0 {
		return MinCanvasWidth
	}
	maxX := s.boxes[0].Rect().MaxX()
	for _, b := range s.boxes[1:] {
		maxX = max(maxX, b.Rect().MaxX())
	}
	return maxX
}

// MaxY is the bottom-most box edge, or the minimum canvas height when there
// are no boxes.
func (s *State) MaxY() float64 {
	if len(s.boxes) == 0 {
		return MinCanvasHeight
	}
	maxY := s.boxes[0].Rect().MaxY()
	for _, b := range s.boxes[1:] {
		maxY = max(maxY, b.Rect().MaxY())
	}
	return maxY
}

// Width is how wide the drawing surface must be to show every box.
func (s *State) Width() float64 {
	return extent(s.MaxX(), MinCanvasWidth)
}

// Height is how tall the drawing surface must be to show every box.
func (s *State) Height() float64 {
	return extent(s.MaxY(), MinCanvasHeight)
}

func extent(maxEdge, minimum float64) float64 {
	if maxEdge < minimum+CanvasMargin {
		return minimum
	}
	return maxEdge + CanvasMargin
}
