// Package diagram owns the box/connector graph behind the canvas: node
// identity and shape, hit-testing, selection and the drag/connect
// interaction state machine.
package diagram

import (
	"github.com/google/uuid"

	"connectors/geometry"
)

const (
	DefaultBoxWidth       = 100.0
	DefaultBoxHeight      = 66.0
	BoxCornerRadius       = 4.0
	BoxStrokeWidth        = 1.0
	DefaultConnectorWidth = 2.0
)

// DefaultOrigin is where the add-node command places new boxes.
var DefaultOrigin = geometry.Pt(60, 60)

// Kind tells boxes and connectors apart in selections and render output.
type Kind int

const (
	KindNone Kind = iota
	KindBox
	KindConnector
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBox:
		return "box"
	case KindConnector:
		return "connector"
	default:
		return "unknown"
	}
}

// BoxID identifies a box for its whole lifetime.
type BoxID uuid.UUID

// NewBoxID returns a fresh random ID.
func NewBoxID() BoxID {
	return BoxID(uuid.New())
}

func (id BoxID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first eight hex digits of the ID, for labels and logs.
func (id BoxID) Short() string {
	return id.String()[:8]
}

// Box is a fixed-size rectangle positioned by its origin.
type Box struct {
	id     BoxID
	origin geometry.Point
	size   geometry.Size
}

func newBox(origin geometry.Point) *Box {
	return &Box{
		id:     NewBoxID(),
		origin: origin,
		size:   geometry.Size{Width: DefaultBoxWidth, Height: DefaultBoxHeight},
	}
}

func (b *Box) ID() BoxID              { return b.id }
func (b *Box) Origin() geometry.Point { return b.origin }

// Rect returns the box bounds.
func (b *Box) Rect() geometry.Rect {
	return geometry.Rect{Origin: b.origin, Size: b.size}
}

// Anchor is where connectors attach: the center of the box.
func (b *Box) Anchor() geometry.Point {
	return b.Rect().Center()
}

// Shape returns the rounded outline the box is drawn and hit-tested with.
func (b *Box) Shape() geometry.RoundedRect {
	return geometry.RoundedRect{Rect: b.Rect(), Radius: BoxCornerRadius}
}

// Contains reports whether p hits the box.
func (b *Box) Contains(p geometry.Point) bool {
	return b.Shape().Contains(p)
}

// MoveTo sets a new origin.
func (b *Box) MoveTo(origin geometry.Point) {
	b.origin = origin
}

// ConnectorKey is the identity of a connector: its ordered endpoint pair.
type ConnectorKey struct {
	From, To BoxID
}

// Connector is a directed edge between two boxes. It holds box handles,
// not boxes; its geometry is resolved against a State on every read.
type Connector struct {
	From  BoxID
	To    BoxID
	Width float64
}

// Key returns the connector's identity.
func (c Connector) Key() ConnectorKey {
	return ConnectorKey{From: c.From, To: c.To}
}

// Touches reports whether id is either endpoint.
func (c Connector) Touches(id BoxID) bool {
	return c.From == id || c.To == id
}
