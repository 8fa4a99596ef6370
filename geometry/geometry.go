// Package geometry holds the model-space math used by the diagram: points,
// rectangles, rounded rectangles and thick line segments.
package geometry

import "math"

// Point is a location in model space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle given by its origin (top-left corner in
// a flipped coordinate system) and size.
type Rect struct {
	Origin Point
	Size   Size
}

// R builds a Rect from origin and size components.
func R(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

func (r Rect) MinX() float64 { return r.Origin.X }
func (r Rect) MinY() float64 { return r.Origin.Y }
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: r.Origin.X + r.Size.Width/2,
		Y: r.Origin.Y + r.Size.Height/2,
	}
}

// Contains reports whether p lies inside r. The min edges are inclusive and
// the max edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() &&
		p.Y >= r.MinY() && p.Y < r.MaxY()
}

// RoundedRect is a rectangle whose corners are quarter circles of Radius.
type RoundedRect struct {
	Rect   Rect
	Radius float64
}

// Contains reports whether p lies inside the rounded outline. Points in a
// corner square but outside its quarter circle are excluded.
func (rr RoundedRect) Contains(p Point) bool {
	if !rr.Rect.Contains(p) {
		return false
	}
	r := rr.radius()
	if r == 0 {
		return true
	}

	cx := p.X
	switch {
	case p.X < rr.Rect.MinX()+r:
		cx = rr.Rect.MinX() + r
	case p.X > rr.Rect.MaxX()-r:
		cx = rr.Rect.MaxX() - r
	}
	cy := p.Y
	switch {
	case p.Y < rr.Rect.MinY()+r:
		cy = rr.Rect.MinY() + r
	case p.Y > rr.Rect.MaxY()-r:
		cy = rr.Rect.MaxY() - r
	}
	// Only points in a corner square get pulled away from themselves.
	return p.Distance(Point{X: cx, Y: cy}) <= r
}

// radius clamps the corner radius to half the shorter side.
func (rr RoundedRect) radius() float64 {
	r := rr.Radius
	if r < 0 {
		return 0
	}
	half := math.Min(rr.Rect.Size.Width, rr.Rect.Size.Height) / 2
	if r > half {
		return half
	}
	return r
}

// Line is a straight segment stroked with Width.
type Line struct {
	From, To Point
	Width    float64
}

// Contains reports whether p lies within half the stroke width of the
// segment. The ends are round, so the hit area is a capsule.
func (l Line) Contains(p Point) bool {
	return DistanceToSegment(p, l.From, l.To) <= l.Width/2
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.From.Distance(l.To)
}

// Outline returns the four corners of the stroke as a quadrilateral, walking
// from the From end on one side to the To end and back. A zero-length line
// is treated as horizontal.
func (l Line) Outline() [4]Point {
	half := l.Width / 2
	dx, dy := l.To.X-l.From.X, l.To.Y-l.From.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		dx, dy, length = 1, 0, 1
	}
	n := Point{X: -dy / length * half, Y: dx / length * half}
	return [4]Point{
		l.From.Add(n),
		l.To.Add(n),
		l.To.Sub(n),
		l.From.Sub(n),
	}
}

// DistanceToSegment returns the distance from p to the closest point of the
// segment a-b.
func DistanceToSegment(p, a, b Point) float64 {
	return p.Distance(ClosestPointOnSegment(p, a, b))
}

// ClosestPointOnSegment projects p onto the segment a-b, clamping the
// projection to the segment's ends.
func ClosestPointOnSegment(p, a, b Point) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point{X: a.X + t*dx, Y: a.Y + t*dy}
}
