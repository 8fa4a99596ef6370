package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := R(60, 60, 100, 66)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin corner", Pt(60, 60), true},
		{"interior", Pt(80, 80), true},
		{"last column", Pt(159.9, 100), true},
		{"max x edge", Pt(160, 100), false},
		{"max y edge", Pt(100, 126), false},
		{"left of rect", Pt(59.9, 100), false},
		{"above rect", Pt(100, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRectCenter(t *testing.T) {
	assert.Equal(t, Pt(110, 93), R(60, 60, 100, 66).Center())
}

func TestRoundedRectContains(t *testing.T) {
	rr := RoundedRect{Rect: R(0, 0, 100, 66), Radius: 4}

	assert.True(t, rr.Contains(Pt(50, 33)), "center")
	assert.True(t, rr.Contains(Pt(0, 33)), "left edge midpoint")
	assert.True(t, rr.Contains(Pt(4, 4)), "corner circle center")
	assert.False(t, rr.Contains(Pt(0.2, 0.2)), "outside top-left arc")
	assert.False(t, rr.Contains(Pt(99.8, 65.8)), "outside bottom-right arc")
	assert.True(t, rr.Contains(Pt(1.5, 1.5)), "inside top-left arc")
	assert.False(t, rr.Contains(Pt(120, 33)), "outside rect")
}

func TestRoundedRectRadiusClamp(t *testing.T) {
	rr := RoundedRect{Rect: R(0, 0, 10, 10), Radius: 50}
	assert.True(t, rr.Contains(Pt(5, 5)))
	assert.False(t, rr.Contains(Pt(0.5, 0.5)))

	square := RoundedRect{Rect: R(0, 0, 10, 10), Radius: -1}
	assert.True(t, square.Contains(Pt(0, 0)))
}

func TestLineContainsCapsule(t *testing.T) {
	l := Line{From: Pt(0, 0), To: Pt(100, 0), Width: 2}

	assert.True(t, l.Contains(Pt(50, 0)))
	assert.True(t, l.Contains(Pt(50, 1)), "on the stroke edge")
	assert.False(t, l.Contains(Pt(50, 1.5)))
	assert.True(t, l.Contains(Pt(100.5, 0.5)), "inside round cap")
	assert.False(t, l.Contains(Pt(101, 1)), "outside round cap corner")
	assert.False(t, l.Contains(Pt(-2, 0)))
}

func TestLineContainsDiagonal(t *testing.T) {
	l := Line{From: Pt(0, 0), To: Pt(100, 100), Width: 4}
	assert.True(t, l.Contains(Pt(51, 49)))
	assert.False(t, l.Contains(Pt(55, 45)))
}

func TestLineOutline(t *testing.T) {
	l := Line{From: Pt(0, 0), To: Pt(10, 0), Width: 2}
	q := l.Outline()
	assert.Equal(t, [4]Point{Pt(0, 1), Pt(10, 1), Pt(10, -1), Pt(0, -1)}, q)

	dot := Line{From: Pt(5, 5), To: Pt(5, 5), Width: 2}.Outline()
	assert.Equal(t, Pt(5, 6), dot[0])
	assert.Equal(t, Pt(5, 4), dot[3])
}

func TestClosestPointOnSegment(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	assert.Equal(t, Pt(5, 0), ClosestPointOnSegment(Pt(5, 7), a, b))
	assert.Equal(t, a, ClosestPointOnSegment(Pt(-3, 4), a, b))
	assert.Equal(t, b, ClosestPointOnSegment(Pt(20, 1), a, b))
	assert.Equal(t, a, ClosestPointOnSegment(Pt(3, 4), a, a))
	assert.InDelta(t, 5.0, DistanceToSegment(Pt(3, 4), a, a), 1e-9)
	assert.InDelta(t, math.Sqrt2, DistanceToSegment(Pt(11, 1), a, b), 1e-9)
}
