// Package tess converts buffered path events and point streams into
// filled or stroked triangle geometry. Curves are flattened adaptively,
// fills are triangulated by ear clipping, and strokes are built from
// thick polyline parts. Per-point attributes (color, texture coordinate)
// survive tessellation onto the generated vertices.
package tess

import "github.com/gogpu/draw/geom"

// DefaultTolerance is the maximum distance a flattened curve may deviate
// from the true curve, in output units.
const DefaultTolerance = 0.25

// maxFlattenDepth bounds the recursive curve subdivision.
const maxFlattenDepth = 16

// PathEvent is one step of a path outline.
type PathEvent interface {
	isPathEvent()
}

// EventBegin starts a new sub-path at a point.
type EventBegin struct {
	At geom.Vec2
}

// EventLine is a straight segment.
type EventLine struct {
	From, To geom.Vec2
}

// EventQuadratic is a quadratic Bezier segment.
type EventQuadratic struct {
	From, Ctrl, To geom.Vec2
}

// EventCubic is a cubic Bezier segment.
type EventCubic struct {
	From, Ctrl1, Ctrl2, To geom.Vec2
}

// EventEnd terminates the current sub-path. Close indicates the outline
// loops back to the sub-path's first point.
type EventEnd struct {
	Last, First geom.Vec2
	Close       bool
}

func (EventBegin) isPathEvent()     {}
func (EventLine) isPathEvent()      {}
func (EventQuadratic) isPathEvent() {}
func (EventCubic) isPathEvent()     {}
func (EventEnd) isPathEvent()       {}

// Contour is one flattened sub-path.
type Contour struct {
	Points []geom.Vec2
	Closed bool
}

// FlattenEvents reduces a path event sequence to polygonal contours,
// subdividing curve segments until they deviate from their chord by less
// than tolerance. A non-positive tolerance uses DefaultTolerance.
func FlattenEvents(events []PathEvent, tolerance float32) []Contour {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	var contours []Contour
	var cur []geom.Vec2
	flush := func(closed bool) {
		if len(cur) > 0 {
			contours = append(contours, Contour{Points: cur, Closed: closed})
			cur = nil
		}
	}
	for _, ev := range events {
		switch e := ev.(type) {
		case EventBegin:
			flush(false)
			cur = append(cur, e.At)
		case EventLine:
			cur = append(cur, e.To)
		case EventQuadratic:
			cur = flattenQuadratic(cur, e.From, e.Ctrl, e.To, tolerance, 0)
			cur = append(cur, e.To)
		case EventCubic:
			cur = flattenCubic(cur, e.From, e.Ctrl1, e.Ctrl2, e.To, tolerance, 0)
			cur = append(cur, e.To)
		case EventEnd:
			flush(e.Close)
		}
	}
	flush(false)
	return contours
}

// flattenQuadratic appends intermediate points of the curve (excluding
// both endpoints) using recursive de Casteljau subdivision.
func flattenQuadratic(dst []geom.Vec2, p0, c, p1 geom.Vec2, tolerance float32, depth int) []geom.Vec2 {
	if depth >= maxFlattenDepth || pointToLineDistance(c, p0, p1) <= tolerance {
		return dst
	}
	l := p0.Lerp(c, 0.5)
	r := c.Lerp(p1, 0.5)
	mid := l.Lerp(r, 0.5)
	dst = flattenQuadratic(dst, p0, l, mid, tolerance, depth+1)
	dst = append(dst, mid)
	return flattenQuadratic(dst, mid, r, p1, tolerance, depth+1)
}

// flattenCubic appends intermediate points of the curve (excluding both
// endpoints) using recursive de Casteljau subdivision.
func flattenCubic(dst []geom.Vec2, p0, c1, c2, p1 geom.Vec2, tolerance float32, depth int) []geom.Vec2 {
	if depth >= maxFlattenDepth {
		return dst
	}
	d1 := pointToLineDistance(c1, p0, p1)
	d2 := pointToLineDistance(c2, p0, p1)
	if d1 <= tolerance && d2 <= tolerance {
		return dst
	}
	l1 := p0.Lerp(c1, 0.5)
	m := c1.Lerp(c2, 0.5)
	r2 := c2.Lerp(p1, 0.5)
	l2 := l1.Lerp(m, 0.5)
	r1 := m.Lerp(r2, 0.5)
	mid := l2.Lerp(r1, 0.5)
	dst = flattenCubic(dst, p0, l1, l2, mid, tolerance, depth+1)
	dst = append(dst, mid)
	return flattenCubic(dst, mid, r1, r2, p1, tolerance, depth+1)
}

// pointToLineDistance returns the distance from p to the line through a
// and b. Coincident a and b degrade to point distance.
func pointToLineDistance(p, a, b geom.Vec2) float32 {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Sub(a.Add(ab.Mul(t))).Length()
}
