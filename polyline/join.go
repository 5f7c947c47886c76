package polyline

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/draw/geom"
)

// Turn is the bend direction of a polyline at an interior vertex.
type Turn uint8

// Turn directions.
const (
	TurnLeft Turn = iota
	TurnRight
)

// Joiner fills the wedge between two consecutive stroked segments.
//
// a and b are the side-offset corners of the incoming segment's end edge
// (a on the left of the travel direction), il and ir the intersections
// of the left and right offset lines of the two segments, and turn the
// bend direction. The inside of the bend is the side selected by turn.
type Joiner interface {
	JoinTriangles(a, b, il, ir geom.Vec2, turn Turn) []Tri
}

// MiterJoin extends both offset lines to their intersection, producing
// a sharp corner as the quad [a, il, b, ir].
type MiterJoin struct{}

// JoinTriangles implements Joiner.
func (MiterJoin) JoinTriangles(a, b, il, ir geom.Vec2, turn Turn) []Tri {
	return []Tri{
		{a, il, b},
		{b, ir, a},
	}
}

// RoundJoin sweeps a circular arc between the two incoming corners,
// centered on the inside intersection.
type RoundJoin struct {
	// Resolution overrides CircleResolution when positive.
	Resolution int
}

// JoinTriangles implements Joiner.
func (j RoundJoin) JoinTriangles(a, b, il, ir geom.Vec2, turn Turn) []Tri {
	res := j.Resolution
	if res <= 0 {
		res = CircleResolution
	}
	pivot := il
	if turn == TurnRight {
		pivot = ir
	}
	va := a.Sub(pivot)
	vb := b.Sub(pivot)
	a1 := va.Angle()
	sweep := vb.Angle() - a1
	// Take the short way round; the subtended angle never exceeds Pi.
	for sweep > math32.Pi {
		sweep -= 2 * math32.Pi
	}
	for sweep < -math32.Pi {
		sweep += 2 * math32.Pi
	}
	return arcFan(pivot, va.Length(), a1, a1+sweep, res)
}

// BevelJoin cuts the corner flat: a single triangle from the incoming
// corners to the inside intersection.
type BevelJoin struct{}

// JoinTriangles implements Joiner.
func (BevelJoin) JoinTriangles(a, b, il, ir geom.Vec2, turn Turn) []Tri {
	pivot := il
	if turn == TurnRight {
		pivot = ir
	}
	return []Tri{{a, b, pivot}}
}

// JoinStyle selects one of the three join shapes at runtime.
type JoinStyle uint8

// Join styles.
const (
	JoinMiter JoinStyle = iota
	JoinRound
	JoinBevel
)

// String returns the style name.
func (s JoinStyle) String() string {
	switch s {
	case JoinMiter:
		return "Miter"
	case JoinRound:
		return "Round"
	case JoinBevel:
		return "Bevel"
	default:
		return "unknown"
	}
}

// DynamicJoin dispatches to one of the three concrete join
// implementations based on a runtime style value.
type DynamicJoin struct {
	Style JoinStyle
	// Resolution is forwarded to RoundJoin when positive.
	Resolution int
}

// JoinTriangles implements Joiner.
func (j DynamicJoin) JoinTriangles(a, b, il, ir geom.Vec2, turn Turn) []Tri {
	switch j.Style {
	case JoinRound:
		return RoundJoin{Resolution: j.Resolution}.JoinTriangles(a, b, il, ir, turn)
	case JoinBevel:
		return BevelJoin{}.JoinTriangles(a, b, il, ir, turn)
	default:
		return MiterJoin{}.JoinTriangles(a, b, il, ir, turn)
	}
}
