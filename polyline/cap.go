// Package polyline builds the triangle geometry of thick polylines:
// per-segment quads, join wedges at interior vertices, and caps at the
// two ends. Join and cap styles exist both as concrete types and as
// runtime-selectable Dynamic variants.
package polyline

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/draw/geom"
)

// Tri is a single triangle in 2D.
type Tri [3]geom.Vec2

// CircleResolution is the number of segments used for a full circle when
// approximating round caps and joins. Arcs use a proportional share of
// it, with a floor of MinArcSegments.
const CircleResolution = 50

// MinArcSegments is the practical minimum segment count for any arc.
const MinArcSegments = 3

// Capper produces the triangles closing one end of a stroked line.
//
// pivot is the line's end point, a and b the two side-offset corners of
// the final segment edge (a on the left of the travel direction), and
// dir the unit direction pointing out of the line.
type Capper interface {
	CapTriangles(pivot, a, b, dir geom.Vec2) []Tri
}

// ButtCap cuts the line flush at its end point: zero triangles, the
// segment quad alone covers it.
type ButtCap struct{}

// CapTriangles implements Capper.
func (ButtCap) CapTriangles(pivot, a, b, dir geom.Vec2) []Tri {
	return nil
}

// RoundCap closes the line with a half circle swept from one side-offset
// corner to the other.
type RoundCap struct {
	// Resolution overrides CircleResolution when positive.
	Resolution int
}

// CapTriangles implements Capper.
func (c RoundCap) CapTriangles(pivot, a, b, dir geom.Vec2) []Tri {
	res := c.Resolution
	if res <= 0 {
		res = CircleResolution
	}
	start := a.Sub(pivot).Angle()
	// a sits at perp(dir) from the pivot; sweeping -Pi passes through dir
	// at the arc's midpoint, which is the outward bulge we want.
	return arcFan(pivot, a.Sub(pivot).Length(), start, start-math32.Pi, res)
}

// SquareCap extends the line by half its thickness, forming one quad.
type SquareCap struct{}

// CapTriangles implements Capper.
func (SquareCap) CapTriangles(pivot, a, b, dir geom.Vec2) []Tri {
	half := a.Sub(b).Length() / 2
	ext := dir.Mul(half)
	ea := a.Add(ext)
	eb := b.Add(ext)
	return []Tri{
		{a, ea, eb},
		{a, eb, b},
	}
}

// CapStyle selects one of the three cap shapes at runtime.
type CapStyle uint8

// Cap styles.
const (
	CapButt CapStyle = iota
	CapRound
	CapSquare
)

// String returns the style name.
func (s CapStyle) String() string {
	switch s {
	case CapButt:
		return "Butt"
	case CapRound:
		return "Round"
	case CapSquare:
		return "Square"
	default:
		return "unknown"
	}
}

// DynamicCap dispatches to one of the three concrete cap
// implementations based on a runtime style value.
type DynamicCap struct {
	Style CapStyle
	// Resolution is forwarded to RoundCap when positive.
	Resolution int
}

// CapTriangles implements Capper.
func (c DynamicCap) CapTriangles(pivot, a, b, dir geom.Vec2) []Tri {
	switch c.Style {
	case CapRound:
		return RoundCap{Resolution: c.Resolution}.CapTriangles(pivot, a, b, dir)
	case CapSquare:
		return SquareCap{}.CapTriangles(pivot, a, b, dir)
	default:
		return ButtCap{}.CapTriangles(pivot, a, b, dir)
	}
}

// arcFan approximates the arc around center from angle a1 to a2 as a
// triangle fan. The segment count is proportional to the swept angle's
// share of a full circle.
func arcFan(center geom.Vec2, radius, a1, a2 float32, resolution int) []Tri {
	pts := geom.ArcPoints(center, radius, a1, a2, resolution, MinArcSegments)
	tris := make([]Tri, 0, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		tris = append(tris, Tri{center, pts[i], pts[i+1]})
	}
	return tris
}
