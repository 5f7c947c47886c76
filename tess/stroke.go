package tess

import (
	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/polyline"
)

// DefaultStrokeWeight is the stroke thickness used when options leave it
// unset.
const DefaultStrokeWeight = 1

// StrokeOptions configures stroke tessellation.
type StrokeOptions struct {
	// Weight is the full stroke thickness; non-positive means
	// DefaultStrokeWeight.
	Weight float32
	Cap    polyline.DynamicCap
	Join   polyline.DynamicJoin
	// Tolerance is the curve flattening tolerance; non-positive means
	// DefaultTolerance.
	Tolerance float32
}

// Options selects fill or stroke tessellation. Exactly FillOptions and
// StrokeOptions implement it.
type Options interface {
	isOptions()
}

func (FillOptions) isOptions()   {}
func (StrokeOptions) isOptions() {}

// StrokeTessellator expands polylines into thick stroke triangles. The
// zero value is ready to use.
type StrokeTessellator struct{}

// Tessellate returns the triangle vertices of the stroked polyline
// through points. Closed outlines are stroked with their seam joined by
// repeating the first point. Fewer than two distinct points produce no
// geometry.
func (StrokeTessellator) Tessellate(points []geom.Vec2, closed bool, opts StrokeOptions) []geom.Vec2 {
	if len(points) < 2 {
		return nil
	}
	weight := opts.Weight
	if weight <= 0 {
		weight = DefaultStrokeWeight
	}
	if closed && points[len(points)-1] != points[0] {
		pts := make([]geom.Vec2, 0, len(points)+1)
		pts = append(pts, points...)
		points = append(pts, points[0])
	}
	return polyline.Vertices(points, weight, opts.Cap, opts.Join)
}

// closestSegmentParam finds the polyline segment nearest to v and the
// clamped parameter of v's projection onto it. Used to carry per-point
// attributes onto stroke vertices that the expansion invented.
func closestSegmentParam(points []geom.Vec2, v geom.Vec2) (seg int, t float32) {
	best := float32(-1)
	for i := 0; i+1 < len(points); i++ {
		d := points[i+1].Sub(points[i])
		lenSq := d.LengthSq()
		var u float32
		if lenSq > 0 {
			u = v.Sub(points[i]).Dot(d) / lenSq
			if u < 0 {
				u = 0
			} else if u > 1 {
				u = 1
			}
		}
		dist := v.Sub(points[i].Add(d.Mul(u))).LengthSq()
		if best < 0 || dist < best {
			best = dist
			seg = i
			t = u
		}
	}
	return seg, t
}
