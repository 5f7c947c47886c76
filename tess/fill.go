package tess

import (
	"errors"
	"fmt"

	"github.com/gogpu/draw/geom"
)

// ErrDegenerate reports outline geometry that cannot be triangulated:
// too few points, zero area, or self-intersection that starves the ear
// search.
var ErrDegenerate = errors.New("tess: degenerate outline")

// FillOptions configures fill tessellation.
type FillOptions struct {
	// Tolerance is the curve flattening tolerance; non-positive means
	// DefaultTolerance.
	Tolerance float32
}

// FillTessellator triangulates simple polygons by ear clipping. The
// zero value is ready to use; the scratch index list is reused across
// calls.
type FillTessellator struct {
	remaining []uint32
}

// Tessellate triangulates the simple polygon outlined by points,
// returning triangle indices into points. The winding order of the
// input does not matter. Returns ErrDegenerate when the outline has
// fewer than three points, encloses no area, or no ear can be clipped
// (self-intersecting input).
func (t *FillTessellator) Tessellate(points []geom.Vec2) ([]uint32, error) {
	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("%w: %d points", ErrDegenerate, n)
	}

	area := signedArea(points)
	if area == 0 {
		return nil, fmt.Errorf("%w: zero area", ErrDegenerate)
	}
	ccw := area > 0

	t.remaining = t.remaining[:0]
	for i := range points {
		t.remaining = append(t.remaining, uint32(i))
	}
	rem := t.remaining

	out := make([]uint32, 0, (n-2)*3)
	for len(rem) > 3 {
		clipped := false
		for i := 0; i < len(rem); i++ {
			prev := rem[(i+len(rem)-1)%len(rem)]
			cur := rem[i]
			next := rem[(i+1)%len(rem)]
			if !isEar(points, rem, prev, cur, next, ccw) {
				continue
			}
			out = append(out, prev, cur, next)
			rem = append(rem[:i], rem[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, fmt.Errorf("%w: no ear found with %d points remaining", ErrDegenerate, len(rem))
		}
	}
	out = append(out, rem[0], rem[1], rem[2])
	return out, nil
}

// signedArea is twice the polygon's signed area; positive means
// counter-clockwise winding.
func signedArea(points []geom.Vec2) float32 {
	var sum float32
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// isEar reports whether the triangle (prev, cur, next) is convex in the
// polygon's winding and contains no other remaining vertex.
func isEar(points []geom.Vec2, rem []uint32, prev, cur, next uint32, ccw bool) bool {
	a, b, c := points[prev], points[cur], points[next]
	cross := b.Sub(a).Cross(c.Sub(b))
	if ccw {
		if cross <= 0 {
			return false
		}
	} else if cross >= 0 {
		return false
	}
	for _, ri := range rem {
		if ri == prev || ri == cur || ri == next {
			continue
		}
		if triangleContains(a, b, c, points[ri]) {
			return false
		}
	}
	return true
}

// triangleContains reports whether p lies strictly inside or on the
// triangle (a, b, c), regardless of winding.
func triangleContains(a, b, c, p geom.Vec2) bool {
	d1 := p.Sub(a).Cross(b.Sub(a))
	d2 := p.Sub(b).Cross(c.Sub(b))
	d3 := p.Sub(c).Cross(a.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
